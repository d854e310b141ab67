package render

import (
	"bytes"
	"image"
	"image/png"

	"github.com/matzehuels/iconpress/pkg/errors"
)

// MaxCanvasSize is the largest accepted canvas side in pixels.
const MaxCanvasSize = 8192

// NewCanvas allocates a transparent square canvas.
func NewCanvas(size int) (*image.RGBA, error) {
	if size <= 0 || size > MaxCanvasSize {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas size must be between 1 and %d, got %d", MaxCanvasSize, size)
	}
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}

var encoder = png.Encoder{
	CompressionLevel: png.BestCompression,
	BufferPool:       &bufferPool{},
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
