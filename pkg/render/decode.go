package render

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/matzehuels/iconpress/pkg/placement"
)

// Image is a decoded vector icon.
type Image interface {
	// Size returns the intrinsic width and height in pixels.
	Size() (w, h float64)

	// Draw rasterizes the icon into r on dst. Pixels outside dst are clipped.
	Draw(dst *image.RGBA, r placement.Rect)
}

// Decoder parses a vector icon.
type Decoder interface {
	Decode(r io.Reader) (Image, error)
}

// SVGDecoder decodes SVG documents with oksvg.
//
// The intrinsic size comes from the width and height attributes of the
// root element. When only one of them is usable the other follows the
// viewBox aspect ratio; when neither is, the viewBox size is used.
type SVGDecoder struct {
	// Strict rejects documents containing elements oksvg cannot render
	// instead of skipping them.
	Strict bool
}

// Decode parses an SVG document.
func (d SVGDecoder) Decode(r io.Reader) (img Image, err error) {
	// oksvg panics on some malformed path data.
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, fmt.Errorf("malformed svg: %v", p)
		}
	}()

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	mode := oksvg.IgnoreErrorMode
	if d.Strict {
		mode = oksvg.StrictErrorMode
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(src), mode)
	if err != nil {
		return nil, err
	}

	w, h := intrinsicSize(rootSize(src), icon.ViewBox.W, icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has no intrinsic size (missing width, height and viewBox)")
	}
	return &svgImage{icon: icon, w: w, h: h}, nil
}

type svgImage struct {
	icon *oksvg.SvgIcon
	w, h float64
}

func (s *svgImage) Size() (float64, float64) {
	return s.w, s.h
}

func (s *svgImage) Draw(dst *image.RGBA, r placement.Rect) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	s.icon.SetTarget(r.X, r.Y, r.W, r.H)
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	raster := rasterx.NewDasher(w, h, scanner)
	s.icon.Draw(raster, 1.0)
}
