package placement

import (
	"image"
	"math"

	"github.com/matzehuels/iconpress/pkg/errors"
)

// Rect is the destination rectangle of an icon on its canvas, in pixels.
// X and Y may be negative and X+W or Y+H may exceed the canvas side when
// the icon is overscaled.
type Rect struct {
	X, Y float64
	W, H float64
}

// Fits reports whether r lies entirely within a square canvas of side size.
func (r Rect) Fits(size int) bool {
	s := float64(size)
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= s && r.Y+r.H <= s
}

// Bounds returns the integer pixel rectangle covered by r.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

// Resolve computes where an icon of intrinsic size w×h lands on a canvas
// of side size, drawn at the given scale and alignment.
func Resolve(w, h float64, size int, align Align, scale float64) (Rect, error) {
	if size <= 0 {
		return Rect{}, errors.New(errors.ErrCodeInvalidConfig, "canvas size must be positive, got %d", size)
	}
	if err := errors.ValidatePositive("scale", scale); err != nil {
		return Rect{}, err
	}
	if err := errors.ValidatePositive("icon width", w); err != nil {
		return Rect{}, err
	}
	if err := errors.ValidatePositive("icon height", h); err != nil {
		return Rect{}, err
	}
	if align == "" {
		align = DefaultAlign
	}

	s := float64(size)
	dw, dh := w*scale, h*scale
	r := Rect{W: dw, H: dh}

	switch align {
	case AlignAuto:
		r.X = math.Max(0, (s-dw)/2)
		r.Y = math.Max(0, (s-dh)/2)
	case AlignCenter:
		r.X = (s - dw) / 2
		r.Y = (s - dh) / 2
	case AlignTopLeft:
		// origin
	case AlignTopRight:
		r.X = s - dw
	case AlignBottomLeft:
		r.Y = s - dh
	case AlignBottomRight:
		r.X = s - dw
		r.Y = s - dh
	default:
		return Rect{}, errors.New(errors.ErrCodeInvalidConfig, "invalid align: %q", align)
	}
	return r, nil
}
