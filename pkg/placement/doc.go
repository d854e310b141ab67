// Package placement decides where an icon lands on its canvas.
//
// Given an icon's intrinsic size, a square canvas side, an [Align] mode and
// a scale factor, [Resolve] returns the destination [Rect]. The drawn size
// is the intrinsic size multiplied by the scale, independently per axis.
//
// # Alignment
//
//   - [AlignAuto]: centered, with offsets clamped to zero. An overscaled
//     icon is pinned to the top-left corner and spills right and down.
//   - [AlignCenter]: centered exactly. An overscaled icon spills evenly on
//     both sides (negative offsets).
//   - [AlignTopLeft], [AlignTopRight], [AlignBottomLeft], [AlignBottomRight]:
//     the matching corner of the icon sits on the matching canvas corner.
//
// # Overscale
//
// A scale that makes the icon larger than the canvas is allowed. The
// returned rectangle then extends past the canvas bounds and the renderer
// clips it when drawing.
//
// # Example
//
//	r, err := placement.Resolve(32, 32, 64, placement.AlignAuto, 2)
//	// r == Rect{X: 0, Y: 0, W: 64, H: 64}
package placement
