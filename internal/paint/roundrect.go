package paint

import (
	"bytes"
	"fmt"

	"htmlpdf/internal/core/domain"
)

// bezierHandle is the cubic-Bézier control-point offset (as a fraction of
// the radius) that best approximates a quarter circle, per spec.md 4.H.
const bezierHandle = 0.5522847498307936

// scaleRadii converts a node's border radii (layout px) to PDF points.
func scaleRadii(radii [4]domain.CornerRadius, scale float64) [4]domain.CornerRadius {
	var out [4]domain.CornerRadius
	for i, r := range radii {
		out[i] = domain.CornerRadius{X: r.X * scale, Y: r.Y * scale}
	}
	return out
}

// hasRadius reports whether any corner of radii is non-zero.
func hasRadius(radii [4]domain.CornerRadius) bool {
	for _, r := range radii {
		if r.X > 0 || r.Y > 0 {
			return true
		}
	}
	return false
}

// clampRadii shrinks radii (in the order top-left, top-right, bottom-right,
// bottom-left) proportionally so that no corner pair exceeds the edge
// length it shares, per spec.md 4.H ("border radii are clamped per side so
// that no corner pair exceeds its edge length").
func clampRadii(w, h float64, radii [4]domain.CornerRadius) [4]domain.CornerRadius {
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]
	for i := range radii {
		if radii[i].X < 0 {
			radii[i].X = 0
		}
		if radii[i].Y < 0 {
			radii[i].Y = 0
		}
	}
	ratio := 1.0
	shrink := func(a, b, length float64) {
		sum := a + b
		if sum > 0 && sum > length {
			if f := length / sum; f < ratio {
				ratio = f
			}
		}
	}
	shrink(tl.X, tr.X, w) // top edge
	shrink(bl.X, br.X, w) // bottom edge
	shrink(tl.Y, bl.Y, h) // left edge
	shrink(tr.Y, br.Y, h) // right edge

	if ratio >= 1 {
		return radii
	}
	for i := range radii {
		radii[i].X *= ratio
		radii[i].Y *= ratio
	}
	return radii
}

// appendRoundedRectPath writes the path-construction operators (no paint
// operator) for one rounded rectangle at (x, y, w, h) in PDF user space
// (bottom-left origin), with per-corner radii ordered top-left, top-right,
// bottom-right, bottom-left. The path is 4 straight edges and 4 cubic
// Bézier corners, per spec.md 4.H.
func appendRoundedRectPath(buf *bytes.Buffer, x, y, w, h float64, radii [4]domain.CornerRadius) {
	radii = clampRadii(w, h, radii)
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]
	k := bezierHandle

	fmt.Fprintf(buf, "%s %s m\n", fnum(x+tl.X), fnum(y+h))
	fmt.Fprintf(buf, "%s %s l\n", fnum(x+w-tr.X), fnum(y+h))
	fmt.Fprintf(buf, "%s %s %s %s %s %s c\n",
		fnum(x+w-tr.X+k*tr.X), fnum(y+h),
		fnum(x+w), fnum(y+h-tr.Y+k*tr.Y),
		fnum(x+w), fnum(y+h-tr.Y))
	fmt.Fprintf(buf, "%s %s l\n", fnum(x+w), fnum(y+br.Y))
	fmt.Fprintf(buf, "%s %s %s %s %s %s c\n",
		fnum(x+w), fnum(y+br.Y-k*br.Y),
		fnum(x+w-br.X+k*br.X), fnum(y),
		fnum(x+w-br.X), fnum(y))
	fmt.Fprintf(buf, "%s %s l\n", fnum(x+bl.X), fnum(y))
	fmt.Fprintf(buf, "%s %s %s %s %s %s c\n",
		fnum(x+bl.X-k*bl.X), fnum(y),
		fnum(x), fnum(y+bl.Y-k*bl.Y),
		fnum(x), fnum(y+bl.Y))
	fmt.Fprintf(buf, "%s %s l\n", fnum(x), fnum(y+h-tl.Y))
	fmt.Fprintf(buf, "%s %s %s %s %s %s c\n",
		fnum(x), fnum(y+h-tl.Y+k*tl.Y),
		fnum(x+tl.X-k*tl.X), fnum(y+h),
		fnum(x+tl.X), fnum(y+h))
	buf.WriteString("h\n")
}
