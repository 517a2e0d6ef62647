package paint

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/imaging"
	"htmlpdf/internal/pdfwriter"
)

// rasterizeShadow draws a single non-inset box-shadow layer to an offscreen
// canvas and box-blurs it, the same escape hatch the PDF content stream
// itself has no operator for: a flat `re f` fill can place a shadow, but it
// cannot soften its edge. gg rasterizes the shape; the blur afterward is a
// plain separable box blur run three times, which approximates a Gaussian
// closely enough for a drop shadow and needs no extra dependency.
//
// The canvas is the box plus a padding of 3*blur (in points, at least 1)
// on every side; paintBlurredShadow places the image with the same padding.
func rasterizeShadow(box domain.Box, radii [4]domain.CornerRadius, sh domain.Shadow, scale float64) *imaging.Image {
	pad := sh.Blur * scale * 3
	if pad < 1 {
		pad = 1
	}
	w := int(box.Width*scale + pad*2)
	h := int(box.Height*scale + pad*2)
	if w <= 0 || h <= 0 {
		return nil
	}

	dc := gg.NewContext(w, h)
	dc.SetRGBA(
		float64(sh.Color.R)/255,
		float64(sh.Color.G)/255,
		float64(sh.Color.B)/255,
		float64(sh.Color.A)/255,
	)
	rx := radii[0].X * scale
	ry := radii[0].Y * scale
	if rx > 0 || ry > 0 {
		dc.DrawRoundedRectangle(pad, pad, box.Width*scale, box.Height*scale, (rx+ry)/2)
	} else {
		dc.DrawRectangle(pad, pad, box.Width*scale, box.Height*scale)
	}
	dc.Fill()

	img := dc.Image()
	blurred := boxBlur(img, int(sh.Blur*scale))

	bounds := blurred.Bounds()
	out := &imaging.Image{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		ColorSpace: imaging.ColorSpaceRGB,
		Pixels:     make([]byte, bounds.Dx()*bounds.Dy()*3),
		Alpha:      make([]byte, bounds.Dx()*bounds.Dy()),
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := blurred.At(x, y).RGBA()
			out.Pixels[i*3+0] = byte(r >> 8)
			out.Pixels[i*3+1] = byte(g >> 8)
			out.Pixels[i*3+2] = byte(b >> 8)
			out.Alpha[i] = byte(a >> 8)
			i++
		}
	}
	return out
}

// boxBlur copies src into non-premultiplied NRGBA and applies a radius-r
// horizontal and vertical box blur three times, which converges close to a
// Gaussian blur without needing an FFT or a dedicated convolution library.
func boxBlur(src image.Image, radius int) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
	if radius <= 0 {
		return dst
	}
	for pass := 0; pass < 3; pass++ {
		dst = boxBlurPass(dst, radius, true)
		dst = boxBlurPass(dst, radius, false)
	}
	return dst
}

func boxBlurPass(src *image.NRGBA, radius int, horizontal bool) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	window := 2*radius + 1

	line := func(x, y int) color.NRGBA {
		if x < b.Min.X {
			x = b.Min.X
		}
		if x >= b.Max.X {
			x = b.Max.X - 1
		}
		if y < b.Min.Y {
			y = b.Min.Y
		}
		if y >= b.Max.Y {
			y = b.Max.Y - 1
		}
		return src.NRGBAAt(x, y)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var rs, gs, bs, as int
			for k := -radius; k <= radius; k++ {
				var c color.NRGBA
				if horizontal {
					c = line(x+k, y)
				} else {
					c = line(x, y+k)
				}
				rs += int(c.R)
				gs += int(c.G)
				bs += int(c.B)
				as += int(c.A)
			}
			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rs / window),
				G: uint8(gs / window),
				B: uint8(bs / window),
				A: uint8(as / window),
			})
		}
	}
	return dst
}

// embedShadowImage registers a rasterized shadow layer as a PDF image
// XObject and returns its reference; paintBlurredShadow adds the resource
// entry and the cm/Do operators that position it.
func embedShadowImage(w *pdfwriter.Writer, img *imaging.Image) pdfwriter.Ref {
	return pdfwriter.EmbedImage(w, img)
}
