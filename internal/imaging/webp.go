package imaging

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/webp"
)

// decodeWebP decodes a RIFF/WebP payload (lossy VP8, lossless VP8L, and the
// still-frame case of extended VP8X) via x/image/webp, then repacks the
// result into this package's own Image shape the same way decodePNG does,
// splitting any alpha channel into a separate mask buffer for later PDF
// /SMask embedding. Animated VP8X (multiple ANMF frames) decodes only its
// first frame, since a PDF page has no notion of an animated image.
func decodeWebP(data []byte) (*Image, error) {
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: WebP decode: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := &Image{
		Width:      w,
		Height:     h,
		ColorSpace: ColorSpaceRGB,
		Pixels:     make([]byte, w*h*3),
	}

	hasAlpha := false
	switch img.(type) {
	case *image.NRGBA, *image.RGBA:
		hasAlpha = true
	}

	var alpha []byte
	if hasAlpha {
		alpha = make([]byte, w*h)
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out.Pixels[i*3+0] = byte(r >> 8)
			out.Pixels[i*3+1] = byte(g >> 8)
			out.Pixels[i*3+2] = byte(b >> 8)
			if hasAlpha {
				alpha[i] = byte(a >> 8)
			}
			i++
		}
	}
	if hasAlpha {
		out.Alpha = alpha
	}
	return out, nil
}
