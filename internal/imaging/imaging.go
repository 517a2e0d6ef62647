// Package imaging decodes the raster formats a background-image or <img>
// reference can point at into a form internal/paint can emit as a PDF
// Image XObject: either fully expanded RGB/grayscale pixels with a
// separate alpha buffer (PNG, WebP) or the
// original compressed bytes passed through under a matching PDF filter
// (JPEG, which PDF can embed directly via DCTDecode without a full
// decode).
package imaging

import (
	"bytes"
	"fmt"
)

// ColorSpace identifies how Pixels should be interpreted.
type ColorSpace int

const (
	ColorSpaceRGB ColorSpace = iota
	ColorSpaceGray
)

// Image is a decoded (or pass-through) raster ready for PDF embedding.
type Image struct {
	Width, Height int
	ColorSpace    ColorSpace

	// Pixels holds fully expanded, non-interlaced scanline data (one byte
	// per channel, no padding) when Passthrough is false.
	Pixels []byte

	// Alpha holds one byte per pixel of opacity, or nil if the image
	// carries no alpha channel.
	Alpha []byte

	// Passthrough, when set, means Raw already holds bytes encoded in a
	// PDF-native filter (DCTDecode for JPEG) and should be embedded as-is
	// rather than re-encoded from Pixels.
	Passthrough bool
	Filter      string // PDF filter name to use when Passthrough is true
	Raw         []byte
}

// Decode dispatches on the image's magic bytes to the matching decoder.
func Decode(data []byte) (*Image, error) {
	switch {
	case bytes.HasPrefix(data, pngSignature):
		return decodePNG(data)
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return decodeJPEGPassthrough(data)
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return decodeWebP(data)
	default:
		return nil, fmt.Errorf("imaging: unrecognized image format")
	}
}
