package pdfwriter

import (
	"strings"
	"testing"

	"htmlpdf/internal/imaging"
)

func embedAndOutput(t *testing.T, img *imaging.Image) string {
	t.Helper()
	w := New()
	ref := EmbedImage(w, img)

	doc := NewDocument(w, 100, 100)
	doc.AddPage([]byte("q /Im0 Do Q"), Dict{"XObject": Dict{"Im0": ref}})
	doc.Finish()

	out, err := w.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	return string(out)
}

func TestEmbedImageRGBWithAlphaGetsAnSMask(t *testing.T) {
	img := &imaging.Image{
		Width: 2, Height: 2, ColorSpace: imaging.ColorSpaceRGB,
		Pixels: make([]byte, 12),
		Alpha:  []byte{255, 128, 0, 255},
	}
	out := embedAndOutput(t, img)

	if !strings.Contains(out, "/ColorSpace /DeviceRGB") {
		t.Errorf("expected DeviceRGB color space: %s", out)
	}
	if !strings.Contains(out, "/Filter /FlateDecode") {
		t.Errorf("expected FlateDecode filter for a fully decoded image: %s", out)
	}
	if !strings.Contains(out, "/SMask") {
		t.Errorf("expected an SMask entry for an image with an alpha channel: %s", out)
	}
}

func TestEmbedImageGrayHasNoSMaskWithoutAlpha(t *testing.T) {
	img := &imaging.Image{
		Width: 3, Height: 1, ColorSpace: imaging.ColorSpaceGray,
		Pixels: []byte{0, 128, 255},
	}
	out := embedAndOutput(t, img)

	if !strings.Contains(out, "/ColorSpace /DeviceGray") {
		t.Errorf("expected DeviceGray color space: %s", out)
	}
	if strings.Contains(out, "/SMask") {
		t.Errorf("expected no SMask entry when the image has no alpha channel: %s", out)
	}
}

func TestEmbedImagePassthroughUsesNativeFilterAndRawBytes(t *testing.T) {
	img := &imaging.Image{
		Width: 4, Height: 4, ColorSpace: imaging.ColorSpaceRGB,
		Passthrough: true,
		Filter:      "DCTDecode",
		Raw:         []byte{0xFF, 0xD8, 0xFF, 0xD9},
	}
	out := embedAndOutput(t, img)

	if !strings.Contains(out, "/Filter /DCTDecode") {
		t.Errorf("expected the image's native filter to be preserved: %s", out)
	}
	if strings.Contains(out, "/SMask") {
		t.Errorf("passthrough images should never get a separate SMask: %s", out)
	}
}
