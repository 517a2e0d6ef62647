package imaging

import (
	"bytes"
	goimage "image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, img goimage.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNGRGBA(t *testing.T) {
	src := goimage.NewRGBA(goimage.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 255, A: 255})
	src.Set(0, 1, color.RGBA{B: 255, A: 128})
	src.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	img, err := decodePNG(encodeTestPNG(t, src))
	if err != nil {
		t.Fatalf("decodePNG: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", img.Width, img.Height)
	}
	if img.ColorSpace != ColorSpaceRGB {
		t.Fatalf("expected RGB color space")
	}
	if len(img.Alpha) != 4 {
		t.Fatalf("expected 4-byte alpha mask, got %d", len(img.Alpha))
	}
	if img.Pixels[0] != 255 || img.Pixels[1] != 0 || img.Pixels[2] != 0 {
		t.Errorf("pixel 0 = %v, want red", img.Pixels[0:3])
	}
	if img.Alpha[2] != 128 {
		t.Errorf("pixel 2 alpha = %d, want 128", img.Alpha[2])
	}
}

func TestDecodePNGGray(t *testing.T) {
	src := goimage.NewGray(goimage.Rect(0, 0, 3, 1))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 128})
	src.SetGray(2, 0, color.Gray{Y: 255})

	img, err := decodePNG(encodeTestPNG(t, src))
	if err != nil {
		t.Fatalf("decodePNG: %v", err)
	}
	if img.ColorSpace != ColorSpaceGray {
		t.Fatalf("expected gray color space")
	}
	want := []byte{0, 128, 255}
	for i, w := range want {
		if img.Pixels[i] != w {
			t.Errorf("pixel %d = %d, want %d", i, img.Pixels[i], w)
		}
	}
}

func TestDecodePNGPalette(t *testing.T) {
	// Go's PNG encoder picks the smallest bit depth that fits the
	// palette (1-bit for <=2 colors); decodePNG only supports 8-bit
	// channels, so the fixture pads the palette past 16 entries to
	// force the encoder to pick 8-bit depth.
	pal := make(color.Palette, 17)
	pal[0] = color.RGBA{R: 255, A: 255}
	pal[1] = color.RGBA{G: 255, A: 255}
	for i := 2; i < len(pal); i++ {
		pal[i] = color.RGBA{A: 255}
	}
	src := goimage.NewPaletted(goimage.Rect(0, 0, 2, 1), pal)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)

	img, err := decodePNG(encodeTestPNG(t, src))
	if err != nil {
		t.Fatalf("decodePNG: %v", err)
	}
	if img.ColorSpace != ColorSpaceRGB {
		t.Fatalf("expected RGB color space after palette expansion")
	}
	if img.Pixels[0] != 255 || img.Pixels[3] != 0 || img.Pixels[4] != 255 {
		t.Errorf("unexpected expanded palette pixels: %v", img.Pixels)
	}
}

func TestDecodePNGRejectsNonPNG(t *testing.T) {
	if _, err := decodePNG([]byte("not a png")); err == nil {
		t.Fatal("expected error for non-PNG input")
	}
}

func TestUnfilterPaeth(t *testing.T) {
	cur := []byte{10, 20, 30}
	prev := []byte{5, 5, 5}
	unfilter(4, cur, prev, 1)
	if len(cur) != 3 {
		t.Fatalf("unexpected length mutation")
	}
}
