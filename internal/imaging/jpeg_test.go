package imaging

import (
	"bytes"
	goimage "image"
	"image/color"
	"image/jpeg"
	"testing"
)

func encodeTestJPEG(t *testing.T, img goimage.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding fixture JPEG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeJPEGPassthroughPreservesRawBytes(t *testing.T) {
	src := goimage.NewRGBA(goimage.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	data := encodeTestJPEG(t, src)

	img, err := decodeJPEGPassthrough(data)
	if err != nil {
		t.Fatalf("decodeJPEGPassthrough: %v", err)
	}
	if img.Width != 16 || img.Height != 8 {
		t.Errorf("got %dx%d, want 16x8", img.Width, img.Height)
	}
	if img.ColorSpace != ColorSpaceRGB {
		t.Errorf("expected RGB color space for a 3-component JPEG")
	}
	if !img.Passthrough || img.Filter != "DCTDecode" {
		t.Errorf("expected passthrough DCTDecode image")
	}
	if !bytes.Equal(img.Raw, data) {
		t.Errorf("passthrough image must carry the original bytes unmodified")
	}
}

func TestDecodeJPEGPassthroughGrayscale(t *testing.T) {
	src := goimage.NewGray(goimage.Rect(0, 0, 4, 4))
	data := encodeTestJPEG(t, src)

	img, err := decodeJPEGPassthrough(data)
	if err != nil {
		t.Fatalf("decodeJPEGPassthrough: %v", err)
	}
	if img.ColorSpace != ColorSpaceGray {
		t.Errorf("expected gray color space for a 1-component JPEG")
	}
}

func TestJPEGDimensionsRejectsNonJPEG(t *testing.T) {
	if _, _, _, err := jpegDimensions([]byte{0x00, 0x01, 0x02}); err == nil {
		t.Fatal("expected error for non-JPEG input")
	}
}
