package paint

import (
	"image"
	"image/color"
	"testing"

	"htmlpdf/internal/core/domain"
)

func TestRasterizeShadowProducesPaddedImageWithAlpha(t *testing.T) {
	box := domain.Box{Width: 20, Height: 10}
	sh := domain.Shadow{Blur: 4, Color: domain.Color{R: 10, G: 20, B: 30, A: 255}}

	img := rasterizeShadow(box, [4]domain.CornerRadius{}, sh, 1)
	if img == nil {
		t.Fatal("expected a non-nil rasterized shadow image")
	}
	if img.Width <= int(box.Width) || img.Height <= int(box.Height) {
		t.Errorf("expected the blur padding to grow the canvas beyond the box size, got %dx%d", img.Width, img.Height)
	}
	if len(img.Alpha) != img.Width*img.Height {
		t.Errorf("expected one alpha byte per pixel, got %d for %d pixels", len(img.Alpha), img.Width*img.Height)
	}
	center := img.Height/2*img.Width + img.Width/2
	if img.Alpha[center] == 0 {
		t.Errorf("expected a non-transparent pixel near the shadow's center, got alpha=0")
	}
}

func TestRasterizeShadowReturnsNilForDegenerateBox(t *testing.T) {
	box := domain.Box{Width: 0, Height: 0}
	sh := domain.Shadow{Blur: 0}
	if img := rasterizeShadow(box, [4]domain.CornerRadius{}, sh, 1); img != nil {
		t.Errorf("expected nil for a zero-sized box, got %v", img)
	}
}

func TestBoxBlurWithZeroRadiusCopiesSourceUnchanged(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.Set(1, 1, color.NRGBA{R: 200, A: 255})

	dst := boxBlur(src, 0)
	if dst.NRGBAAt(1, 1) != src.NRGBAAt(1, 1) {
		t.Errorf("zero-radius blur should leave pixels unchanged, got %v want %v", dst.NRGBAAt(1, 1), src.NRGBAAt(1, 1))
	}
}

func TestBoxBlurSpreadsASinglePixelIntoItsNeighbors(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 9, 9))
	src.Set(4, 4, color.NRGBA{R: 255, A: 255})

	dst := boxBlur(src, 2)
	if dst.NRGBAAt(4, 4).R == 255 {
		t.Errorf("expected the center pixel's value to spread out and attenuate after blurring")
	}
	if dst.NRGBAAt(3, 4).R == 0 {
		t.Errorf("expected a neighboring pixel to pick up some of the blurred value")
	}
}

func TestBoxBlurPassClampsAtEdges(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 100, A: 255})
	src.Set(1, 0, color.NRGBA{R: 100, A: 255})
	src.Set(0, 1, color.NRGBA{R: 100, A: 255})
	src.Set(1, 1, color.NRGBA{R: 100, A: 255})

	out := boxBlurPass(src, 5, true)
	if out.NRGBAAt(0, 0).R != 100 {
		t.Errorf("a uniform image should blur to the same uniform value, got %d", out.NRGBAAt(0, 0).R)
	}
}
