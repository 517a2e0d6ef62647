package gradient

import (
	"strings"
	"testing"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/pdfwriter"
)

func dictBody(t *testing.T, w *pdfwriter.Writer, ref pdfwriter.Ref) string {
	t.Helper()
	doc := pdfwriter.NewDocument(w, 200, 200)
	doc.AddPage([]byte("q /Sh0 sh Q"), pdfwriter.Dict{"Shading": pdfwriter.Dict{"Sh0": ref}})
	doc.Finish()
	out, err := w.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	return string(out)
}

func TestBuildLinearGradientProducesShadingType2(t *testing.T) {
	w := pdfwriter.New()
	grad := &domain.Gradient{
		Kind:  domain.GradientLinear,
		Angle: 90,
		Stops: []domain.GradientStop{
			{Color: domain.Color{R: 255, A: 255}, Offset: 0},
			{Color: domain.Color{B: 255, A: 255}, Offset: 1},
		},
	}
	ref := Build(w, grad, domain.Box{Width: 100, Height: 50})
	if ref == 0 {
		t.Fatal("expected a non-zero object reference")
	}
	out := dictBody(t, w, ref)
	if !strings.Contains(out, "/ShadingType 2") {
		t.Errorf("expected ShadingType 2 in output: %s", out)
	}
	if !strings.Contains(out, "/FunctionType 3") {
		t.Errorf("expected a stitching function in output: %s", out)
	}
}

func TestBuildRadialGradientProducesShadingType3(t *testing.T) {
	w := pdfwriter.New()
	grad := &domain.Gradient{
		Kind: domain.GradientRadial,
		Stops: []domain.GradientStop{
			{Color: domain.Color{A: 255}, Offset: 0},
			{Color: domain.Color{R: 255, G: 255, B: 255, A: 255}, Offset: 1},
		},
	}
	ref := Build(w, grad, domain.Box{Width: 80, Height: 80})
	out := dictBody(t, w, ref)
	if !strings.Contains(out, "/ShadingType 3") {
		t.Errorf("expected ShadingType 3 in output: %s", out)
	}
}

func TestNormalizeStopsFillsInDefaultsForFewerThanTwoStops(t *testing.T) {
	none := normalizeStops(nil)
	if len(none) != 2 {
		t.Fatalf("expected 2 default stops, got %d", len(none))
	}

	one := normalizeStops([]domain.GradientStop{{Color: domain.Color{R: 1, A: 255}, Offset: 0.5}})
	if len(one) != 2 || one[0] != one[1] {
		t.Fatalf("expected a single stop duplicated into two identical stops, got %v", one)
	}
}

func TestStitchedFunctionBoundsOmitFirstAndLastOffset(t *testing.T) {
	stops := []domain.GradientStop{
		{Offset: 0},
		{Offset: 0.3},
		{Offset: 0.7},
		{Offset: 1},
	}
	fn := stitchedFunction(stops)
	bounds, ok := fn["Bounds"].(pdfwriter.Array)
	if !ok {
		t.Fatalf("expected Bounds to be an Array, got %T", fn["Bounds"])
	}
	if len(bounds) != 2 {
		t.Fatalf("expected 2 interior bounds for 4 stops, got %d", len(bounds))
	}
	functions, ok := fn["Functions"].(pdfwriter.Array)
	if !ok || len(functions) != 3 {
		t.Fatalf("expected 3 stitched sub-functions for 4 stops, got %v", fn["Functions"])
	}
}

func TestRepeatingGradientDoesNotExtend(t *testing.T) {
	w := pdfwriter.New()
	grad := &domain.Gradient{
		Kind:      domain.GradientLinear,
		Repeating: true,
		Stops: []domain.GradientStop{
			{Color: domain.Color{A: 255}, Offset: 0},
			{Color: domain.Color{R: 255, A: 255}, Offset: 1},
		},
	}
	ref := Build(w, grad, domain.Box{Width: 40, Height: 40})
	out := dictBody(t, w, ref)
	if !strings.Contains(out, "[false false]") {
		t.Errorf("expected non-extending Extend array for a repeating gradient: %s", out)
	}
}
