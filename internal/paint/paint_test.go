package paint

import (
	"strings"
	"testing"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/paginate"
	"htmlpdf/internal/pdfwriter"
)

func TestToPDFFlipsYAndScalesToPoints(t *testing.T) {
	ctx := &paintContext{pageHeightPt: 792, scale: 0.75}
	x, y, w, h := ctx.toPDF(domain.Box{X: 10, Y: 20, Width: 100, Height: 50})
	if x != 7.5 {
		t.Errorf("x = %v, want 7.5", x)
	}
	if w != 75 || h != 37.5 {
		t.Errorf("w,h = %v,%v, want 75,37.5", w, h)
	}
	wantY := 792 - (20+50)*0.75
	if y != wantY {
		t.Errorf("y = %v, want %v", y, wantY)
	}
}

func TestPaintPageSkipsDisplayNoneNodes(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	node := &domain.LayoutNode{
		Box:   domain.Box{Width: 10, Height: 10},
		Style: domain.ComputedStyle{Display: domain.DisplayNone, Background: domain.Background{Color: domain.Color{R: 255, A: 255}}},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected no content emitted for a display:none node, got %q", content)
	}
}

func TestPaintPageFillsSolidBackground(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	node := &domain.LayoutNode{
		Box:   domain.Box{X: 0, Y: 0, Width: 50, Height: 20},
		Style: domain.ComputedStyle{Background: domain.Background{Color: domain.Color{R: 255, A: 255}}},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	s := string(content)
	if !strings.Contains(s, "1.000 0.000 0.000 rg") {
		t.Errorf("expected a red fill color operator, got %q", s)
	}
	if !strings.Contains(s, "re f") {
		t.Errorf("expected a fill-rect operator, got %q", s)
	}
}

func TestPaintPageStrokesBorder(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	node := &domain.LayoutNode{
		Box: domain.Box{Width: 50, Height: 20},
		Style: domain.ComputedStyle{
			Border: domain.BorderStyle{Width: 2, Style: domain.BorderSolid, Color: domain.Color{A: 255}},
		},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	s := string(content)
	if !strings.Contains(s, "2.000 w") {
		t.Errorf("expected a 2pt line-width operator, got %q", s)
	}
	if !strings.Contains(s, "re S") {
		t.Errorf("expected a stroke-rect operator, got %q", s)
	}
}

func TestPaintPageSkipsZeroWidthBorder(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	node := &domain.LayoutNode{
		Box:   domain.Box{Width: 50, Height: 20},
		Style: domain.ComputedStyle{Border: domain.BorderStyle{Width: 0, Style: domain.BorderSolid}},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected no stroke for a zero-width border, got %q", content)
	}
}

func TestPaintPageEmitsHardEdgedShadowAsFillRect(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	node := &domain.LayoutNode{
		Box: domain.Box{X: 5, Y: 5, Width: 50, Height: 20},
		Style: domain.ComputedStyle{
			BoxShadows: []domain.Shadow{{OffsetX: 2, OffsetY: 2, Color: domain.Color{A: 200}}},
		},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	if !strings.Contains(string(content), "re f") {
		t.Errorf("expected a fill-rect shadow operator, got %q", content)
	}
}

func TestPaintPageSkipsInsetShadows(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	node := &domain.LayoutNode{
		Box: domain.Box{Width: 10, Height: 10},
		Style: domain.ComputedStyle{
			BoxShadows: []domain.Shadow{{Inset: true, Color: domain.Color{A: 255}}},
		},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected inset shadows to be skipped entirely, got %q", content)
	}
}

func TestPaintPageBuildsShadingResourceForGradientBackground(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	node := &domain.LayoutNode{
		Box: domain.Box{Width: 40, Height: 40},
		Style: domain.ComputedStyle{
			BackgroundGradient: &domain.Gradient{
				Kind: domain.GradientLinear,
				Stops: []domain.GradientStop{
					{Color: domain.Color{A: 255}, Offset: 0},
					{Color: domain.Color{R: 255, A: 255}, Offset: 1},
				},
			},
		},
	}
	content, resources, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	if !strings.Contains(string(content), " sh\n") {
		t.Errorf("expected a shading paint operator, got %q", content)
	}
	if _, ok := resources["Shading"]; !ok {
		t.Errorf("expected a Shading resource entry, got %v", resources)
	}
}

// TestPaintPageRoundsBorderWithEightBezierCorners mirrors spec.md 8.3's
// literal scenario: a 200x63 px box with a 2 px border and 15 px radius
// emits 8 cubic-Bézier `c` operators (4 outer + 4 inner rounded corners)
// and an `f*` even-odd fill operator.
func TestPaintPageRoundsBorderWithEightBezierCorners(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	radii := [4]domain.CornerRadius{{X: 15, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 15}}
	node := &domain.LayoutNode{
		Box: domain.Box{Width: 200, Height: 63},
		Style: domain.ComputedStyle{
			Border:       domain.BorderStyle{Width: 2, Style: domain.BorderSolid, Color: domain.Color{A: 255}},
			BorderRadius: radii,
		},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	s := string(content)
	if got := strings.Count(s, " c\n"); got != 8 {
		t.Errorf("expected 8 cubic-Bézier c operators, got %d in %q", got, s)
	}
	if !strings.Contains(s, "f*\n") {
		t.Errorf("expected an even-odd f* fill operator, got %q", s)
	}
	if strings.Contains(s, "re S") {
		t.Errorf("rounded border should not fall back to a plain stroked rectangle, got %q", s)
	}
}

func TestPaintPageFillsRoundedBackgroundWithFourBezierCorners(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	radii := [4]domain.CornerRadius{{X: 10, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 10}}
	node := &domain.LayoutNode{
		Box: domain.Box{Width: 80, Height: 40},
		Style: domain.ComputedStyle{
			Background:   domain.Background{Color: domain.Color{R: 255, A: 255}},
			BorderRadius: radii,
		},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	s := string(content)
	if got := strings.Count(s, " c\n"); got != 4 {
		t.Errorf("expected 4 cubic-Bézier c operators for a single rounded rect, got %d in %q", got, s)
	}
	if !strings.Contains(s, "f\n") {
		t.Errorf("expected a fill operator, got %q", s)
	}
}

func TestClampRadiiShrinksOversizedCornersProportionally(t *testing.T) {
	radii := [4]domain.CornerRadius{{X: 40, Y: 40}, {X: 40, Y: 40}, {X: 0, Y: 0}, {X: 0, Y: 0}}
	got := clampRadii(60, 100, radii)
	// top edge wants 40+40=80 across a 60-wide box: shrink factor 60/80=0.75.
	want := 40 * 0.75
	if got[0].X != want || got[1].X != want {
		t.Errorf("expected top corners clamped to %v, got %v and %v", want, got[0].X, got[1].X)
	}
}

func TestPaintPageWrapsTransformedAndTranslucentNodes(t *testing.T) {
	w := pdfwriter.New()
	p := New(w, nil, nil, 1)

	node := &domain.LayoutNode{
		Box: domain.Box{Width: 10, Height: 10},
		Style: domain.ComputedStyle{
			Opacity:   0.5,
			Transform: &domain.Matrix2x3{A: 1, D: 1},
		},
	}
	content, _, err := p.PaintPage(&paginate.Page{Nodes: []*domain.LayoutNode{node}}, 100)
	if err != nil {
		t.Fatalf("PaintPage: %v", err)
	}
	s := string(content)
	if strings.Count(s, "q\n") != strings.Count(s, "Q\n") {
		t.Errorf("unbalanced q/Q pairs: %q", s)
	}
	if !strings.HasPrefix(s, "q\n") {
		t.Errorf("expected the wrapped node to open with q, got %q", s)
	}
}
