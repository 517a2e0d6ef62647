package layout

import (
	"testing"

	"htmlpdf/internal/core/domain"
)

func TestCollapseMarginsBothPositiveTakesTheLarger(t *testing.T) {
	if got := collapseMargins(20, 10); got != 20 {
		t.Errorf("collapseMargins(20, 10) = %v, want 20", got)
	}
}

func TestCollapseMarginsPositiveAndNegativeSumsThem(t *testing.T) {
	if got := collapseMargins(10, -5); got != 5 {
		t.Errorf("collapseMargins(10, -5) = %v, want 5", got)
	}
}

func TestCollapseMarginsBothNegativeTakesTheSmaller(t *testing.T) {
	if got := collapseMargins(-10, -20); got != -20 {
		t.Errorf("collapseMargins(-10, -20) = %v, want -20", got)
	}
}

// TestLayoutBlockCollapsesAdjoiningSiblingMargins exercises spec.md 8's
// margin-collapsing law end to end: two block siblings with margin-bottom
// 20 and margin-top 10 must leave a 20px gap (max of the two), not 0.
func TestLayoutBlockCollapsesAdjoiningSiblingMargins(t *testing.T) {
	fe := NewFlowEngine()
	child1 := &domain.LayoutNode{
		Box:   domain.Box{Height: 10},
		Style: domain.ComputedStyle{Width: "100", Margin: domain.Margins{Bottom: 20}},
	}
	child2 := &domain.LayoutNode{
		Box:   domain.Box{Height: 10},
		Style: domain.ComputedStyle{Width: "100", Margin: domain.Margins{Top: 10}},
	}
	parent := &domain.LayoutNode{
		Box:      domain.Box{Width: 200, Height: 100},
		Style:    domain.ComputedStyle{Height: "100"},
		Children: []*domain.LayoutNode{child1, child2},
	}

	fe.layoutBlock(parent, &LayoutContext{})

	wantGap := 20.0
	gotGap := child2.Box.Y - (child1.Box.Y + child1.Box.Height)
	if gotGap != wantGap {
		t.Errorf("collapsed gap = %v, want %v (max(20,10))", gotGap, wantGap)
	}
}

func TestLayoutBlockCollapsesPositiveAndNegativeSiblingMargins(t *testing.T) {
	fe := NewFlowEngine()
	child1 := &domain.LayoutNode{
		Box:   domain.Box{Height: 10},
		Style: domain.ComputedStyle{Width: "100", Margin: domain.Margins{Bottom: 10}},
	}
	child2 := &domain.LayoutNode{
		Box:   domain.Box{Height: 10},
		Style: domain.ComputedStyle{Width: "100", Margin: domain.Margins{Top: -5}},
	}
	parent := &domain.LayoutNode{
		Box:      domain.Box{Width: 200, Height: 100},
		Style:    domain.ComputedStyle{Height: "100"},
		Children: []*domain.LayoutNode{child1, child2},
	}

	fe.layoutBlock(parent, &LayoutContext{})

	wantGap := 5.0
	gotGap := child2.Box.Y - (child1.Box.Y + child1.Box.Height)
	if gotGap != wantGap {
		t.Errorf("collapsed gap = %v, want %v (10 + (-5))", gotGap, wantGap)
	}
}
