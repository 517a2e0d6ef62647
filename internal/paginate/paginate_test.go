package paginate

import (
	"testing"

	"htmlpdf/internal/core/domain"
)

func block(id string, y, h float64) *domain.LayoutNode {
	return &domain.LayoutNode{ID: id, Box: domain.Box{Y: y, Width: 100, Height: h}}
}

func TestPaginateSinglePageWhenContentFits(t *testing.T) {
	root := block("root", 0, 50)
	root.Children = []*domain.LayoutNode{block("a", 0, 20), block("b", 20, 20)}

	pages, err := New(100).Paginate(root)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Number != 1 {
		t.Errorf("expected page number 1, got %d", pages[0].Number)
	}
}

func TestPaginateRollsOverToNewPageForUnsplittableBlock(t *testing.T) {
	root := block("root", 0, 250)
	child1 := block("a", 0, 80)
	child1.Style.Display = domain.DisplayFlex
	child2 := block("b", 80, 80)
	child2.Style.Display = domain.DisplayFlex
	root.Children = []*domain.LayoutNode{child1, child2}

	pages, err := New(100).Paginate(root)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(pages) < 2 {
		t.Fatalf("expected pagination to roll onto a second page, got %d pages", len(pages))
	}
	for _, p := range pages {
		for _, n := range p.Nodes {
			if n.Box.Y < 0 {
				t.Errorf("page %d has a node with negative rebased Y: %v", p.Number, n.Box.Y)
			}
		}
	}
}

func TestPaginateSplitsTextNodeAcrossPageBoundary(t *testing.T) {
	root := block("root", 0, 200)
	text := block("p", 0, 200)
	text.Lines = []domain.TextLine{
		{Y: 0, Height: 20},
		{Y: 20, Height: 20},
		{Y: 40, Height: 20},
		{Y: 60, Height: 20},
		{Y: 80, Height: 20},
		{Y: 100, Height: 20},
	}
	root.Children = []*domain.LayoutNode{text}

	pages, err := New(100).Paginate(root)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected the text node to split across 2 pages, got %d", len(pages))
	}

	firstPageText := pages[0].Nodes[len(pages[0].Nodes)-1]
	if len(firstPageText.Lines) != 5 {
		t.Errorf("expected 5 lines to fit on the first page, got %d", len(firstPageText.Lines))
	}

	secondPageText := pages[1].Nodes[len(pages[1].Nodes)-1]
	if len(secondPageText.Lines) != 1 {
		t.Errorf("expected 1 overflow line on the second page, got %d", len(secondPageText.Lines))
	}
	if secondPageText.ID != text.ID+"+cont" {
		t.Errorf("expected continuation node ID suffix, got %q", secondPageText.ID)
	}
	if secondPageText.Lines[0].Y != 0 {
		t.Errorf("expected overflow lines rebased to start at Y=0, got %v", secondPageText.Lines[0].Y)
	}
}

func TestPaginateRejectsNilTreeAndNonPositiveHeight(t *testing.T) {
	if _, err := New(100).Paginate(nil); err == nil {
		t.Fatal("expected an error for a nil layout tree")
	}
	if _, err := New(0).Paginate(block("root", 0, 10)); err == nil {
		t.Fatal("expected an error for a non-positive content height")
	}
}

func TestAvoidBreakInsideCoversTablesFlexAndImages(t *testing.T) {
	textNode := block("t", 0, 10)
	textNode.Lines = []domain.TextLine{{Y: 0, Height: 10}}
	if avoidBreakInside(textNode) {
		t.Error("a text node should be splittable")
	}

	table := block("table", 0, 10)
	table.Style.TableRole = "table"
	if !avoidBreakInside(table) {
		t.Error("a table should not be split across pages")
	}

	img := block("img", 0, 10)
	img.Type = "image"
	if !avoidBreakInside(img) {
		t.Error("an image should not be split across pages")
	}

	plain := block("div", 0, 10)
	if avoidBreakInside(plain) {
		t.Error("a plain block container should be splittable at children boundaries")
	}
}
