package layout

import (
	"testing"

	"htmlpdf/internal/core/domain"
)

// buildCell makes a table cell with the given colspan/rowspan and an
// already-resolved intrinsic height (as if its own subtree had already
// been laid out, matching calculateLayout's post-order recursion).
func buildCell(colSpan, rowSpan int, height float64) *domain.LayoutNode {
	return &domain.LayoutNode{
		Box:   domain.Box{Height: height},
		Style: domain.ComputedStyle{TableRole: "cell", ColSpan: colSpan, RowSpan: rowSpan},
	}
}

func buildRow(cells ...*domain.LayoutNode) *domain.LayoutNode {
	return &domain.LayoutNode{
		Style:    domain.ComputedStyle{TableRole: "row"},
		Children: cells,
	}
}

// TestLayoutTableColspanSumsColumnWidths mirrors spec.md 8's literal table
// scenario: a 3-row table where row 1 has a cell with colspan=2 and row 2's
// first cell has rowspan=2. The colspan cell's width must equal the sum of
// the two column widths, and the rowspan cell's height must equal the sum
// of the two row heights it covers.
func TestLayoutTableColspanSumsColumnWidths(t *testing.T) {
	header := buildCell(2, 1, 20)
	row1 := buildRow(header)

	spanCell := buildCell(1, 2, 80) // tall enough to force both covered rows to grow
	row2a := buildCell(1, 1, 20)
	row2 := buildRow(spanCell, row2a)

	// row3 supplies only one explicit cell: the rowspan=2 cell from row2
	// already covers row3's first column, the same way a browser treats a
	// <tr> that omits the <td> a preceding rowspan has claimed.
	row3a := buildCell(1, 1, 20)
	row3 := buildRow(row3a)

	table := &domain.LayoutNode{
		Box:      domain.Box{Width: 300, Height: 200},
		Style:    domain.ComputedStyle{TableRole: "table", Height: "auto"},
		Children: []*domain.LayoutNode{row1, row2, row3},
	}

	fe := NewFlowEngine()
	fe.layoutTable(table, &LayoutContext{})

	wantColWidth := 300.0 / 2
	wantHeaderWidth := wantColWidth * 2
	if header.Box.Width != wantHeaderWidth {
		t.Errorf("colspan=2 header width = %v, want sum of two columns %v", header.Box.Width, wantHeaderWidth)
	}

	wantSpanHeight := row2.Box.Height + row3.Box.Height
	if spanCell.Box.Height != wantSpanHeight {
		t.Errorf("rowspan=2 cell height = %v, want sum of two row heights %v", spanCell.Box.Height, wantSpanHeight)
	}

	if row2a.Box.X != wantColWidth {
		t.Errorf("row2's second cell should start at the second column offset %v, got %v", wantColWidth, row2a.Box.X)
	}
}

func TestLayoutTableUnspannedCellsFillAnEvenColumnWidth(t *testing.T) {
	a, b := buildCell(1, 1, 10), buildCell(1, 1, 10)
	row := buildRow(a, b)
	table := &domain.LayoutNode{
		Box:      domain.Box{Width: 100, Height: 50},
		Style:    domain.ComputedStyle{TableRole: "table"},
		Children: []*domain.LayoutNode{row},
	}

	NewFlowEngine().layoutTable(table, &LayoutContext{})

	if a.Box.Width != 50 || b.Box.Width != 50 {
		t.Errorf("expected an even 50/50 split, got %v and %v", a.Box.Width, b.Box.Width)
	}
	if b.Box.X != 50 {
		t.Errorf("second cell should start at x=50, got %v", b.Box.X)
	}
}
