package layout

import "htmlpdf/internal/core/domain"

// layoutFlex implements single-line flexbox: main-axis distribution by
// flex-grow/flex-shrink over the children's basis widths, each child
// placed at the top of the content box with its own height kept (no
// cross-axis stretch). Column direction falls back to block stacking;
// wrap is read from FlexProps but multi-line wrap collapses to a single
// line (a pragmatic subset, not full flexbox).
func (fe *FlowEngine) layoutFlex(node *domain.LayoutNode, ctx *LayoutContext) {
	contentX := node.Box.X + node.Style.Border.Width + node.Style.Padding.Left
	contentY := node.Box.Y + node.Style.Border.Width + node.Style.Padding.Top
	contentWidth := node.Box.Width - 2*node.Style.Border.Width - node.Style.Padding.Left - node.Style.Padding.Right

	column := node.Style.FlexProps.Direction == "column" || node.Style.FlexProps.Direction == "column-reverse"
	if column {
		fe.layoutBlock(node, ctx) // column-direction flex degrades to block stacking
		return
	}

	children := flowChildren(node)
	if len(children) == 0 {
		return
	}

	totalBasis, totalGrow, totalShrink := 0.0, 0.0, 0.0
	basis := make([]float64, len(children))
	for i, c := range children {
		b := c.Box.Width
		if c.Style.FlexProps.Basis != "" && c.Style.FlexProps.Basis != "auto" {
			b = (&BoxCalculator{}).parseLength(c.Style.FlexProps.Basis, contentWidth)
		}
		basis[i] = b
		totalBasis += b
		totalGrow += c.Style.FlexProps.Grow
		totalShrink += c.Style.FlexProps.Shrink
	}

	slack := contentWidth - totalBasis
	finalWidths := make([]float64, len(children))
	for i, c := range children {
		w := basis[i]
		switch {
		case slack > 0 && totalGrow > 0:
			w += slack * (c.Style.FlexProps.Grow / totalGrow)
		case slack < 0 && totalShrink > 0:
			w += slack * (c.Style.FlexProps.Shrink / totalShrink)
		}
		if w < 0 {
			w = 0
		}
		finalWidths[i] = w
	}

	curX := contentX
	justify := node.Style.FlexProps.Justify
	extra := 0.0
	if slack > 0 && (justify == "space-between" || justify == "space-around" || justify == "center") {
		switch justify {
		case "center":
			curX += slack / 2
		case "space-between", "space-around":
			extra = slack / float64(len(children)+1)
			if justify == "space-between" && len(children) > 1 {
				extra = slack / float64(len(children)-1)
				curX += 0
			} else {
				curX += extra
			}
		}
	}

	for i, c := range children {
		c.Box.X = curX
		c.Box.Y = contentY
		c.Box.Width = finalWidths[i]
		curX += finalWidths[i]
		if justify == "space-between" {
			curX += extra
		} else if justify == "space-around" {
			curX += extra
		}
	}
}

// layoutGrid implements a fixed-track CSS grid subset: explicit
// template-columns resolved to pixel tracks (percentage and fixed-length;
// `fr` tracks share the remaining space in proportion to their fr
// values), children placed by their GridProps column start/end and row
// start. Every row has the same height (twice the line height);
// template-rows and row end are not read.
func (fe *FlowEngine) layoutGrid(node *domain.LayoutNode, ctx *LayoutContext) {
	contentX := node.Box.X + node.Style.Border.Width + node.Style.Padding.Left
	contentY := node.Box.Y + node.Style.Border.Width + node.Style.Padding.Top
	contentWidth := node.Box.Width - 2*node.Style.Border.Width - node.Style.Padding.Left - node.Style.Padding.Right

	cols := resolveTracks(node.Style.GridProps.TemplateColumns, contentWidth, node.Style.GridProps.ColumnGap)
	if len(cols) == 0 {
		cols = []float64{contentWidth}
	}
	colOffsets := trackOffsets(cols, node.Style.GridProps.ColumnGap)

	rowHeight := node.Style.Font.Size * node.Style.Text.LineHeight * 2
	if rowHeight <= 0 {
		rowHeight = 32
	}

	for _, c := range flowChildren(node) {
		col := c.Style.GridProps.ColumnStart
		if col <= 0 {
			col = 1
		}
		row := c.Style.GridProps.RowStart
		if row <= 0 {
			row = 1
		}
		colIdx := col - 1
		if colIdx >= len(cols) {
			colIdx = len(cols) - 1
		}
		span := 1
		if c.Style.GridProps.ColumnEnd > col {
			span = c.Style.GridProps.ColumnEnd - col
		}
		width := 0.0
		for s := 0; s < span && colIdx+s < len(cols); s++ {
			width += cols[colIdx+s]
			if s > 0 {
				width += node.Style.GridProps.ColumnGap
			}
		}
		c.Box.X = contentX + colOffsets[colIdx]
		c.Box.Y = contentY + float64(row-1)*(rowHeight+node.Style.GridProps.RowGap)
		c.Box.Width = width
	}
}

func resolveTracks(tracks []string, available, gap float64) []float64 {
	if len(tracks) == 0 {
		return nil
	}
	out := make([]float64, len(tracks))
	frCount := 0.0
	fixed := 0.0
	bc := &BoxCalculator{}
	for i, t := range tracks {
		if len(t) > 2 && t[len(t)-2:] == "fr" {
			frCount += parseFloat(t[:len(t)-2])
			continue
		}
		out[i] = bc.parseLength(t, available)
		fixed += out[i]
	}
	remaining := available - fixed - gap*float64(len(tracks)-1)
	if remaining < 0 {
		remaining = 0
	}
	for i, t := range tracks {
		if len(t) > 2 && t[len(t)-2:] == "fr" && frCount > 0 {
			out[i] = remaining * (parseFloat(t[:len(t)-2]) / frCount)
		}
	}
	return out
}

func trackOffsets(tracks []float64, gap float64) []float64 {
	offsets := make([]float64, len(tracks))
	x := 0.0
	for i, w := range tracks {
		offsets[i] = x
		x += w + gap
	}
	return offsets
}

// layoutTable assigns column/row tracks across the whole table before
// positioning any cell, so a cell's colspan/rowspan can claim width or
// height that spans multiple tracks (spec.md 8's literal table scenario:
// a colspan=2 header cell's width equals the sum of the two column
// widths, and a rowspan=2 cell's height equals the sum of the two row
// heights). A fixed 2D occupancy grid tracks which (row, col) slots a
// spanning cell has already claimed, the standard HTML table algorithm
// for resolving spans without an explicit column/row count up front.
func (fe *FlowEngine) layoutTable(node *domain.LayoutNode, ctx *LayoutContext) {
	contentX := node.Box.X + node.Style.Border.Width + node.Style.Padding.Left
	contentY := node.Box.Y + node.Style.Border.Width + node.Style.Padding.Top
	contentWidth := node.Box.Width - 2*node.Style.Border.Width - node.Style.Padding.Left - node.Style.Padding.Right

	rows := make([]*domain.LayoutNode, 0)
	for _, row := range flowChildren(node) {
		if row.Style.TableRole == "row" {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return
	}

	// occupied[r][c] is true once some cell (possibly from an earlier row,
	// via rowspan) has claimed column c in row r.
	occupied := make([]map[int]bool, len(rows))
	for i := range occupied {
		occupied[i] = make(map[int]bool)
	}

	type placedCell struct {
		cell             *domain.LayoutNode
		rowIdx, col      int
		colSpan, rowSpan int
	}
	var placed []placedCell
	numCols := 0

	for ri, row := range rows {
		cells := flowChildren(row)
		col := 0
		for _, cell := range cells {
			for occupied[ri][col] {
				col++
			}
			colSpan := cell.Style.ColSpan
			if colSpan < 1 {
				colSpan = 1
			}
			rowSpan := cell.Style.RowSpan
			if rowSpan < 1 {
				rowSpan = 1
			}
			for dr := 0; dr < rowSpan && ri+dr < len(rows); dr++ {
				for dc := 0; dc < colSpan; dc++ {
					occupied[ri+dr][col+dc] = true
				}
			}
			placed = append(placed, placedCell{cell: cell, rowIdx: ri, col: col, colSpan: colSpan, rowSpan: rowSpan})
			if col+colSpan > numCols {
				numCols = col + colSpan
			}
			col += colSpan
		}
	}
	if numCols == 0 {
		return
	}

	colWidth := contentWidth / float64(numCols)
	colOffsets := make([]float64, numCols+1)
	for i := 0; i <= numCols; i++ {
		colOffsets[i] = float64(i) * colWidth
	}

	// Each cell's own subtree was already laid out (text wrapped, height
	// resolved) earlier in the post-order recursion in calculateLayout,
	// against whatever provisional width the box calculator gave it; only
	// its final position and column-span width are assigned here. Cell
	// height is read from that pass, not recomputed against the span
	// width — matching this table layout's pre-existing simplification of
	// not re-running text layout once a column width is known.
	for _, pc := range placed {
		pc.cell.Box.Width = colOffsets[pc.col+pc.colSpan] - colOffsets[pc.col]
	}

	// rowspan-1 height contribution per row, ignoring cells that span
	// multiple rows (their height is distributed across the rows they
	// cover only after every row's own natural height is known).
	rowHeights := make([]float64, len(rows))
	for _, pc := range placed {
		if pc.rowSpan == 1 && pc.cell.Box.Height > rowHeights[pc.rowIdx] {
			rowHeights[pc.rowIdx] = pc.cell.Box.Height
		}
	}
	for _, pc := range placed {
		if pc.rowSpan <= 1 {
			continue
		}
		spanned := 0.0
		for dr := 0; dr < pc.rowSpan && pc.rowIdx+dr < len(rows); dr++ {
			spanned += rowHeights[pc.rowIdx+dr]
		}
		if pc.cell.Box.Height > spanned {
			extra := (pc.cell.Box.Height - spanned) / float64(pc.rowSpan)
			for dr := 0; dr < pc.rowSpan && pc.rowIdx+dr < len(rows); dr++ {
				rowHeights[pc.rowIdx+dr] += extra
			}
		}
	}

	rowOffsets := make([]float64, len(rows)+1)
	for i, h := range rowHeights {
		rowOffsets[i+1] = rowOffsets[i] + h
	}

	for ri, row := range rows {
		row.Box.X = contentX
		row.Box.Y = contentY + rowOffsets[ri]
		row.Box.Width = contentWidth
		row.Box.Height = rowHeights[ri]
	}
	for _, pc := range placed {
		pc.cell.Box.X = contentX + colOffsets[pc.col]
		pc.cell.Box.Y = contentY + rowOffsets[pc.rowIdx]
		pc.cell.Box.Height = rowOffsets[pc.rowIdx+pc.rowSpan] - rowOffsets[pc.rowIdx]
	}

	node.Box.Height = 2*node.Style.Border.Width + node.Style.Padding.Top + node.Style.Padding.Bottom + rowOffsets[len(rows)]
}

func flowChildren(node *domain.LayoutNode) []*domain.LayoutNode {
	var out []*domain.LayoutNode
	for _, c := range node.Children {
		if c.Style.Position != domain.PositionAbsolute && c.Style.Position != domain.PositionFixed {
			out = append(out, c)
		}
	}
	return out
}
