package layout

import "htmlpdf/internal/core/domain"

// FlowEngine positions a node's children once their own boxes are sized,
// dispatching on display value the way spec.md 4.E's layout strategy
// table requires: block, inline, flex, grid, table, or a block fallback
// for anything else (form/fallback strategies route here too, since
// they still stack their children vertically).
type FlowEngine struct{}

// NewFlowEngine creates a new flow engine
func NewFlowEngine() *FlowEngine {
	return &FlowEngine{}
}

// Calculate lays out node's children and resolves node's own auto height
// from the result.
func (fe *FlowEngine) Calculate(node *domain.LayoutNode, ctx *LayoutContext) error {
	if node == nil || node.Style.Position == domain.PositionAbsolute || node.Style.Position == domain.PositionFixed {
		return nil
	}

	switch node.Style.Display {
	case domain.DisplayFlex:
		fe.layoutFlex(node, ctx)
	case domain.DisplayGrid:
		fe.layoutGrid(node, ctx)
	default:
		if node.Style.TableRole == "table" {
			fe.layoutTable(node, ctx)
		} else {
			fe.layoutBlock(node, ctx)
		}
	}

	fe.resolveAutoHeight(node)
	return nil
}

// layoutBlock stacks children top-to-bottom inside node's content box,
// collapsing adjacent vertical margins per the block formatting context
// rule: two block siblings' touching margins collapse through
// collapseMargins (largest positive plus most negative). A first child's
// top margin is added inside the parent's content box; parent/child
// margins are not collapsed.
func (fe *FlowEngine) layoutBlock(node *domain.LayoutNode, ctx *LayoutContext) {
	contentX := node.Box.X + node.Style.Border.Width + node.Style.Padding.Left
	contentTop := node.Box.Y + node.Style.Border.Width + node.Style.Padding.Top
	contentWidth := node.Box.Width - 2*node.Style.Border.Width - node.Style.Padding.Left - node.Style.Padding.Right

	currentY := contentTop
	prevMarginBottom := 0.0
	first := true

	for _, child := range node.Children {
		if child.Style.Position == domain.PositionAbsolute || child.Style.Position == domain.PositionFixed {
			continue // positioned out of normal flow; resolved separately
		}
		if child.Style.Display == domain.DisplayInline {
			fe.layoutInline(child, ctx, contentX, currentY, contentWidth)
			currentY += child.Box.Height
			prevMarginBottom = 0
			first = false
			continue
		}

		marginTop := child.Style.Margin.Top
		if !first {
			currentY += collapseMargins(prevMarginBottom, marginTop)
		} else {
			currentY += marginTop
		}

		child.Box.X = contentX + child.Style.Margin.Left
		child.Box.Y = currentY
		if child.Style.Width == "auto" || child.Style.Width == "" {
			child.Box.Width = contentWidth - child.Style.Margin.Left - child.Style.Margin.Right
		}

		currentY += child.Box.Height
		prevMarginBottom = child.Style.Margin.Bottom
		first = false
	}
	currentY += prevMarginBottom

	if node.Style.Height == "auto" || node.Style.Height == "" {
		node.Box.Height = (currentY - contentTop) + 2*node.Style.Border.Width + node.Style.Padding.Top + node.Style.Padding.Bottom
	}
}

// collapseMargins implements the adjoining-margin collapsing law: the
// result is the largest positive margin plus the smallest (most negative)
// margin, per spec.md 8's round-trip law
// collapse(M) == max(M⁺ ∪ {0}) + min(M⁻ ∪ {0}).
func collapseMargins(a, b float64) float64 {
	pos := 0.0
	if a > pos {
		pos = a
	}
	if b > pos {
		pos = b
	}
	neg := 0.0
	if a < neg {
		neg = a
	}
	if b < neg {
		neg = b
	}
	return pos + neg
}

// resolveAutoHeight pads a node whose declared height ended up smaller
// than its deepest child requires. layoutBlock already does this for the
// block strategy; this is the safety net for flex/grid/table paths.
func (fe *FlowEngine) resolveAutoHeight(node *domain.LayoutNode) {
	if node.Style.Height != "auto" && node.Style.Height != "" {
		return
	}
	maxBottom := node.Box.Y
	for _, child := range node.Children {
		if b := child.Box.Y + child.Box.Height; b > maxBottom {
			maxBottom = b
		}
	}
	if h := maxBottom - node.Box.Y; h > node.Box.Height {
		node.Box.Height = h
	}
}
