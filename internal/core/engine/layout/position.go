package layout

import "htmlpdf/internal/core/domain"

// resolvePositioned walks the layout tree placing absolute/fixed children
// against their containing block. The containing block for an absolute
// element is its nearest ancestor with Position != static; for a fixed
// element it is always the page viewport. Lookup goes through idx (ID ->
// node) rather than the Parent pointer: the paginator clones and offsets
// per-page subtrees, and a clone does not carry the original tree's
// pointer identity, only its IDs.
func resolvePositioned(node *domain.LayoutNode, idx domain.NodeIndex, ctx *LayoutContext) {
	if node == nil {
		return
	}
	for _, child := range node.Children {
		if child.Style.Position == domain.PositionAbsolute || child.Style.Position == domain.PositionFixed {
			placePositioned(child, idx, ctx)
		}
		resolvePositioned(child, idx, ctx)
	}
}

func placePositioned(node *domain.LayoutNode, idx domain.NodeIndex, ctx *LayoutContext) {
	containing := domain.Box{Width: ctx.Viewport.Width, Height: ctx.Viewport.Height}
	if node.Style.Position == domain.PositionAbsolute {
		if cb := findContainingBlock(node.ParentID, idx); cb != nil {
			containing = cb.Box
		}
	}

	bc := &BoxCalculator{}
	if node.Style.Left != "" && node.Style.Left != "auto" {
		node.Box.X = containing.X + bc.parseLength(node.Style.Left, containing.Width)
	} else if node.Style.Right != "" && node.Style.Right != "auto" {
		node.Box.X = containing.X + containing.Width - node.Box.Width - bc.parseLength(node.Style.Right, containing.Width)
	} else {
		node.Box.X = containing.X
	}

	if node.Style.Top != "" && node.Style.Top != "auto" {
		node.Box.Y = containing.Y + bc.parseLength(node.Style.Top, containing.Height)
	} else if node.Style.Bottom != "" && node.Style.Bottom != "auto" {
		node.Box.Y = containing.Y + containing.Height - node.Box.Height - bc.parseLength(node.Style.Bottom, containing.Height)
	} else {
		node.Box.Y = containing.Y
	}
}

// findContainingBlock walks ancestor IDs looking for the nearest positioned
// (non-static) ancestor, the CSS-defined containing block for an absolutely
// positioned descendant.
func findContainingBlock(parentID string, idx domain.NodeIndex) *domain.LayoutNode {
	for parentID != "" {
		n, ok := idx[parentID]
		if !ok {
			return nil
		}
		if n.Style.Position != domain.PositionStatic {
			return n
		}
		parentID = n.ParentID
	}
	return nil
}
