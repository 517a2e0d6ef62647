// Package paginate splits a single laid-out document tree into discrete
// pages and attaches a repeating header/footer to each one.
package paginate

import (
	"fmt"

	"htmlpdf/internal/core/domain"
)

// Page is one page's worth of laid-out content: the nodes that appear on
// it, each repositioned so Y is relative to the page's own top edge, plus
// the shared header/footer for that page.
type Page struct {
	Number int
	Nodes  []*domain.LayoutNode
	Header *domain.LayoutNode
	Footer *domain.LayoutNode
}

// pageWindow is the in-progress state for the page currently being filled.
type pageWindow struct {
	number int
	startY float64
	endY   float64
	nodes  []*domain.LayoutNode
}

// Paginator walks a layout tree in document order and assigns each node
// to a page. A text node that overflows the page boundary is split across
// it via its already shaped TextLine list; an overflowing table,
// flex/grid container or image moves whole to the next page; any other
// container stays on the page where it starts while its children are
// assigned one by one.
type Paginator struct {
	contentHeight float64
}

// New creates a Paginator that breaks content every contentHeight units
// (the printable area height: page height minus top/bottom margins and
// any header/footer reservation).
func New(contentHeight float64) *Paginator {
	return &Paginator{contentHeight: contentHeight}
}

// Paginate splits root into pages. root's boxes must already carry their
// final layout Y positions in single-page (unbroken) document-flow
// coordinates; Paginate does not re-run layout, only re-buckets nodes.
func (p *Paginator) Paginate(root *domain.LayoutNode) ([]*Page, error) {
	if root == nil {
		return nil, fmt.Errorf("paginate: nil layout tree")
	}
	if p.contentHeight <= 0 {
		return nil, fmt.Errorf("paginate: content height must be positive")
	}

	var pages []*pageWindow
	cur := &pageWindow{number: 1, startY: 0, endY: p.contentHeight}

	p.walk(root, &cur, &pages)
	if len(cur.nodes) > 0 || len(pages) == 0 {
		pages = append(pages, cur)
	}

	out := make([]*Page, len(pages))
	for i, w := range pages {
		out[i] = &Page{Number: w.number, Nodes: rebase(w.nodes, w.startY)}
	}
	return out, nil
}

// walk assigns node (and recursively its children) to *cur, rolling *cur
// to a fresh page whenever content overflows the current page boundary at
// a safe break point.
func (p *Paginator) walk(node *domain.LayoutNode, cur **pageWindow, pages *[]*pageWindow) {
	if node == nil {
		return
	}

	bottom := node.Box.Y + node.Box.Height
	if bottom > (*cur).endY && avoidBreakInside(node) {
		// Whole node must move to a fresh page rather than split.
		rollPage(cur, pages, node.Box.Y)
	} else if bottom > (*cur).endY && len(node.Lines) > 0 {
		p.splitTextNode(node, cur, pages)
		return
	}

	(*cur).nodes = append((*cur).nodes, node)

	for _, child := range node.Children {
		p.walk(child, cur, pages)
	}
}

// splitTextNode breaks a node's shaped TextLine list across the page
// boundary, emitting a continuation node (same ID with a "+cont" suffix) that
// starts the next page.
func (p *Paginator) splitTextNode(node *domain.LayoutNode, cur **pageWindow, pages *[]*pageWindow) {
	fit := node.Lines
	var overflow []domain.TextLine
	for i, line := range node.Lines {
		if node.Box.Y+line.Y+line.Height > (*cur).endY {
			fit = node.Lines[:i]
			overflow = node.Lines[i:]
			break
		}
	}

	head := *node
	head.Lines = fit
	if len(fit) > 0 {
		head.Box.Height = fit[len(fit)-1].Y + fit[len(fit)-1].Height
	} else {
		head.Box.Height = 0
	}
	(*cur).nodes = append((*cur).nodes, &head)

	if len(overflow) == 0 {
		return
	}

	rollPage(cur, pages, (*cur).endY)

	tail := *node
	tail.ID = node.ID + "+cont"
	tail.Box.Y = (*cur).startY
	shiftY := overflow[0].Y
	shiftedLines := make([]domain.TextLine, len(overflow))
	for i, l := range overflow {
		l.Y -= shiftY
		shiftedLines[i] = l
	}
	tail.Lines = shiftedLines
	tail.Box.Height = shiftedLines[len(shiftedLines)-1].Y + shiftedLines[len(shiftedLines)-1].Height
	(*cur).nodes = append((*cur).nodes, &tail)
}

func rollPage(cur **pageWindow, pages *[]*pageWindow, nextStart float64) {
	*pages = append(*pages, *cur)
	*cur = &pageWindow{
		number: (*cur).number + 1,
		startY: nextStart,
		endY:   nextStart + ((*cur).endY - (*cur).startY),
	}
}

// avoidBreakInside reports whether node should move to a new page as a
// whole rather than being split: anything that isn't itself text and
// isn't a plain block container (tables, flex/grid containers, images)
// reads better intact than torn across a page edge.
func avoidBreakInside(node *domain.LayoutNode) bool {
	if len(node.Lines) > 0 {
		return false
	}
	switch node.Style.Display {
	case domain.DisplayFlex, domain.DisplayGrid:
		return true
	}
	return node.Style.TableRole == "table" || node.Type == "image"
}

// rebase clones nodes with their Y shifted so the page's own content
// starts at 0, independent of where it fell in the original document flow.
func rebase(nodes []*domain.LayoutNode, startY float64) []*domain.LayoutNode {
	out := make([]*domain.LayoutNode, len(nodes))
	for i, n := range nodes {
		cp := *n
		cp.Box.Y -= startY
		out[i] = &cp
	}
	return out
}
