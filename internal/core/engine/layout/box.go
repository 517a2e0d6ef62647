package layout

import (
	"strconv"
	"strings"

	"htmlpdf/internal/core/domain"
)

// BoxCalculator resolves the CSS box model (content/padding/border/margin
// boxes) for a single node, given the dimensions its parent already
// resolved. Width resolution is top-down (a child never needs to know
// its own children to size itself); auto height is resolved bottom-up,
// once FlowEngine has positioned the children.
type BoxCalculator struct{}

// NewBoxCalculator creates a new box calculator
func NewBoxCalculator() *BoxCalculator {
	return &BoxCalculator{}
}

// Calculate resolves node's box geometry from its parent's already-known
// content width. Height is provisional here when Height == "auto"; the
// flow/inline passes correct it once children are positioned.
func (bc *BoxCalculator) Calculate(node *domain.LayoutNode, ctx *LayoutContext) error {
	if node == nil {
		return nil
	}

	containerWidth := ctx.Viewport.Width
	if node.Parent != nil {
		containerWidth = bc.contentWidth(node.Parent)
	}

	width := containerWidth
	if node.Style.Width != "auto" && node.Style.Width != "" {
		width = bc.parseLength(node.Style.Width, containerWidth)
	}
	width -= node.Style.Margin.Left + node.Style.Margin.Right +
		node.Style.Border.Width*2 + node.Style.Padding.Left + node.Style.Padding.Right
	if width < 0 {
		width = 0
	}

	height := 0.0
	if node.Style.Height != "auto" && node.Style.Height != "" {
		height = bc.parseLength(node.Style.Height, ctx.Viewport.Height)
	}

	node.Box.Width = width + node.Style.Border.Width*2 + node.Style.Padding.Left + node.Style.Padding.Right
	node.Box.Height = height + node.Style.Border.Width*2 + node.Style.Padding.Top + node.Style.Padding.Bottom

	return nil
}

// contentWidth returns the width available to node's children: its box
// width minus its own border and padding.
func (bc *BoxCalculator) contentWidth(node *domain.LayoutNode) float64 {
	w := node.Box.Width - node.Style.Border.Width*2 - node.Style.Padding.Left - node.Style.Padding.Right
	if w < 0 {
		return 0
	}
	return w
}

// parseLength parses a CSS length value against a container size. Only
// the unit set the pragmatic CSS parser actually emits is handled; an
// unrecognized unit degrades to 0 rather than erroring, per the layout
// engine's "never fail" contract.
func (bc *BoxCalculator) parseLength(value string, containerSize float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" || value == "auto" {
		return 0
	}
	if strings.HasSuffix(value, "%") {
		if percent := parseFloat(value[:len(value)-1]); percent >= 0 {
			return containerSize * percent / 100
		}
		return 0
	}
	for unit, factor := range map[string]float64{
		"px": 1, "pt": 1.3333333333, "in": 96, "cm": 37.7952755906,
		"mm": 3.7795275591, "em": 16, "rem": 16,
	} {
		if strings.HasSuffix(value, unit) {
			return parseFloat(value[:len(value)-len(unit)]) * factor
		}
	}
	return parseFloat(value)
}

func parseFloat(s string) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	return 0
}
