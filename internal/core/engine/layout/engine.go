package layout

import (
	"fmt"
	"strconv"
	"strings"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/core/engine/css"
	"htmlpdf/internal/core/engine/html"
)

// Engine handles layout calculations for documents
type Engine struct {
	boxCalculator *BoxCalculator
	flowEngine    *FlowEngine
	nodeSeq       int
}

// NewEngine creates a new layout engine
func NewEngine() *Engine {
	return &Engine{
		boxCalculator: NewBoxCalculator(),
		flowEngine:    NewFlowEngine(),
	}
}

// CalculateLayout calculates the layout for a document. fonts resolves CSS
// font declarations to loaded font programs for real-metric text
// measurement; pass nil to fall back entirely to the typographic heuristic.
func (e *Engine) CalculateLayout(domTree *html.DOMNode, stylesheet *css.Stylesheet, options domain.LayoutOptions, fonts FontProvider) (*domain.LayoutNode, error) {
	if domTree == nil {
		return nil, fmt.Errorf("DOM tree is nil")
	}

	// Create layout context
	ctx := &LayoutContext{
		Viewport: domain.Box{
			Width:  float64(options.ViewportWidth),
			Height: float64(options.ViewportHeight),
		},
		DPI:     float64(options.DPI),
		Options: options,
		Fonts:   fonts,
	}

	e.nodeSeq = 0

	// Build layout tree from DOM
	layoutTree, err := e.buildLayoutTree(domTree, stylesheet, ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to build layout tree: %w", err)
	}

	// Calculate layout
	if err := e.calculateLayout(layoutTree, ctx); err != nil {
		return nil, fmt.Errorf("failed to calculate layout: %w", err)
	}

	return layoutTree, nil
}

// buildLayoutTree builds a layout tree from DOM and CSS. Node IDs are a
// stable per-document sequence rather than the DOM node's pointer address:
// the paginator clones and offsets per-page subtrees later, and ID-based
// containing-block lookup (domain.NodeIndex) must keep resolving correctly
// against those clones.
func (e *Engine) buildLayoutTree(domNode *html.DOMNode, stylesheet *css.Stylesheet, ctx *LayoutContext, parentID string) (*domain.LayoutNode, error) {
	if domNode == nil {
		return nil, nil
	}

	e.nodeSeq++
	layoutNode := &domain.LayoutNode{
		ID:       fmt.Sprintf("n%d", e.nodeSeq),
		ParentID: parentID,
		Type:     getNodeTypeName(domNode.Type),
	}

	// Calculate computed styles
	computedStyle, err := e.computeStyle(domNode, stylesheet, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute style: %w", err)
	}
	layoutNode.Style = *computedStyle

	// Skip nodes with display: none
	if computedStyle.Display == domain.DisplayNone {
		return nil, nil
	}

	// Set content for text nodes
	if domNode.Type == html.TextNode {
		layoutNode.Content = domNode.Data
	}

	// Process children
	for _, child := range domNode.Children {
		childLayout, err := e.buildLayoutTree(child, stylesheet, ctx, layoutNode.ID)
		if err != nil {
			return nil, err
		}
		if childLayout != nil {
			childLayout.Parent = layoutNode
			layoutNode.Children = append(layoutNode.Children, childLayout)
		}
	}

	return layoutNode, nil
}

// computeStyle computes the final styles for a DOM node
func (e *Engine) computeStyle(domNode *html.DOMNode, stylesheet *css.Stylesheet, ctx *LayoutContext) (*domain.ComputedStyle, error) {
	// Start with default styles
	style := getDefaultComputedStyle()
	applyTagDefaults(domNode, style)

	// Apply matching CSS rules
	for _, rule := range stylesheet.Rules {
		if e.selectorMatches(rule.Selectors, domNode) {
			e.applyDeclarations(rule.Declarations, style)
		}
	}

	// Apply inline styles
	if inlineStyle, exists := domNode.GetAttribute("style"); exists {
		if err := e.applyInlineStyle(inlineStyle, style); err != nil {
			return nil, fmt.Errorf("failed to apply inline style: %w", err)
		}
	}

	return style, nil
}

// selectorMatches checks if any selector matches the DOM node
func (e *Engine) selectorMatches(selectors []*css.Selector, domNode *html.DOMNode) bool {
	for _, selector := range selectors {
		if e.singleSelectorMatches(selector, domNode) {
			return true
		}
	}
	return false
}

// singleSelectorMatches checks if a single selector matches the DOM node
func (e *Engine) singleSelectorMatches(selector *css.Selector, domNode *html.DOMNode) bool {
	// Simple matching - check the last component
	if len(selector.Components) == 0 {
		return false
	}

	lastComponent := selector.Components[len(selector.Components)-1]

	switch lastComponent.Type {
	case css.SelectorTypeElement:
		return domNode.Type == html.ElementNode && domNode.Data == lastComponent.Value
	case css.SelectorTypeClass:
		if class, exists := domNode.GetAttribute("class"); exists {
			classes := splitClasses(class)
			for _, c := range classes {
				if c == lastComponent.Value {
					return true
				}
			}
		}
	case css.SelectorTypeID:
		if id, exists := domNode.GetAttribute("id"); exists {
			return id == lastComponent.Value
		}
	case css.SelectorTypeUniversal:
		return true
	}

	return false
}

// applyDeclarations applies CSS declarations to computed style
func (e *Engine) applyDeclarations(declarations []*css.Declaration, style *domain.ComputedStyle) {
	for _, decl := range declarations {
		e.applyDeclaration(decl, style)
	}
}

// applyDeclaration applies a single CSS declaration
func (e *Engine) applyDeclaration(decl *css.Declaration, style *domain.ComputedStyle) {
	switch decl.Property {
	case "display":
		style.Display = domain.Display(decl.Value)
	case "position":
		style.Position = domain.Position(decl.Value)
	case "width":
		style.Width = decl.Value
	case "height":
		style.Height = decl.Value
	case "top":
		style.Top = decl.Value
	case "right":
		style.Right = decl.Value
	case "bottom":
		style.Bottom = decl.Value
	case "left":
		style.Left = decl.Value
	case "color":
		if color := css.ParseValue(decl.Value); color != nil {
			if c, ok := color.(*domain.Color); ok {
				style.Color = *c
			}
		}
	case "font-family":
		style.Font.Family = decl.Value
	case "font-size":
		if size := parseSize(decl.Value); size > 0 {
			style.Font.Size = size
		}
	case "font-weight":
		if weight := parseFontWeight(decl.Value); weight > 0 {
			style.Font.Weight = weight
		}
	case "text-align":
		style.Text.Align = domain.TextAlign(decl.Value)
	case "line-height":
		if height := parseSize(decl.Value); height > 0 {
			style.Text.LineHeight = height
		}
	case "letter-spacing":
		style.Text.LetterSpace = parseSize(decl.Value)
	case "word-spacing":
		style.Text.WordSpace = parseSize(decl.Value)
	case "opacity":
		if f, err := strconv.ParseFloat(strings.TrimSpace(decl.Value), 64); err == nil {
			style.Opacity = f
		}
	case "overflow":
		style.Overflow = decl.Value
	case "border-radius":
		r := parseSize(decl.Value)
		for i := range style.BorderRadius {
			style.BorderRadius[i] = domain.CornerRadius{X: r, Y: r}
		}
	case "box-shadow":
		style.BoxShadows = nil
		for _, layer := range strings.Split(decl.Value, ",") {
			if shadow := css.ParseBoxShadow(layer); shadow != nil {
				style.BoxShadows = append(style.BoxShadows, domain.Shadow{
					OffsetX: shadow.OffsetX, OffsetY: shadow.OffsetY,
					Blur: shadow.Blur, Spread: shadow.Spread,
					Color: domain.Color{R: shadow.Color.R, G: shadow.Color.G, B: shadow.Color.B, A: shadow.Color.A},
					Inset: shadow.Inset,
				})
			}
		}
	case "background-image":
		if grad := css.ParseGradient(decl.Value); grad != nil {
			stops := make([]domain.GradientStop, len(grad.Stops))
			for i, s := range grad.Stops {
				stops[i] = domain.GradientStop{Color: domain.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A}, Offset: s.Offset}
			}
			kind := domain.GradientLinear
			if grad.Kind == css.GradientRadial {
				kind = domain.GradientRadial
			}
			style.BackgroundGradient = &domain.Gradient{Kind: kind, Angle: grad.Angle, Stops: stops, Repeating: grad.Repeating}
		} else if url := css.ParseURL(decl.Value); url != "" {
			style.BackgroundImage = &domain.ImageRef{Src: url}
		}
	case "transform":
		if m := css.ParseTransform(decl.Value); m != nil {
			style.Transform = &domain.Matrix2x3{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
		}
	case "flex-direction":
		style.FlexProps.Direction = decl.Value
	case "flex-wrap":
		style.FlexProps.Wrap = decl.Value
	case "justify-content":
		style.FlexProps.Justify = decl.Value
	case "align-items":
		style.FlexProps.AlignItems = decl.Value
	case "align-content":
		style.FlexProps.AlignContent = decl.Value
	case "flex-grow":
		style.FlexProps.Grow = parseSize(decl.Value)
	case "flex-shrink":
		style.FlexProps.Shrink = parseSize(decl.Value)
	case "flex-basis":
		style.FlexProps.Basis = decl.Value
	case "order":
		if o, err := strconv.Atoi(strings.TrimSpace(decl.Value)); err == nil {
			style.FlexProps.Order = o
		}
	case "grid-template-columns":
		style.GridProps.TemplateColumns = strings.Fields(decl.Value)
	case "grid-template-rows":
		style.GridProps.TemplateRows = strings.Fields(decl.Value)
	case "grid-column-gap", "column-gap":
		style.GridProps.ColumnGap = parseSize(decl.Value)
	case "grid-row-gap", "row-gap":
		style.GridProps.RowGap = parseSize(decl.Value)
	case "grid-column-start":
		style.GridProps.ColumnStart, _ = strconv.Atoi(strings.TrimSpace(decl.Value))
	case "grid-column-end":
		style.GridProps.ColumnEnd, _ = strconv.Atoi(strings.TrimSpace(decl.Value))
	case "grid-row-start":
		style.GridProps.RowStart, _ = strconv.Atoi(strings.TrimSpace(decl.Value))
	case "grid-row-end":
		style.GridProps.RowEnd, _ = strconv.Atoi(strings.TrimSpace(decl.Value))
	}
}

// applyInlineStyle applies inline CSS styles
func (e *Engine) applyInlineStyle(inlineStyle string, style *domain.ComputedStyle) error {
	parser := css.NewParser(false)

	// Parse as a single rule
	ruleContent := fmt.Sprintf("dummy { %s }", inlineStyle)
	stylesheet, err := parser.Parse(ruleContent)
	if err != nil {
		return err
	}

	if len(stylesheet.Rules) > 0 {
		e.applyDeclarations(stylesheet.Rules[0].Declarations, style)
	}

	return nil
}

// calculateLayout calculates the actual layout positions and sizes. Text
// measurement for inline content happens inside flowEngine's block/inline
// dispatch (see inline.go), since a text run's final position depends on
// where its block-level container places it.
func (e *Engine) calculateLayout(layoutNode *domain.LayoutNode, ctx *LayoutContext) error {
	if layoutNode == nil {
		return nil
	}

	// Calculate box model
	if err := e.boxCalculator.Calculate(layoutNode, ctx); err != nil {
		return fmt.Errorf("box calculation failed: %w", err)
	}

	// Calculate children layout
	for _, child := range layoutNode.Children {
		if err := e.calculateLayout(child, ctx); err != nil {
			return err
		}
	}

	// Handle document flow
	if err := e.flowEngine.Calculate(layoutNode, ctx); err != nil {
		return fmt.Errorf("flow calculation failed: %w", err)
	}

	return nil
}

// ResolvePositioned walks layoutNode resolving absolute/fixed children
// against their containing block, looked up by ID rather than Parent
// pointer. Call this once after calculateLayout has positioned the normal
// flow; it is a separate pass because a positioned element's containing
// block may not have finished sizing until the whole tree has.
func (e *Engine) ResolvePositioned(root *domain.LayoutNode, ctx *LayoutContext) {
	resolvePositioned(root, domain.BuildNodeIndex(root), ctx)
}

// LayoutContext provides context for layout calculations
type LayoutContext struct {
	Viewport domain.Box
	DPI      float64
	Options  domain.LayoutOptions
	Fonts    FontProvider
}

// Helper functions

// applyTagDefaults sets style defaults implied by an element's tag name
// (table role, default display) before CSS rules are applied, matching the
// way a browser's user-agent stylesheet behaves.
func applyTagDefaults(domNode *html.DOMNode, style *domain.ComputedStyle) {
	if domNode.Type != html.ElementNode {
		return
	}
	switch domNode.Data {
	case "table":
		style.TableRole = "table"
	case "tr":
		style.TableRole = "row"
	case "td", "th":
		style.TableRole = "cell"
		style.ColSpan = attrInt(domNode, "colspan", 1)
		style.RowSpan = attrInt(domNode, "rowspan", 1)
	case "span", "a", "b", "i", "strong", "em", "small", "code":
		style.Display = domain.DisplayInline
	}
}

// attrInt reads an integer HTML attribute (colspan, rowspan), defaulting
// to def when the attribute is absent, empty, or not a positive integer —
// the same "coerce to default silently" failure semantics spec.md 4.E
// specifies for unsupported/malformed values elsewhere in layout.
func attrInt(domNode *html.DOMNode, key string, def int) int {
	v, ok := domNode.GetAttribute(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func getDefaultComputedStyle() *domain.ComputedStyle {
	return &domain.ComputedStyle{
		Display:  domain.DisplayBlock,
		Position: domain.PositionStatic,
		Width:    "auto",
		Height:   "auto",
		Font: domain.FontStyle{
			Family: "serif",
			Size:   16,
			Weight: 400,
			Style:  "normal",
		},
		Text: domain.TextStyle{
			Align:      domain.TextAlignLeft,
			LineHeight: 1.2,
		},
		Color: domain.Color{R: 0, G: 0, B: 0, A: 255},
	}
}

func splitClasses(class string) []string {
	var classes []string
	for _, c := range strings.Fields(class) {
		if c != "" {
			classes = append(classes, c)
		}
	}
	return classes
}

func parseSize(value string) float64 {
	// Simple size parsing - just handle px for now
	if strings.HasSuffix(value, "px") {
		if size, err := strconv.ParseFloat(value[:len(value)-2], 64); err == nil {
			return size
		}
	}
	if size, err := strconv.ParseFloat(value, 64); err == nil {
		return size
	}
	return 0
}

func parseFontWeight(value string) int {
	switch value {
	case "normal":
		return 400
	case "bold":
		return 700
	case "lighter":
		return 300
	case "bolder":
		return 600
	default:
		if weight, err := strconv.Atoi(value); err == nil {
			return weight
		}
		return 400
	}
}

// getNodeTypeName converts NodeType to string
func getNodeTypeName(nodeType html.NodeType) string {
	switch nodeType {
	case html.ErrorNode:
		return "error"
	case html.TextNode:
		return "text"
	case html.DocumentNode:
		return "document"
	case html.ElementNode:
		return "element"
	case html.CommentNode:
		return "comment"
	case html.DoctypeNode:
		return "doctype"
	default:
		return "unknown"
	}
}
