package layout

import (
	"strings"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/font"
	"htmlpdf/internal/shaping"
)

// FontProvider resolves a CSS font declaration to a loaded font program,
// letting inline layout measure words with real glyph metrics when a
// matching font is available. Returning nil for an unresolvable face is
// not an error: the caller falls back to the typographic heuristic.
type FontProvider interface {
	Resolve(family string, weight int, style string) *font.LoadedFont
}

// layoutInline performs greedy word-wrap line breaking for node's text
// content inside the given content box, preferring real glyph-table
// measurement (component D) and falling back to the typographic
// heuristic (spec.md 4.E) when no font metrics are available.
func (fe *FlowEngine) layoutInline(node *domain.LayoutNode, ctx *LayoutContext, x, y, maxWidth float64) {
	node.Box.X = x
	node.Box.Width = maxWidth

	lineHeight := node.Style.Text.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.2
	}
	lineHeightPt := lineHeight * node.Style.Font.Size

	measure, ascenderFrac := fe.wordMeasurer(node, ctx)
	spaceWidth := measure(" ")

	words := strings.Fields(node.Content)
	var lines []domain.TextLine
	var lineWidths []float64
	var cur []domain.InlineSegment
	curX := 0.0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		lineY := float64(len(lines)) * lineHeightPt
		lines = append(lines, domain.TextLine{
			Y:        lineY,
			Baseline: lineY + ascenderFrac*node.Style.Font.Size,
			Height:   lineHeightPt,
			Segments: cur,
		})
		lineWidths = append(lineWidths, curX)
		cur = nil
		curX = 0
	}

	for _, w := range words {
		ww := measure(w)
		if curX > 0 && curX+spaceWidth+ww > maxWidth {
			flush()
		} else if curX > 0 {
			curX += spaceWidth
		}
		cur = append(cur, domain.InlineSegment{Text: w, X: curX, Width: ww})
		curX += ww
	}
	flush()

	alignLines(lines, lineWidths, maxWidth, node.Style.Text.Align)

	node.Lines = lines
	node.Box.Y = y
	node.Box.Height = float64(len(lines)) * lineHeightPt
	if len(lines) == 0 {
		node.Box.Height = 0
	}
}

// alignLines applies text-align to already-wrapped lines. Justify
// redistributes the line's leftover width across its word gaps only (per
// the layout engine's word-spacing-based justification choice; character
// justification via letter-spacing expansion is not implemented) and
// never justifies the last line, matching standard text justification
// behavior.
func alignLines(lines []domain.TextLine, lineWidths []float64, maxWidth float64, align domain.TextAlign) {
	for i := range lines {
		slack := maxWidth - lineWidths[i]
		if slack <= 0 {
			continue
		}
		segs := lines[i].Segments
		switch align {
		case domain.TextAlignRight:
			for j := range segs {
				segs[j].X += slack
			}
		case domain.TextAlignCenter:
			for j := range segs {
				segs[j].X += slack / 2
			}
		case domain.TextAlignJustify:
			if i == len(lines)-1 || len(segs) < 2 {
				continue
			}
			extraPerGap := slack / float64(len(segs)-1)
			for j := range segs {
				segs[j].X += extraPerGap * float64(j)
			}
		}
	}
}

// wordMeasurer returns a width function for node's resolved font: real
// glyph-table shaping when a font is available, the typographic
// heuristic otherwise. It also returns the ascender fraction used to
// place each line's baseline.
func (fe *FlowEngine) wordMeasurer(node *domain.LayoutNode, ctx *LayoutContext) (func(string) float64, float64) {
	fontSize := node.Style.Font.Size
	if fontSize <= 0 {
		fontSize = 16
	}
	weight := node.Style.Font.Weight
	letterSpacing := node.Style.Text.LetterSpace
	wordSpacing := node.Style.Text.WordSpace

	if ctx != nil && ctx.Fonts != nil {
		if lf := ctx.Fonts.Resolve(node.Style.Font.Family, weight, node.Style.Font.Style); lf != nil {
			ascenderFrac := float64(lf.Metrics.Ascender) / float64(lf.Metrics.UnitsPerEm)
			return func(word string) float64 {
				run := shaping.Build(word, lf, fontSize, shaping.Options{LetterSpacing: letterSpacing, WordSpacing: wordSpacing})
				return run.Width
			}, ascenderFrac
		}
	}
	return func(word string) float64 {
		return shaping.HeuristicWordWidth(word, fontSize, weight) + letterSpacing*float64(len([]rune(word)))
	}, 0.8 // typical ascender fraction for common text fonts
}
