// Package shaping turns a text slice and a loaded font into a glyph run:
// the positioned glyph IDs a page painter can emit directly as PDF text
// operators. This is spec component D, split out from the font package
// because it consumes FontMetrics rather than producing them.
package shaping

import (
	"htmlpdf/internal/font"
)

// GlyphPosition is one shaped glyph: its glyph ID, the rune it came
// from (kept for ToUnicode bookkeeping downstream), and its advance in
// output units (already scaled by fontSize/unitsPerEm, already including
// any kerning and letter-spacing contribution).
type GlyphPosition struct {
	GID     uint16
	Rune    rune
	Advance float64
}

// Run is a maximal sequence of text sharing font, size, style, direction
// and transform — the shaped form the pagination/paint stages consume.
type Run struct {
	Font     *font.LoadedFont
	FontSize float64
	Text     string
	Glyphs   []GlyphPosition
	Width    float64
}

// Options bundles the CSS text properties that influence shaping beyond
// the raw font + size pair.
type Options struct {
	LetterSpacing float64 // output units, added after every glyph
	WordSpacing   float64 // output units, added on top of each space glyph's advance
}

// Build shapes text against lf at fontSize, applying kerning, letter
// spacing, and word spacing exactly as spec.md 4.C "Glyph run
// construction" describes: per-codepoint cmap lookup, hmtx advance,
// kern-table adjustment, unitsPerEm scaling, then the two spacing passes.
func Build(text string, lf *font.LoadedFont, fontSize float64, opts Options) *Run {
	run := &Run{Font: lf, FontSize: fontSize, Text: text}
	if lf == nil || fontSize <= 0 {
		return run
	}
	scale := fontSize / float64(lf.Metrics.UnitsPerEm)

	var prevGID uint16
	havePrev := false
	var width float64
	// Go's range over a string already decodes full Unicode code points
	// from UTF-8, so there is no separate surrogate-pair reassembly step
	// the way there would be iterating UTF-16 code units.
	for _, r := range text {
		gid := lf.Metrics.GlyphForRune(r)
		advanceUnits := float64(lf.Metrics.Advance(gid))
		if havePrev && lf.Metrics.HasKerning() {
			advanceUnits += float64(lf.Metrics.Kern(prevGID, gid))
		}
		advance := advanceUnits*scale + opts.LetterSpacing
		if r == ' ' {
			advance += opts.WordSpacing
		}
		run.Glyphs = append(run.Glyphs, GlyphPosition{GID: gid, Rune: r, Advance: advance})
		width += advance
		prevGID = gid
		havePrev = true
	}
	run.Width = width
	return run
}

// UsedRunes collects the distinct runes a set of runs actually renders,
// for handoff to font.NewSubset.
func UsedRunes(runs []*Run) map[rune]struct{} {
	used := make(map[rune]struct{})
	for _, r := range runs {
		for _, g := range r.Glyphs {
			used[g.Rune] = struct{}{}
		}
	}
	return used
}
