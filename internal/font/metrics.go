package font

// FontMetrics is the resolved, ready-to-shape metric set the layout and
// text-shaping components consume: everything a glyph run builder needs
// to turn codepoints into positioned glyphs, independent of how the
// underlying program was packaged (raw SFNT, WOFF, or WOFF2).
type FontMetrics struct {
	UnitsPerEm int32
	Ascender   int32
	Descender  int32
	LineGap    int32
	CapHeight  int32
	XHeight    int32

	// BBox is the font-wide glyph bounding box from `head`, in font units.
	BBoxXMin, BBoxYMin, BBoxXMax, BBoxYMax int32

	NumGlyphs int

	hmtx  []HMetric
	cmap  *CMap
	kern  *KernTable // nil if the font carries no kern table
}

// Advance returns the glyph's advance width in font units. An
// out-of-range glyph ID gets the last hmtx entry's advance, or 0 when the
// font has no hmtx entries.
func (m *FontMetrics) Advance(gid uint16) int32 {
	if int(gid) >= len(m.hmtx) {
		if len(m.hmtx) == 0 {
			return 0
		}
		return int32(m.hmtx[len(m.hmtx)-1].AdvanceWidth)
	}
	return int32(m.hmtx[gid].AdvanceWidth)
}

// LeftSideBearing returns the glyph's left side bearing in font units.
func (m *FontMetrics) LeftSideBearing(gid uint16) int32 {
	if int(gid) >= len(m.hmtx) {
		return 0
	}
	return int32(m.hmtx[gid].LeftSideBearing)
}

// GlyphForRune maps a Unicode codepoint to a glyph ID, returning 0
// (.notdef) when the font has no mapping for it.
func (m *FontMetrics) GlyphForRune(r rune) uint16 {
	if m.cmap == nil {
		return 0
	}
	return m.cmap.Lookup(r)
}

// Kern returns the kerning adjustment in font units to apply between two
// adjacent glyphs, or 0 if the font has no kern table or no pair entry.
func (m *FontMetrics) Kern(left, right uint16) int16 {
	return m.kern.Lookup(left, right)
}

// HasKerning reports whether the font carries a parsed kern table.
func (m *FontMetrics) HasKerning() bool { return m.kern != nil }

func buildMetrics(head HeadTable, hhea HheaTable, os2 OS2Table, numGlyphs uint16, hmtx []HMetric, cmap *CMap, kern *KernTable) *FontMetrics {
	capHeight := int32(os2.CapHeight)
	if capHeight == 0 {
		// Typical fallback used when OS/2 is absent or zeroed: ~70% of em.
		capHeight = int32(head.UnitsPerEm) * 7 / 10
	}
	xHeight := int32(os2.XHeight)
	if xHeight == 0 {
		xHeight = int32(head.UnitsPerEm) / 2
	}
	return &FontMetrics{
		UnitsPerEm: int32(head.UnitsPerEm),
		Ascender:   int32(hhea.Ascender),
		Descender:  int32(hhea.Descender),
		LineGap:    int32(hhea.LineGap),
		CapHeight:  capHeight,
		XHeight:    xHeight,
		BBoxXMin:   int32(head.XMin),
		BBoxYMin:   int32(head.YMin),
		BBoxXMax:   int32(head.XMax),
		BBoxYMax:   int32(head.YMax),
		NumGlyphs:  int(numGlyphs),
		hmtx:       hmtx,
		cmap:       cmap,
		kern:       kern,
	}
}
