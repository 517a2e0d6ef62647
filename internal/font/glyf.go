package font

import bin "htmlpdf/internal/binary"

// GlyfTable is a `loca`-indexed view over `glyf`: it slices out one
// glyph's raw outline bytes at a time and can resolve a composite
// glyph's component glyph IDs, which the subsetter needs to pull in
// composite dependencies (spec.md 4.C "Subsetting").
type GlyfTable struct {
	glyf   []byte
	offset []uint32 // numGlyphs+1 entries, loca expanded to absolute byte offsets
}

func parseLoca(data []byte, numGlyphs uint16, longFormat bool) ([]uint32, error) {
	offsets := make([]uint32, numGlyphs+1)
	if longFormat {
		if len(data) < int(numGlyphs+1)*4 {
			return nil, FormatError("loca table too short (long)")
		}
		for i := range offsets {
			offsets[i] = bin.ReadUint32BE(data, i*4)
		}
	} else {
		if len(data) < int(numGlyphs+1)*2 {
			return nil, FormatError("loca table too short (short)")
		}
		for i := range offsets {
			offsets[i] = uint32(bin.ReadUint16BE(data, i*2)) * 2
		}
	}
	return offsets, nil
}

func newGlyfTable(glyf []byte, loca []uint32) *GlyfTable {
	return &GlyfTable{glyf: glyf, offset: loca}
}

// NumGlyphs returns the glyph count implied by the loca table.
func (g *GlyfTable) NumGlyphs() int {
	if g == nil || len(g.offset) == 0 {
		return 0
	}
	return len(g.offset) - 1
}

// Glyph returns the raw outline bytes for gid (empty for a space glyph
// with no outline) and whether it parsed successfully.
func (g *GlyfTable) Glyph(gid uint16) ([]byte, bool) {
	if g == nil || int(gid)+1 >= len(g.offset) {
		return nil, false
	}
	start, end := g.offset[gid], g.offset[gid+1]
	if start >= end || end > uint32(len(g.glyf)) {
		return nil, true // empty glyph, valid
	}
	return g.glyf[start:end], true
}

// ComponentGlyphIDs returns the glyph IDs a composite glyph references
// directly (not transitively). Simple glyphs (numberOfContours >= 0)
// return nil.
func (g *GlyfTable) ComponentGlyphIDs(gid uint16) []uint16 {
	data, ok := g.Glyph(gid)
	if !ok || len(data) < 10 {
		return nil
	}
	numContours := int16(bin.ReadUint16BE(data, 0))
	if numContours >= 0 {
		return nil
	}
	var components []uint16
	pos := 10
	const (
		flagWordArgs    = 1 << 0
		flagHasScale    = 1 << 3
		flagMoreComp    = 1 << 5
		flagHasXYScale  = 1 << 6
		flagHas2x2Scale = 1 << 7
	)
	for {
		if pos+4 > len(data) {
			break
		}
		flags := bin.ReadUint16BE(data, pos)
		glyphIndex := bin.ReadUint16BE(data, pos+2)
		components = append(components, glyphIndex)
		pos += 4
		if flags&flagWordArgs != 0 {
			pos += 4
		} else {
			pos += 2
		}
		switch {
		case flags&flagHas2x2Scale != 0:
			pos += 8
		case flags&flagHasXYScale != 0:
			pos += 4
		case flags&flagHasScale != 0:
			pos += 2
		}
		if flags&flagMoreComp == 0 {
			break
		}
	}
	return components
}
