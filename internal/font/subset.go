package font

import (
	"fmt"
	"sort"
	"strings"
)

// Subset is the reduced glyph set a single rendered document actually
// uses: only the glyphs reachable from the runes painted on the page,
// plus every composite glyph's component closure, per spec.md 4.C
// "Subsetting must include the transitive closure of composite glyph
// references".
type Subset struct {
	font *LoadedFont

	// GlyphIDs is the sorted, de-duplicated set of original glyph IDs
	// kept in the subset, always including 0 (.notdef).
	GlyphIDs []uint16

	// gidToSubsetIndex maps an original glyph ID to its position in
	// GlyphIDs, which doubles as the new (subset-local) glyph ID. TrueType
	// CID fonts in the PDF emitter use an identity CIDToGIDMap, so this
	// subset-local index is also the CID.
	gidToSubsetIndex map[uint16]uint16

	// runeToGID records which original glyph each kept rune mapped to, so
	// the PDF emitter can build a ToUnicode CMap from subset GID back to
	// the original Unicode codepoint.
	runeToGID map[rune]uint16
}

// NewSubset walks used, the set of runes actually painted for this font,
// resolves each to a glyph ID via the font's cmap, and closes over
// composite glyph dependencies so that no referenced component glyph is
// dropped.
func NewSubset(lf *LoadedFont, used map[rune]struct{}) *Subset {
	s := &Subset{
		font:      lf,
		runeToGID: make(map[rune]uint16, len(used)),
	}

	keep := map[uint16]struct{}{0: {}} // .notdef is always retained
	var queue []uint16
	for r := range used {
		gid := lf.Metrics.GlyphForRune(r)
		s.runeToGID[r] = gid
		if _, ok := keep[gid]; !ok {
			keep[gid] = struct{}{}
			queue = append(queue, gid)
		}
	}

	// Composite dependency closure: a kept composite glyph pulls in its
	// component glyphs, which may themselves be composite.
	for len(queue) > 0 {
		gid := queue[0]
		queue = queue[1:]
		for _, comp := range lf.Program.ComponentGlyphIDs(gid) {
			if _, ok := keep[comp]; !ok {
				keep[comp] = struct{}{}
				queue = append(queue, comp)
			}
		}
	}

	ids := make([]uint16, 0, len(keep))
	for gid := range keep {
		ids = append(ids, gid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	s.GlyphIDs = ids
	s.gidToSubsetIndex = make(map[uint16]uint16, len(ids))
	for i, gid := range ids {
		s.gidToSubsetIndex[gid] = uint16(i)
	}
	return s
}

// CID returns the subset-local glyph ID (== CID, since the PDF emitter
// always uses an identity CIDToGIDMap) for an original glyph ID.
func (s *Subset) CID(originalGID uint16) uint16 {
	return s.gidToSubsetIndex[originalGID]
}

// CIDForRune resolves a rune directly to its subset CID.
func (s *Subset) CIDForRune(r rune) uint16 {
	return s.CID(s.runeToGID[r])
}

// Glyf returns the trimmed glyf+loca pair for just the kept glyphs, in
// new CID order, with composite glyph component indices rewritten to
// point at their new (subset-local) glyph IDs.
func (s *Subset) Glyf() (glyf, loca []byte, longFormat bool) {
	records := make([][]byte, len(s.GlyphIDs))
	for i, gid := range s.GlyphIDs {
		data, ok := s.font.Program.Outline(gid)
		if !ok || len(data) == 0 {
			records[i] = nil
			continue
		}
		records[i] = s.remapComponents(data)
	}
	total := 0
	for _, rec := range records {
		total += (len(rec) + 3) &^ 3
	}
	long := total > 0xFFFF*2
	g, l, err := assembleGlyfLoca(records, long)
	if err != nil {
		return nil, nil, false
	}
	return g, l, long
}

// remapComponents rewrites a composite glyph's component glyphIndex
// fields to the subset-local IDs; simple glyphs pass through unchanged.
func (s *Subset) remapComponents(data []byte) []byte {
	if len(data) < 10 {
		return data
	}
	numContours := int16(ReadI16(data, 0))
	if numContours >= 0 {
		return data
	}
	out := append([]byte(nil), data...)
	pos := 10
	for {
		if pos+4 > len(out) {
			break
		}
		flags := ReadU16(out, pos)
		origGID := ReadU16(out, pos+2)
		putU16(out, pos+2, s.CID(origGID))
		pos += 4
		const argsAreWords = 1 << 0
		const weHaveScale = 1 << 3
		const moreComponents = 1 << 5
		const weHaveXYScale = 1 << 6
		const weHave2x2 = 1 << 7
		if flags&argsAreWords != 0 {
			pos += 4
		} else {
			pos += 2
		}
		switch {
		case flags&weHave2x2 != 0:
			pos += 8
		case flags&weHaveXYScale != 0:
			pos += 4
		case flags&weHaveScale != 0:
			pos += 2
		}
		if flags&moreComponents == 0 {
			break
		}
	}
	return out
}

// ToUnicodeCMap renders a PDF ToUnicode CMap stream body mapping each
// subset CID back to its source Unicode codepoint, so copy/paste and
// text extraction from the emitted PDF recovers the original text.
func (s *Subset) ToUnicodeCMap() string {
	type entry struct {
		cid uint16
		r   rune
	}
	entries := make([]entry, 0, len(s.runeToGID))
	for r, gid := range s.runeToGID {
		entries = append(entries, entry{cid: s.CID(gid), r: r})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].cid < entries[j].cid })

	var b strings.Builder
	b.WriteString("/CIDInit /ProcDict findresource begin\n")
	b.WriteString("12 dict begin\nbegincmap\n")
	b.WriteString("/CIDSystemInfo << /Registry (Adobe) /Ordering (Identity) /Supplement 0 >> def\n")
	b.WriteString("/CMapName /Adobe-Identity-UCS def\n")
	b.WriteString("1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n")
	fmt.Fprintf(&b, "%d beginbfchar\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&b, "<%04X> <%04X>\n", e.cid, e.r)
	}
	b.WriteString("endbfchar\nendcmap\nCMapName currentdict /CMap defineresource pop\nend\nend\n")
	return b.String()
}

// ReadI16/ReadU16 are exported big-endian accessors that remapComponents
// uses on raw glyf records; they index b directly and do no bounds check.
func ReadI16(b []byte, off int) int16  { return int16(ReadU16(b, off)) }
func ReadU16(b []byte, off int) uint16 { return uint16(b[off])<<8 | uint16(b[off+1]) }
