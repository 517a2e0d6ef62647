package font

import (
	"sort"

	bin "htmlpdf/internal/binary"
)

// CMap maps Unicode codepoints to glyph IDs. Lookup always succeeds: an
// unmapped codepoint resolves to glyph 0 (.notdef), per spec.md 4.C.
type CMap struct {
	// ranges is sorted by Start and searched with binary search, giving
	// the O(log n) worst case spec.md 4.C requires.
	ranges []cmapRange
}

type cmapRange struct {
	start, end uint32 // inclusive codepoint range
	glyphs     []uint16
	delta      int32 // used when glyphs is nil (format 4/12 "delta" ranges)
	hasDelta   bool
}

// Lookup returns the glyph ID for cp, or 0 if cp is unmapped.
func (c *CMap) Lookup(cp rune) uint16 {
	u := uint32(cp)
	i := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].end >= u })
	if i >= len(c.ranges) || u < c.ranges[i].start {
		return 0
	}
	rg := c.ranges[i]
	if rg.hasDelta {
		return uint16(int32(u) + rg.delta)
	}
	idx := int(u - rg.start)
	if idx < 0 || idx >= len(rg.glyphs) {
		return 0
	}
	return rg.glyphs[idx]
}

// subtableHeader is one cmap encoding record. parseCmap's rank function
// orders the candidates: format 12 (full Unicode) beats format 4 (BMP)
// beats everything else, per spec.md 4.C "Preference order: 12 > 4 > others".
type subtableHeader struct {
	platformID, encodingID uint16
	offset                 uint32
	format                 uint16
}

func parseCmap(data []byte) (*CMap, error) {
	if len(data) < 4 {
		return nil, FormatError("cmap table too short")
	}
	numTables := bin.ReadUint16BE(data, 2)
	var headers []subtableHeader
	for i := 0; i < int(numTables); i++ {
		off := 4 + i*8
		if off+8 > len(data) {
			break
		}
		pid := bin.ReadUint16BE(data, off)
		eid := bin.ReadUint16BE(data, off+2)
		subOff := bin.ReadUint32BE(data, off+4)
		if int(subOff) >= len(data) {
			continue
		}
		format := bin.ReadUint16BE(data, int(subOff))
		headers = append(headers, subtableHeader{pid, eid, subOff, format})
	}
	if len(headers) == 0 {
		return &CMap{}, nil
	}

	rank := func(h subtableHeader) int {
		switch {
		case h.format == 12:
			return 0
		case h.format == 4:
			return 1
		case h.platformID == 3 && h.encodingID == 1:
			return 2
		case h.platformID == 0:
			return 3
		default:
			return 4
		}
	}
	sort.SliceStable(headers, func(i, j int) bool { return rank(headers[i]) < rank(headers[j]) })

	best := headers[0]
	var ranges []cmapRange
	var err error
	switch best.format {
	case 0:
		ranges, err = parseCmapFormat0(data[best.offset:])
	case 4:
		ranges, err = parseCmapFormat4(data[best.offset:])
	case 6:
		ranges, err = parseCmapFormat6(data[best.offset:])
	case 10:
		ranges, err = parseCmapFormat10(data[best.offset:])
	case 12:
		ranges, err = parseCmapFormat12(data[best.offset:])
	default:
		// Unknown subtable format: degrade to an empty map rather than fail
		// the whole font, per spec.md 4.C's "never fail" lookup contract.
		ranges = nil
	}
	if err != nil {
		ranges = nil
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })
	return &CMap{ranges: ranges}, nil
}

func parseCmapFormat0(data []byte) ([]cmapRange, error) {
	if len(data) < 6+256 {
		return nil, FormatError("cmap format 0 too short")
	}
	glyphs := make([]uint16, 256)
	for i := 0; i < 256; i++ {
		glyphs[i] = uint16(data[6+i])
	}
	return []cmapRange{{start: 0, end: 255, glyphs: glyphs}}, nil
}

func parseCmapFormat4(data []byte) ([]cmapRange, error) {
	if len(data) < 14 {
		return nil, FormatError("cmap format 4 too short")
	}
	segCountX2 := bin.ReadUint16BE(data, 6)
	segCount := int(segCountX2 / 2)
	endOff := 14
	startOff := endOff + int(segCountX2) + 2 // +2 skips reservedPad
	deltaOff := startOff + int(segCountX2)
	rangeOff := deltaOff + int(segCountX2)
	if rangeOff+int(segCountX2) > len(data) {
		return nil, FormatError("cmap format 4 truncated")
	}

	var ranges []cmapRange
	for i := 0; i < segCount; i++ {
		end := bin.ReadUint16BE(data, endOff+i*2)
		start := bin.ReadUint16BE(data, startOff+i*2)
		delta := int16(bin.ReadUint16BE(data, deltaOff+i*2))
		rangeOffset := bin.ReadUint16BE(data, rangeOff+i*2)
		if start == 0xFFFF && end == 0xFFFF {
			continue
		}
		if rangeOffset == 0 {
			ranges = append(ranges, cmapRange{start: uint32(start), end: uint32(end), delta: int32(delta), hasDelta: true})
			continue
		}
		// glyphIdArray indexing per the TrueType spec's idRangeOffset formula.
		count := int(end) - int(start) + 1
		glyphs := make([]uint16, count)
		base := rangeOff + i*2 + int(rangeOffset)
		for j := 0; j < count; j++ {
			off := base + j*2
			if off+2 > len(data) {
				break
			}
			g := bin.ReadUint16BE(data, off)
			if g != 0 {
				g = uint16(int32(g) + int32(delta))
			}
			glyphs[j] = g
		}
		ranges = append(ranges, cmapRange{start: uint32(start), end: uint32(end), glyphs: glyphs})
	}
	return ranges, nil
}

func parseCmapFormat6(data []byte) ([]cmapRange, error) {
	if len(data) < 10 {
		return nil, FormatError("cmap format 6 too short")
	}
	first := bin.ReadUint16BE(data, 6)
	count := bin.ReadUint16BE(data, 8)
	glyphs := make([]uint16, count)
	for i := 0; i < int(count); i++ {
		off := 10 + i*2
		if off+2 > len(data) {
			break
		}
		glyphs[i] = bin.ReadUint16BE(data, off)
	}
	return []cmapRange{{start: uint32(first), end: uint32(first) + uint32(count) - 1, glyphs: glyphs}}, nil
}

func parseCmapFormat10(data []byte) ([]cmapRange, error) {
	if len(data) < 20 {
		return nil, FormatError("cmap format 10 too short")
	}
	first := bin.ReadUint32BE(data, 12)
	count := bin.ReadUint32BE(data, 16)
	glyphs := make([]uint16, count)
	for i := uint32(0); i < count; i++ {
		off := 20 + int(i)*2
		if off+2 > len(data) {
			break
		}
		glyphs[i] = bin.ReadUint16BE(data, off)
	}
	return []cmapRange{{start: first, end: first + count - 1, glyphs: glyphs}}, nil
}

func parseCmapFormat12(data []byte) ([]cmapRange, error) {
	if len(data) < 16 {
		return nil, FormatError("cmap format 12 too short")
	}
	numGroups := bin.ReadUint32BE(data, 12)
	ranges := make([]cmapRange, 0, numGroups)
	for i := uint32(0); i < numGroups; i++ {
		off := 16 + int(i)*12
		if off+12 > len(data) {
			break
		}
		start := bin.ReadUint32BE(data, off)
		end := bin.ReadUint32BE(data, off+4)
		startGlyph := bin.ReadUint32BE(data, off+8)
		ranges = append(ranges, cmapRange{
			start: start, end: end,
			delta: int32(startGlyph) - int32(start), hasDelta: true,
		})
	}
	return ranges, nil
}
