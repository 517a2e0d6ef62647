package font

import bin "htmlpdf/internal/binary"

// HeadTable is the decoded `head` table: font-wide scaling and bbox info.
type HeadTable struct {
	UnitsPerEm         uint16
	XMin, YMin         int16
	XMax, YMax         int16
	IndexToLocFormat   int16 // 0 = short (Offset16), 1 = long (Offset32)
	CheckSumAdjustment uint32
}

func parseHead(data []byte) (HeadTable, error) {
	if len(data) < 54 {
		return HeadTable{}, FormatError("head table too short")
	}
	r := bin.NewReader(data)
	var h HeadTable
	r.Seek(8)
	checksum, _ := r.U32()
	h.CheckSumAdjustment = checksum
	r.Seek(18)
	unitsPerEm, _ := r.U16()
	h.UnitsPerEm = unitsPerEm
	if h.UnitsPerEm == 0 {
		h.UnitsPerEm = 1000
	}
	r.Seek(36)
	xmin, _ := r.I16()
	ymin, _ := r.I16()
	xmax, _ := r.I16()
	ymax, _ := r.I16()
	h.XMin, h.YMin, h.XMax, h.YMax = xmin, ymin, xmax, ymax
	r.Seek(50)
	locFmt, _ := r.I16()
	h.IndexToLocFormat = locFmt
	return h, nil
}

// HheaTable is the decoded `hhea` table: horizontal line metrics and the
// count of explicit entries in `hmtx`.
type HheaTable struct {
	Ascender         int16
	Descender        int16
	LineGap          int16
	NumberOfHMetrics uint16
}

func parseHhea(data []byte) (HheaTable, error) {
	if len(data) < 36 {
		return HheaTable{}, FormatError("hhea table too short")
	}
	r := bin.NewReader(data)
	r.Seek(4)
	asc, _ := r.I16()
	desc, _ := r.I16()
	gap, _ := r.I16()
	r.Seek(34)
	numHMetrics, _ := r.U16()
	return HheaTable{Ascender: asc, Descender: desc, LineGap: gap, NumberOfHMetrics: numHMetrics}, nil
}

func parseMaxp(data []byte) (numGlyphs uint16, err error) {
	if len(data) < 6 {
		return 0, FormatError("maxp table too short")
	}
	return bin.ReadUint16BE(data, 4), nil
}

// HMetric is one entry of the `hmtx` table.
type HMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

// parseHmtx expands the `hmtx` table to one entry per glyph: glyphs past
// numberOfHMetrics repeat the last advance width with their own LSB, per
// the SFNT spec's compaction rule.
func parseHmtx(data []byte, numberOfHMetrics, numGlyphs uint16) ([]HMetric, error) {
	// Clamp per spec.md 4.C: numberOfHMetrics must never exceed numGlyphs.
	if numberOfHMetrics > numGlyphs {
		numberOfHMetrics = numGlyphs
	}
	need := int(numberOfHMetrics)*4 + int(numGlyphs-numberOfHMetrics)*2
	if len(data) < need {
		// Degrade gracefully: a malformed hmtx shouldn't abort the whole font.
		numGlyphsFit := uint16(len(data) / 4)
		if numGlyphsFit < numberOfHMetrics {
			numberOfHMetrics = numGlyphsFit
		}
	}
	out := make([]HMetric, numGlyphs)
	r := bin.NewReader(data)
	var lastAdvance uint16
	for i := uint16(0); i < numberOfHMetrics; i++ {
		adv, err1 := r.U16()
		lsb, err2 := r.I16()
		if err1 != nil || err2 != nil {
			break
		}
		out[i] = HMetric{AdvanceWidth: adv, LeftSideBearing: lsb}
		lastAdvance = adv
	}
	for i := numberOfHMetrics; i < numGlyphs; i++ {
		lsb, err := r.I16()
		if err != nil {
			lsb = 0
		}
		out[i] = HMetric{AdvanceWidth: lastAdvance, LeftSideBearing: lsb}
	}
	return out, nil
}

// OS2Table holds the subset of `OS/2` fields the layout/text engines use
// for x-height/cap-height approximation when a glyf outline isn't worth
// walking for a single bbox.
type OS2Table struct {
	XHeight   int16
	CapHeight int16
}

func parseOS2(data []byte) OS2Table {
	var t OS2Table
	if len(data) >= 90 {
		t.XHeight = int16(bin.ReadUint16BE(data, 86))
		t.CapHeight = int16(bin.ReadUint16BE(data, 88))
	}
	return t
}
