package font

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildTestTTF assembles a minimal but valid SFNT with two glyphs
// (.notdef and one mapped from 'A') so the parsing and subsetting paths
// can be exercised without a real font file on disk.
func buildTestTTF(t *testing.T) []byte {
	t.Helper()

	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[18:], 1000) // unitsPerEm
	binary.BigEndian.PutUint16(head[50:], 0)     // indexToLocFormat: short

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint16(hhea[4:], 800)               // ascender
	binary.BigEndian.PutUint16(hhea[6:], 0xFF38)            // descender (-200)
	binary.BigEndian.PutUint16(hhea[34:], 2)                // numberOfHMetrics

	maxp := make([]byte, 6)
	binary.BigEndian.PutUint16(maxp[4:], 2) // numGlyphs

	hmtx := make([]byte, 8)
	binary.BigEndian.PutUint16(hmtx[0:], 0)   // glyph 0 advance
	binary.BigEndian.PutUint16(hmtx[4:], 600) // glyph 1 advance

	// cmap: one format-4 subtable mapping 'A' (0x41) -> glyph 1.
	var cmapBuf bytes.Buffer
	binary.Write(&cmapBuf, binary.BigEndian, uint16(0)) // version
	binary.Write(&cmapBuf, binary.BigEndian, uint16(1)) // numTables
	binary.Write(&cmapBuf, binary.BigEndian, uint16(3)) // platformID
	binary.Write(&cmapBuf, binary.BigEndian, uint16(1)) // encodingID
	binary.Write(&cmapBuf, binary.BigEndian, uint32(12)) // subtable offset

	segCount := 2 // one real segment + the mandatory 0xFFFF terminator
	var sub bytes.Buffer
	binary.Write(&sub, binary.BigEndian, uint16(4))                  // format
	binary.Write(&sub, binary.BigEndian, uint16(0))                  // length placeholder
	binary.Write(&sub, binary.BigEndian, uint16(0))                  // language
	binary.Write(&sub, binary.BigEndian, uint16(segCount*2))         // segCountX2
	binary.Write(&sub, binary.BigEndian, uint16(0))                  // searchRange
	binary.Write(&sub, binary.BigEndian, uint16(0))                  // entrySelector
	binary.Write(&sub, binary.BigEndian, uint16(0))                  // rangeShift
	binary.Write(&sub, binary.BigEndian, uint16(0x41))               // endCode[0]
	binary.Write(&sub, binary.BigEndian, uint16(0xFFFF))             // endCode[1]
	binary.Write(&sub, binary.BigEndian, uint16(0))                  // reservedPad
	binary.Write(&sub, binary.BigEndian, uint16(0x41))               // startCode[0]
	binary.Write(&sub, binary.BigEndian, uint16(0xFFFF))             // startCode[1]
	binary.Write(&sub, binary.BigEndian, int16(1-0x41))              // idDelta[0]: A -> glyph 1
	binary.Write(&sub, binary.BigEndian, int16(1))                   // idDelta[1]
	binary.Write(&sub, binary.BigEndian, uint16(0))                  // idRangeOffset[0]
	binary.Write(&sub, binary.BigEndian, uint16(0))                  // idRangeOffset[1]
	subBytes := sub.Bytes()
	binary.BigEndian.PutUint16(subBytes[2:], uint16(len(subBytes)))
	cmapBuf.Write(subBytes)

	tables := []struct {
		tag  string
		data []byte
	}{
		{"head", head},
		{"hhea", hhea},
		{"maxp", maxp},
		{"hmtx", hmtx},
		{"cmap", cmapBuf.Bytes()},
		{"glyf", nil},
		{"loca", []byte{0, 0, 0, 0, 0, 0}}, // 3 short offsets, both glyphs empty
	}

	numTables := len(tables)
	headerSize := 12 + 16*numTables
	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(0x00010000))
	binary.Write(&out, binary.BigEndian, uint16(numTables))
	binary.Write(&out, binary.BigEndian, uint16(0))
	binary.Write(&out, binary.BigEndian, uint16(0))
	binary.Write(&out, binary.BigEndian, uint16(0))

	offset := uint32(headerSize)
	dir := make([]byte, 16*numTables)
	var body bytes.Buffer
	for i, tbl := range tables {
		copy(dir[i*16:], tbl.tag)
		binary.BigEndian.PutUint32(dir[i*16+4:], 0) // checksum, unchecked by ParseSFNT
		binary.BigEndian.PutUint32(dir[i*16+8:], offset)
		binary.BigEndian.PutUint32(dir[i*16+12:], uint32(len(tbl.data)))
		body.Write(tbl.data)
		padded := (len(tbl.data) + 3) &^ 3
		body.Write(make([]byte, padded-len(tbl.data)))
		offset += uint32(padded)
	}
	out.Write(dir)
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestLoadParsesCoreTables(t *testing.T) {
	data := buildTestTTF(t)
	lf, err := Load(data, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lf.Metrics.UnitsPerEm != 1000 {
		t.Errorf("UnitsPerEm = %d, want 1000", lf.Metrics.UnitsPerEm)
	}
	if got := lf.Metrics.GlyphForRune('A'); got != 1 {
		t.Errorf("GlyphForRune('A') = %d, want 1", got)
	}
	if got := lf.Metrics.GlyphForRune('Z'); got != 0 {
		t.Errorf("GlyphForRune('Z') = %d, want 0 (.notdef)", got)
	}
	if got := lf.Metrics.Advance(1); got != 600 {
		t.Errorf("Advance(1) = %d, want 600", got)
	}
}

func TestLoadRejectsTruncatedData(t *testing.T) {
	if _, err := Load([]byte{0, 1}, nil); err == nil {
		t.Fatal("expected an error for truncated data")
	}
}

func TestLoadRejectsUnknownMagic(t *testing.T) {
	if _, err := Load([]byte("BAD!extra bytes so length check passes"), nil); err == nil {
		t.Fatal("expected an error for unrecognized magic")
	}
}

func TestSubsetKeepsOnlyUsedGlyphsPlusNotdef(t *testing.T) {
	data := buildTestTTF(t)
	lf, err := Load(data, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	used := map[rune]struct{}{'A': {}}
	sub := NewSubset(lf, used)

	if len(sub.GlyphIDs) != 2 {
		t.Fatalf("GlyphIDs = %v, want exactly [.notdef, glyph 1]", sub.GlyphIDs)
	}
	if sub.CIDForRune('A') == 0 {
		t.Errorf("CIDForRune('A') should not collapse to .notdef")
	}
	tounicode := sub.ToUnicodeCMap()
	if !bytes.Contains([]byte(tounicode), []byte("beginbfchar")) {
		t.Errorf("ToUnicodeCMap missing bfchar section: %s", tounicode)
	}
}

func TestCMapLookupIsOrderIndependent(t *testing.T) {
	data := buildTestTTF(t)
	lf, err := Load(data, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, r := range []rune{'A', 'Z', 0, 0x10FFFF} {
		_ = lf.Metrics.GlyphForRune(r) // must never panic regardless of cmap coverage
	}
}
