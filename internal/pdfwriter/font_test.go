package pdfwriter

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"htmlpdf/internal/font"
)

// buildTestTTF assembles a minimal but valid SFNT with two glyphs
// (.notdef and one mapped from 'A'), mirroring the fixture the font
// package's own tests use, so EmbedSubsetFont can be exercised without a
// real font file on disk.
func buildTestTTF(t *testing.T) []byte {
	t.Helper()

	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[18:], 1000) // unitsPerEm
	binary.BigEndian.PutUint16(head[50:], 0)    // indexToLocFormat: short

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint16(hhea[4:], 800)    // ascender
	binary.BigEndian.PutUint16(hhea[6:], 0xFF38) // descender (-200)
	binary.BigEndian.PutUint16(hhea[34:], 2)     // numberOfHMetrics

	maxp := make([]byte, 6)
	binary.BigEndian.PutUint16(maxp[4:], 2) // numGlyphs

	hmtx := make([]byte, 8)
	binary.BigEndian.PutUint16(hmtx[0:], 0)   // glyph 0 advance
	binary.BigEndian.PutUint16(hmtx[4:], 600) // glyph 1 advance

	var cmapBuf bytes.Buffer
	binary.Write(&cmapBuf, binary.BigEndian, uint16(0))  // version
	binary.Write(&cmapBuf, binary.BigEndian, uint16(1))  // numTables
	binary.Write(&cmapBuf, binary.BigEndian, uint16(3))  // platformID
	binary.Write(&cmapBuf, binary.BigEndian, uint16(1))  // encodingID
	binary.Write(&cmapBuf, binary.BigEndian, uint32(12)) // subtable offset

	segCount := 2
	var sub bytes.Buffer
	binary.Write(&sub, binary.BigEndian, uint16(4))      // format
	binary.Write(&sub, binary.BigEndian, uint16(0))      // length placeholder
	binary.Write(&sub, binary.BigEndian, uint16(0))      // language
	binary.Write(&sub, binary.BigEndian, uint16(segCount*2))
	binary.Write(&sub, binary.BigEndian, uint16(0)) // searchRange
	binary.Write(&sub, binary.BigEndian, uint16(0)) // entrySelector
	binary.Write(&sub, binary.BigEndian, uint16(0)) // rangeShift
	binary.Write(&sub, binary.BigEndian, uint16(0x41))
	binary.Write(&sub, binary.BigEndian, uint16(0xFFFF))
	binary.Write(&sub, binary.BigEndian, uint16(0))
	binary.Write(&sub, binary.BigEndian, uint16(0x41))
	binary.Write(&sub, binary.BigEndian, uint16(0xFFFF))
	binary.Write(&sub, binary.BigEndian, int16(1-0x41))
	binary.Write(&sub, binary.BigEndian, int16(1))
	binary.Write(&sub, binary.BigEndian, uint16(0))
	binary.Write(&sub, binary.BigEndian, uint16(0))
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
		{"loca", []byte{0, 0, 0, 0, 0, 0}},
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
		binary.BigEndian.PutUint32(dir[i*16+4:], 0)
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

func TestEmbedSubsetFontBuildsType0OverCIDFontType2(t *testing.T) {
	data := buildTestTTF(t)
	lf, err := font.Load(data, nil)
	if err != nil {
		t.Fatalf("font.Load: %v", err)
	}
	sub := font.NewSubset(lf, map[rune]struct{}{'A': {}})

	w := New()
	ref := EmbedSubsetFont(w, sub, lf, "Subset+TestFont")

	doc := NewDocument(w, 200, 200)
	doc.AddPage([]byte("BT /F0 12 Tf ET"), Dict{"Font": Dict{"F0": ref}})
	doc.Finish()

	out, err := w.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	s := string(out)

	if !strings.Contains(s, "/Subtype /Type0") {
		t.Errorf("expected a Type0 composite font dict: %s", s)
	}
	if !strings.Contains(s, "/Subtype /CIDFontType2") {
		t.Errorf("expected a CIDFontType2 descendant font dict: %s", s)
	}
	if !strings.Contains(s, "/Encoding /Identity-H") {
		t.Errorf("expected Identity-H encoding: %s", s)
	}
	if !strings.Contains(s, "/FontFile2") {
		t.Errorf("expected an embedded FontFile2 stream: %s", s)
	}
	if !strings.Contains(s, "/CIDToGIDMap /Identity") {
		t.Errorf("expected an identity CIDToGIDMap: %s", s)
	}
}

func TestScaleTo1000RescalesAdvanceToPerMilleUnits(t *testing.T) {
	cases := []struct {
		advance, unitsPerEm int32
		want                float64
	}{
		{500, 1000, 500},
		{1000, 2048, 1000.0 / 2048 * 1000},
		{0, 1000, 0},
	}
	for _, c := range cases {
		got := scaleTo1000(c.advance, c.unitsPerEm)
		diff := got - c.want
		if diff < 0 {
			diff = -diff
		}
		if diff > 0.02 {
			t.Errorf("scaleTo1000(%d, %d) = %v, want ~%v", c.advance, c.unitsPerEm, got, c.want)
		}
	}
}

func TestScaleTo1000HandlesZeroUnitsPerEm(t *testing.T) {
	if got := scaleTo1000(500, 0); got != 0 {
		t.Errorf("scaleTo1000 with unitsPerEm=0 = %v, want 0", got)
	}
}
