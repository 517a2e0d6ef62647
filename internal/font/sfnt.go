// Package font parses TrueType/OpenType (SFNT), WOFF, and WOFF2 font
// programs into the LoadedFont shape the text shaper and PDF emitter
// consume: resolved metrics, a codepoint-to-glyph cmap, optional kerning,
// and a raw-table/outline accessor for subsetting.
package font

import (
	"sort"

	bin "htmlpdf/internal/binary"
)

// sfntVersion tags recognized in the offset table.
const (
	versionTrueType = 0x00010000
	versionOTTO     = 0x4F54544F // "OTTO"
	versionTrue     = 0x74727565 // "true"
)

// TableRecord is one entry of the SFNT table directory.
type TableRecord struct {
	Tag      string
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

// SFNT is a parsed table directory over a font program's raw bytes. It
// does not itself decode table contents; HeadTable/HheaTable/cmap/etc.
// build on top of Table lookups.
type SFNT struct {
	Version uint32
	Raw     []byte
	tables  map[string]TableRecord
	order   []string // tags in directory order, for checksum-recompute/reassembly
}

// ParseSFNT reads the 12-byte offset table and the table directory that
// follows it. It does not validate table contents; callers that need a
// specific table call Table and parse it themselves.
func ParseSFNT(data []byte) (*SFNT, error) {
	r := bin.NewReader(data)
	version, err := r.U32()
	if err != nil {
		return nil, FormatError("truncated offset table")
	}
	switch version {
	case versionTrueType, versionOTTO, versionTrue:
	default:
		return nil, FormatError("unrecognized sfnt version")
	}
	numTables, err := r.U16()
	if err != nil {
		return nil, FormatError("truncated offset table")
	}
	r.Skip(6) // searchRange, entrySelector, rangeShift

	s := &SFNT{Version: version, Raw: data, tables: make(map[string]TableRecord, numTables)}
	for i := 0; i < int(numTables); i++ {
		tag, err := r.Tag()
		if err != nil {
			return nil, FormatError("truncated table directory")
		}
		checksum, err1 := r.U32()
		offset, err2 := r.U32()
		length, err3 := r.U32()
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, FormatError("truncated table directory entry")
		}
		if uint64(offset)+uint64(length) > uint64(len(data)) {
			return nil, FormatError("table extends past end of data")
		}
		s.tables[tag] = TableRecord{Tag: tag, CheckSum: checksum, Offset: offset, Length: length}
		s.order = append(s.order, tag)
	}
	return s, nil
}

// Table returns the raw bytes of the named table, or false if absent.
func (s *SFNT) Table(tag string) ([]byte, bool) {
	rec, ok := s.tables[tag]
	if !ok {
		return nil, false
	}
	return s.Raw[rec.Offset : rec.Offset+rec.Length], true
}

// HasTable reports whether the directory lists tag, regardless of whether
// its bytes have been validated.
func (s *SFNT) HasTable(tag string) bool {
	_, ok := s.tables[tag]
	return ok
}

// Tags returns the table tags in directory order.
func (s *SFNT) Tags() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

const requiredTables = "head,hhea,maxp,hmtx,cmap"

func (s *SFNT) requireTables() error {
	for _, tag := range []string{"head", "hhea", "maxp", "hmtx", "cmap"} {
		if !s.HasTable(tag) {
			return FormatError("missing required table: " + tag)
		}
	}
	return nil
}

// sortedTags returns the directory's tags sorted ascending, the order the
// SFNT spec requires for binary-search friendly directories and the order
// WOFF2 reconstruction must reassemble tables in.
func sortedTags(tags []string) []string {
	out := append([]string(nil), tags...)
	sort.Strings(out)
	return out
}
