package font

import (
	"bytes"
	"compress/zlib"
	"io"

	bin "htmlpdf/internal/binary"
)

// woffEntry is one WOFF table directory entry.
type woffEntry struct {
	tag          string
	offset       uint32
	compLength   uint32
	origLength   uint32
	origChecksum uint32
}

// decodeWOFF reassembles a WOFF container into a plain SFNT byte stream:
// each table is independently zlib-compressed (or stored raw when
// compLength == origLength), unlike WOFF2's single shared Brotli stream.
func decodeWOFF(data []byte) ([]byte, error) {
	if len(data) < 44 {
		return nil, FormatError("woff header too short")
	}
	r := bin.NewReader(data)
	r.Skip(4) // signature "wOFF", already matched by the caller
	flavor, err := r.U32()
	if err != nil {
		return nil, FormatError("truncated woff header")
	}
	r.Skip(4) // length
	numTables, err := r.U16()
	if err != nil {
		return nil, FormatError("truncated woff header")
	}
	r.Skip(2)  // reserved
	r.Skip(16) // totalSfntSize, major/minorVersion, meta*, priv*

	entries := make([]woffEntry, numTables)
	for i := range entries {
		tag, err := r.Tag()
		offset, err1 := r.U32()
		compLength, err2 := r.U32()
		origLength, err3 := r.U32()
		origChecksum, err4 := r.U32()
		if err != nil || err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return nil, FormatError("truncated woff directory")
		}
		entries[i] = woffEntry{tag, offset, compLength, origLength, origChecksum}
	}

	tables := make(map[string][]byte, numTables)
	for _, e := range entries {
		if uint64(e.offset)+uint64(e.compLength) > uint64(len(data)) {
			return nil, FormatError("woff table extends past end of data")
		}
		raw := data[e.offset : e.offset+e.compLength]
		var table []byte
		if e.compLength == e.origLength {
			table = raw
		} else {
			zr, err := zlib.NewReader(bytes.NewReader(raw))
			if err != nil {
				return nil, &BackendError{Op: "woff zlib table " + e.tag, Cause: err}
			}
			out, err := io.ReadAll(zr)
			zr.Close()
			if err != nil {
				return nil, &BackendError{Op: "woff inflate table " + e.tag, Cause: err}
			}
			table = out
		}
		if uint32(len(table)) != e.origLength {
			// Pad or trim defensively; a mismatch shouldn't abort the font.
			if uint32(len(table)) < e.origLength {
				table = append(table, make([]byte, e.origLength-uint32(len(table)))...)
			} else {
				table = table[:e.origLength]
			}
		}
		tables[e.tag] = table
	}

	return reassembleSFNT(flavor, entries, tables)
}

// reassembleSFNT serializes a set of decoded tables into a conventional
// SFNT byte stream, laid out in ascending tag order with 4-byte padding
// between tables per the OpenType spec.
func reassembleSFNT(version uint32, entries []woffEntry, tables map[string][]byte) ([]byte, error) {
	tags := make([]string, 0, len(entries))
	for _, e := range entries {
		tags = append(tags, e.tag)
	}
	return assembleSFNTTables(version, sortedTags(tags), tables)
}

// AssembleSFNT serializes an arbitrary table set (e.g. a font's original
// tables with glyf/loca swapped for a subset's trimmed versions) into a
// conventional TrueType SFNT byte stream, for embedding as a PDF
// FontFile2 stream.
func AssembleSFNT(tables map[string][]byte) ([]byte, error) {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	return assembleSFNTTables(versionTrueType, sortedTags(tags), tables)
}

func assembleSFNTTables(version uint32, tags []string, tables map[string][]byte) ([]byte, error) {
	numTables := len(tags)
	headerSize := 12 + 16*numTables
	buf := make([]byte, headerSize)
	putU32(buf, 0, version)
	putU16(buf, 4, uint16(numTables))
	searchRange, entrySelector, rangeShift := sfntSearchParams(numTables)
	putU16(buf, 6, searchRange)
	putU16(buf, 8, entrySelector)
	putU16(buf, 10, rangeShift)

	offset := uint32(headerSize)
	for i, tag := range tags {
		table := tables[tag]
		recOff := 12 + 16*i
		copy(buf[recOff:recOff+4], tag)
		putU32(buf, recOff+4, checksumTable(table))
		putU32(buf, recOff+8, offset)
		putU32(buf, recOff+12, uint32(len(table)))

		buf = append(buf, table...)
		padded := (len(table) + 3) &^ 3
		if pad := padded - len(table); pad > 0 {
			buf = append(buf, make([]byte, pad)...)
		}
		offset += uint32(padded)
	}
	return buf, nil
}

func sfntSearchParams(numTables int) (searchRange, entrySelector, rangeShift uint16) {
	entries := uint16(1)
	var log2 uint16
	for entries*2 <= uint16(numTables) {
		entries *= 2
		log2++
	}
	searchRange = entries * 16
	entrySelector = log2
	rangeShift = uint16(numTables)*16 - searchRange
	return
}

func checksumTable(table []byte) uint32 {
	var sum uint32
	padded := append(append([]byte(nil), table...), make([]byte, (4-len(table)%4)%4)...)
	for i := 0; i < len(padded); i += 4 {
		sum += bin.ReadUint32BE(padded, i)
	}
	return sum
}

func putU32(buf []byte, off int, v uint32) {
	buf[off] = byte(v >> 24)
	buf[off+1] = byte(v >> 16)
	buf[off+2] = byte(v >> 8)
	buf[off+3] = byte(v)
}

func putU16(buf []byte, off int, v uint16) {
	buf[off] = byte(v >> 8)
	buf[off+1] = byte(v)
}
