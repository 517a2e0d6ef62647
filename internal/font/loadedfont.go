package font

import bin "htmlpdf/internal/binary"

// BrotliDecompressor is the one external capability font loading needs:
// WOFF2's single compressed table stream is Brotli, and the codec itself
// stays dependency-free so it can be unit tested without wiring a real
// decompressor. internal/env.Environment satisfies this.
type BrotliDecompressor interface {
	DecompressBrotli(data []byte) ([]byte, error)
}

// LoadedFont is the frozen, ready-to-use result of loading a font
// program: resolved metrics for shaping plus the reassembled program for
// subsetting/embedding. Once built it never mutates, so it is safe to
// share across concurrent renders of the same face.
type LoadedFont struct {
	Metrics *FontMetrics
	Program *FontProgram
}

const (
	tagWOFF  = 0x774F4646 // "wOFF"
	tagWOFF2 = 0x774F4632 // "wOF2"
)

// Load parses data as a TTF, WOFF, or WOFF2 font program, dispatching on
// its magic number, and returns a fully resolved LoadedFont. brotli may
// be nil unless data is WOFF2.
func Load(data []byte, brotli BrotliDecompressor) (*LoadedFont, error) {
	if len(data) < 4 {
		return nil, FormatError("font data too short to identify")
	}
	magic := bin.ReadUint32BE(data, 0)
	switch magic {
	case tagWOFF:
		sfntData, err := decodeWOFF(data)
		if err != nil {
			return nil, err
		}
		return loadSFNTBytes(sfntData, FormatWOFF)
	case tagWOFF2:
		sfntData, err := decodeWOFF2(data, brotli)
		if err != nil {
			return nil, err
		}
		return loadSFNTBytes(sfntData, FormatWOFF2)
	case versionTrueType, versionOTTO, versionTrue:
		return loadSFNTBytes(data, FormatTTF)
	default:
		return nil, FormatError("unrecognized font magic")
	}
}

func loadSFNTBytes(data []byte, format ProgramFormat) (*LoadedFont, error) {
	sfnt, err := ParseSFNT(data)
	if err != nil {
		return nil, err
	}
	if err := sfnt.requireTables(); err != nil {
		return nil, err
	}

	headData, _ := sfnt.Table("head")
	head, err := parseHead(headData)
	if err != nil {
		return nil, err
	}
	hheaData, _ := sfnt.Table("hhea")
	hhea, err := parseHhea(hheaData)
	if err != nil {
		return nil, err
	}
	maxpData, _ := sfnt.Table("maxp")
	numGlyphs, err := parseMaxp(maxpData)
	if err != nil {
		return nil, err
	}
	hmtxData, _ := sfnt.Table("hmtx")
	hmtx, err := parseHmtx(hmtxData, hhea.NumberOfHMetrics, numGlyphs)
	if err != nil {
		return nil, err
	}
	cmapData, _ := sfnt.Table("cmap")
	cmap, err := parseCmap(cmapData)
	if err != nil {
		return nil, err
	}
	var kern *KernTable
	if kernData, ok := sfnt.Table("kern"); ok {
		kern = parseKern(kernData)
	}
	var os2 OS2Table
	if os2Data, ok := sfnt.Table("OS/2"); ok {
		os2 = parseOS2(os2Data)
	}

	metrics := buildMetrics(head, hhea, os2, numGlyphs, hmtx, cmap, kern)

	program, err := buildProgram(format, sfnt, head, numGlyphs)
	if err != nil {
		return nil, err
	}

	return &LoadedFont{Metrics: metrics, Program: program}, nil
}
