package font

// ProgramFormat identifies the on-disk packaging of a font program.
type ProgramFormat int

const (
	FormatTTF ProgramFormat = iota
	FormatWOFF
	FormatWOFF2
)

func (f ProgramFormat) String() string {
	switch f {
	case FormatTTF:
		return "ttf"
	case FormatWOFF:
		return "woff"
	case FormatWOFF2:
		return "woff2"
	default:
		return "unknown"
	}
}

// FontProgram is the reassembled SFNT form of a font, regardless of how
// it arrived on the wire: a raw TTF, a WOFF container, or a WOFF2
// container. Subsetting and PDF embedding both work off this shape.
type FontProgram struct {
	Format ProgramFormat
	sfnt   *SFNT
	glyf   *GlyfTable // nil for CFF-flavored (OTTO) programs
	cff    []byte     // raw `CFF ` table, set instead of glyf for OTTO programs
}

// Raw returns the named table's bytes as reassembled, or false if the
// program carries no such table.
func (p *FontProgram) Raw(tag string) ([]byte, bool) { return p.sfnt.Table(tag) }

// Tags returns the reassembled program's table tags.
func (p *FontProgram) Tags() []string { return p.sfnt.Tags() }

// IsCFF reports whether this program carries PostScript (CFF) outlines
// rather than TrueType glyf/loca outlines.
func (p *FontProgram) IsCFF() bool { return p.glyf == nil }

// Outline returns a glyph's raw outline bytes for TrueType-flavored
// programs. It returns ok=false for CFF-flavored programs; the PDF
// emitter embeds those as a complete (possibly subset) CFF blob instead
// of walking individual glyf records.
func (p *FontProgram) Outline(gid uint16) (data []byte, ok bool) {
	if p.glyf == nil {
		return nil, false
	}
	return p.glyf.Glyph(gid)
}

// ComponentGlyphIDs returns a composite glyph's direct component
// references, or nil for a simple glyph or a CFF program.
func (p *FontProgram) ComponentGlyphIDs(gid uint16) []uint16 {
	if p.glyf == nil {
		return nil
	}
	return p.glyf.ComponentGlyphIDs(gid)
}

func buildProgram(format ProgramFormat, sfnt *SFNT, head HeadTable, numGlyphs uint16) (*FontProgram, error) {
	p := &FontProgram{Format: format, sfnt: sfnt}
	if sfnt.Version == versionOTTO {
		cffData, ok := sfnt.Table("CFF ")
		if !ok {
			return nil, FormatError("OTTO program missing CFF table")
		}
		p.cff = cffData
		return p, nil
	}
	glyfData, hasGlyf := sfnt.Table("glyf")
	locaData, hasLoca := sfnt.Table("loca")
	if !hasGlyf || !hasLoca {
		return nil, FormatError("TrueType program missing glyf/loca")
	}
	offsets, err := parseLoca(locaData, numGlyphs, head.IndexToLocFormat == 1)
	if err != nil {
		return nil, err
	}
	p.glyf = newGlyfTable(glyfData, offsets)
	return p, nil
}
