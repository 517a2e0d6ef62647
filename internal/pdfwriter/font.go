package pdfwriter

import (
	"golang.org/x/image/math/fixed"

	"htmlpdf/internal/font"
)

// EmbedSubsetFont registers a subset TrueType font as a composite
// (Type0/CIDFontType2) font resource: a descriptor carrying the font's
// bounding box and metrics, the embedded (FlateDecode'd) glyf/loca
// program, a /W glyph-width array, identity CID-to-GID mapping, and a
// ToUnicode CMap stream so copy/paste and text extraction resolve to
// real characters despite the font using subset-local glyph indices.
func EmbedSubsetFont(w *Writer, subset *font.Subset, lf *font.LoadedFont, baseFont string) Ref {
	glyf, loca, longFormat := subset.Glyf()
	_ = loca // loca is folded into the rebuilt sfnt program below

	programData := buildSubsetSFNT(lf, glyf, loca, longFormat)
	fontFileID := w.NewObject(&Stream{
		Dict: Dict{
			"Filter":  Name("FlateDecode"),
			"Length1": Number(len(programData)),
		},
		Data: flateCompress(programData),
	})

	descriptorID := w.NewObject(Dict{
		"Type":        Name("FontDescriptor"),
		"FontName":    Name(baseFont),
		"Flags":       Number(32), // non-symbolic
		"FontBBox":    Array{Number(lf.Metrics.BBoxXMin), Number(lf.Metrics.BBoxYMin), Number(lf.Metrics.BBoxXMax), Number(lf.Metrics.BBoxYMax)},
		"ItalicAngle": Number(0),
		"Ascent":      Number(lf.Metrics.Ascender),
		"Descent":     Number(lf.Metrics.Descender),
		"CapHeight":   Number(lf.Metrics.CapHeight),
		"StemV":       Number(80),
		"FontFile2":   fontFileID,
	})

	widths := make(Array, 0, len(subset.GlyphIDs))
	for _, gid := range subset.GlyphIDs {
		widths = append(widths, Number(scaleTo1000(lf.Metrics.Advance(gid), lf.Metrics.UnitsPerEm)))
	}

	cidFontID := w.NewObject(Dict{
		"Type":           Name("Font"),
		"Subtype":        Name("CIDFontType2"),
		"BaseFont":       Name(baseFont),
		"CIDSystemInfo":  Dict{"Registry": String("Adobe"), "Ordering": String("Identity"), "Supplement": Number(0)},
		"FontDescriptor": descriptorID,
		"DW":             Number(1000),
		"W":              Array{Number(0), widths},
		"CIDToGIDMap":    Name("Identity"),
	})

	toUnicodeID := w.NewObject(&Stream{
		Dict: Dict{"Filter": Name("FlateDecode")},
		Data: flateCompress([]byte(subset.ToUnicodeCMap())),
	})

	type0ID := w.NewObject(Dict{
		"Type":            Name("Font"),
		"Subtype":         Name("Type0"),
		"BaseFont":        Name(baseFont),
		"Encoding":        Name("Identity-H"),
		"DescendantFonts": Array{cidFontID},
		"ToUnicode":       toUnicodeID,
	})

	return type0ID
}

// scaleTo1000 rescales a font-unit advance into the 1000-units-per-em space
// every PDF /W array is keyed in. The intermediate is carried as a 26.6
// fixed-point value (the same representation font rasterizers use for
// sub-pixel glyph metrics) so repeated scaling across a large glyph set
// doesn't accumulate float64 rounding drift.
func scaleTo1000(advance int32, unitsPerEm int32) float64 {
	if unitsPerEm == 0 {
		return 0
	}
	scaled := fixed.I(int(advance)*1000) / fixed.Int26_6(unitsPerEm)
	return float64(scaled) / 64
}

// buildSubsetSFNT reassembles a minimal sfnt binary containing just the
// tables a PDF CIDFontType2 FontFile2 stream needs, with the subset's
// trimmed glyf/loca tables in place of the original font's.
func buildSubsetSFNT(lf *font.LoadedFont, glyf, loca []byte, longFormat bool) []byte {
	tables := map[string][]byte{
		"glyf": glyf,
		"loca": loca,
	}
	for _, tag := range lf.Program.Tags() {
		switch tag {
		case "glyf", "loca":
			continue
		default:
			if raw, ok := lf.Program.Raw(tag); ok {
				tables[tag] = raw
			}
		}
	}
	return font.AssembleSFNT(tables)
}
