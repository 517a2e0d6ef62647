package pdfwriter

import "htmlpdf/internal/imaging"

// EmbedImage registers a decoded raster as a PDF Image XObject and
// returns its object reference. Passthrough images (JPEG) are embedded
// under their native filter; fully decoded images (PNG, WebP) are
// FlateDecode'd like any other binary stream.
func EmbedImage(w *Writer, img *imaging.Image) Ref {
	colorSpace := Name("DeviceRGB")
	if img.ColorSpace == imaging.ColorSpaceGray {
		colorSpace = Name("DeviceGray")
	}

	dict := Dict{
		"Type":             Name("XObject"),
		"Subtype":          Name("Image"),
		"Width":            Number(img.Width),
		"Height":           Number(img.Height),
		"ColorSpace":       colorSpace,
		"BitsPerComponent": Number(8),
	}

	var data []byte
	if img.Passthrough {
		dict["Filter"] = Name(img.Filter)
		data = img.Raw
	} else {
		dict["Filter"] = Name("FlateDecode")
		data = flateCompress(img.Pixels)
	}

	if len(img.Alpha) > 0 && !img.Passthrough {
		smaskID := w.NewObject(&Stream{
			Dict: Dict{
				"Type":             Name("XObject"),
				"Subtype":          Name("Image"),
				"Width":            Number(img.Width),
				"Height":           Number(img.Height),
				"ColorSpace":       Name("DeviceGray"),
				"BitsPerComponent": Number(8),
				"Filter":           Name("FlateDecode"),
			},
			Data: flateCompress(img.Alpha),
		})
		dict["SMask"] = smaskID
	}

	return w.NewObject(&Stream{Dict: dict, Data: data})
}
