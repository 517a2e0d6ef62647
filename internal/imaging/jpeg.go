package imaging

import "fmt"

// decodeJPEGPassthrough reads just enough of the JFIF marker stream to
// recover the pixel dimensions (from the SOF0/SOF2 marker) and hands the
// original bytes straight through for embedding behind a PDF DCTDecode
// filter. PDF viewers decode JPEG natively, so re-decoding to raw pixels
// here would only waste time and a generation of compression artifacts.
func decodeJPEGPassthrough(data []byte) (*Image, error) {
	width, height, components, err := jpegDimensions(data)
	if err != nil {
		return nil, err
	}
	cs := ColorSpaceRGB
	if components == 1 {
		cs = ColorSpaceGray
	}
	return &Image{
		Width:       width,
		Height:      height,
		ColorSpace:  cs,
		Passthrough: true,
		Filter:      "DCTDecode",
		Raw:         data,
	}, nil
}

func jpegDimensions(data []byte) (width, height, components int, err error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 0, 0, 0, fmt.Errorf("imaging: not a JPEG")
	}
	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			pos++
			continue
		}
		marker := data[pos+1]
		if marker == 0xD8 || marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			pos += 2
			continue
		}
		if marker == 0xD9 { // EOI
			break
		}
		if pos+4 > len(data) {
			break
		}
		segLen := int(data[pos+2])<<8 | int(data[pos+3])
		isSOF := marker >= 0xC0 && marker <= 0xCF && marker != 0xC4 && marker != 0xC8 && marker != 0xCC
		if isSOF && pos+9 <= len(data) {
			height = int(data[pos+5])<<8 | int(data[pos+6])
			width = int(data[pos+7])<<8 | int(data[pos+8])
			components = int(data[pos+9])
			return width, height, components, nil
		}
		pos += 2 + segLen
	}
	return 0, 0, 0, fmt.Errorf("imaging: no SOF marker found in JPEG")
}
