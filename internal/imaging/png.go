package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

const (
	colorGray    = 0
	colorRGB     = 2
	colorPalette = 3
	colorGrayA   = 4
	colorRGBA    = 6
)

type pngHeader struct {
	width, height      int
	bitDepth           int
	colorType          int
	interlace          int
}

// decodePNG walks the chunk stream, concatenates every IDAT chunk's
// bytes into one zlib stream, inflates it, and reverses the per-scanline
// filter the PNG spec applies (None/Sub/Up/Average/Paeth) to recover raw
// pixel data. Adam7 interlacing and every bit depth other than 8 (1, 2,
// 4 and 16) are out of scope: they are rejected with a clear error
// rather than silently mis-decoded. tRNS chunks are ignored.
func decodePNG(data []byte) (*Image, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil, fmt.Errorf("imaging: not a PNG")
	}
	pos := len(pngSignature)

	var hdr pngHeader
	var idat bytes.Buffer
	var palette [][3]byte

	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		bodyStart := pos + 8
		if bodyStart+length+4 > len(data) {
			return nil, fmt.Errorf("imaging: truncated PNG chunk %q", typ)
		}
		body := data[bodyStart : bodyStart+length]

		switch typ {
		case "IHDR":
			if len(body) < 13 {
				return nil, fmt.Errorf("imaging: short IHDR")
			}
			hdr = pngHeader{
				width:     int(binary.BigEndian.Uint32(body[0:4])),
				height:    int(binary.BigEndian.Uint32(body[4:8])),
				bitDepth:  int(body[8]),
				colorType: int(body[9]),
				interlace: int(body[12]),
			}
		case "PLTE":
			for i := 0; i+2 < len(body); i += 3 {
				palette = append(palette, [3]byte{body[i], body[i+1], body[i+2]})
			}
		case "IDAT":
			idat.Write(body)
		case "IEND":
			pos = bodyStart + length + 4
			goto decoded
		}
		pos = bodyStart + length + 4
	}

decoded:
	if hdr.width == 0 || hdr.height == 0 {
		return nil, fmt.Errorf("imaging: missing IHDR")
	}
	if hdr.interlace != 0 {
		return nil, fmt.Errorf("imaging: interlaced PNG not supported")
	}
	if hdr.bitDepth != 8 {
		return nil, fmt.Errorf("imaging: only 8-bit PNG channels are supported, got depth %d", hdr.bitDepth)
	}

	zr, err := zlib.NewReader(bytes.NewReader(idat.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("imaging: png zlib stream: %w", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("imaging: png inflate: %w", err)
	}

	channels, hasAlpha := channelsFor(hdr.colorType)
	scanline := hdr.width*channels + 1
	if len(raw) < scanline*hdr.height {
		return nil, fmt.Errorf("imaging: truncated pixel data")
	}

	pixels := make([]byte, hdr.width*hdr.height*channels)
	prev := make([]byte, hdr.width*channels)
	for y := 0; y < hdr.height; y++ {
		rowStart := y * scanline
		filterType := raw[rowStart]
		cur := append([]byte(nil), raw[rowStart+1:rowStart+scanline]...)
		unfilter(filterType, cur, prev, channels)
		copy(pixels[y*hdr.width*channels:], cur)
		prev = cur
	}

	img := &Image{Width: hdr.width, Height: hdr.height}
	switch hdr.colorType {
	case colorGray:
		img.ColorSpace = ColorSpaceGray
		img.Pixels = pixels
	case colorGrayA:
		img.ColorSpace = ColorSpaceGray
		img.Pixels, img.Alpha = splitAlpha(pixels, 1)
	case colorRGB:
		img.ColorSpace = ColorSpaceRGB
		img.Pixels = pixels
	case colorRGBA:
		img.ColorSpace = ColorSpaceRGB
		img.Pixels, img.Alpha = splitAlpha(pixels, 3)
	case colorPalette:
		img.ColorSpace = ColorSpaceRGB
		img.Pixels = expandPalette(pixels, palette)
	default:
		return nil, fmt.Errorf("imaging: unsupported PNG color type %d", hdr.colorType)
	}
	_ = hasAlpha
	return img, nil
}

func channelsFor(colorType int) (channels int, hasAlpha bool) {
	switch colorType {
	case colorGray:
		return 1, false
	case colorRGB:
		return 3, false
	case colorPalette:
		return 1, false
	case colorGrayA:
		return 2, true
	case colorRGBA:
		return 4, true
	default:
		return 1, false
	}
}

func splitAlpha(pixels []byte, colorChannels int) (color, alpha []byte) {
	stride := colorChannels + 1
	n := len(pixels) / stride
	color = make([]byte, n*colorChannels)
	alpha = make([]byte, n)
	for i := 0; i < n; i++ {
		copy(color[i*colorChannels:], pixels[i*stride:i*stride+colorChannels])
		alpha[i] = pixels[i*stride+colorChannels]
	}
	return
}

func expandPalette(indices []byte, palette [][3]byte) []byte {
	out := make([]byte, 0, len(indices)*3)
	for _, idx := range indices {
		if int(idx) < len(palette) {
			c := palette[idx]
			out = append(out, c[0], c[1], c[2])
		} else {
			out = append(out, 0, 0, 0)
		}
	}
	return out
}

// unfilter reverses one of PNG's five per-scanline filters in place.
func unfilter(filterType byte, cur, prev []byte, bpp int) {
	switch filterType {
	case 0: // None
	case 1: // Sub
		for i := range cur {
			var a byte
			if i >= bpp {
				a = cur[i-bpp]
			}
			cur[i] += a
		}
	case 2: // Up
		for i := range cur {
			cur[i] += prev[i]
		}
	case 3: // Average
		for i := range cur {
			var a, b int
			if i >= bpp {
				a = int(cur[i-bpp])
			}
			b = int(prev[i])
			cur[i] += byte((a + b) / 2)
		}
	case 4: // Paeth
		for i := range cur {
			var a, b, c int
			if i >= bpp {
				a = int(cur[i-bpp])
				c = int(prev[i-bpp])
			}
			b = int(prev[i])
			cur[i] += paethPredictor(a, b, c)
		}
	}
}

func paethPredictor(a, b, c int) byte {
	p := a + b - c
	pa, pb, pc := abs(p-a), abs(p-b), abs(p-c)
	switch {
	case pa <= pb && pa <= pc:
		return byte(a)
	case pb <= pc:
		return byte(b)
	default:
		return byte(c)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
