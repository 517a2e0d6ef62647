package pdfwriter

import (
	"bytes"

	"github.com/klauspost/compress/zlib"
)

// flateCompress runs data through zlib-wrapped DEFLATE for embedding
// behind a /Filter /FlateDecode entry — content streams and font program
// streams both use this. PDF's FlateDecode filter is RFC 1950 zlib
// framing around the DEFLATE stream, not raw DEFLATE, so the zlib
// wrapper (checksum included) is required, not cosmetic.
func flateCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		invariantViolation("flate compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		invariantViolation("flate close: %v", err)
	}
	return buf.Bytes()
}
