package pdfwriter

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"
)

func TestFlateCompressRoundTripsThroughStandardZlibReader(t *testing.T) {
	original := []byte("BT /F0 12 Tf (Hello, world) Tj ET")

	compressed := flateCompress(original)

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("compressed output is not valid zlib framing: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading decompressed stream: %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("got %q, want %q", got, original)
	}
}
