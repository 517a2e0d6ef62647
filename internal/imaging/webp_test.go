package imaging

import (
	"encoding/binary"
	"strings"
	"testing"
)

func riffWebP(chunkFourCC string, body []byte) []byte {
	payload := append([]byte(chunkFourCC), body...)
	out := make([]byte, 0, 12+len(payload))
	out = append(out, []byte("RIFF")...)
	size := make([]byte, 4)
	binary.LittleEndian.PutUint32(size, uint32(4+len(payload)))
	out = append(out, size...)
	out = append(out, []byte("WEBP")...)
	out = append(out, payload...)
	return out
}

func TestDecodeDispatchesWebPByMagicBytes(t *testing.T) {
	data := riffWebP("VP8L", []byte{0x00, 0x00, 0x00, 0x00})
	_, err := Decode(data)
	if err == nil {
		t.Fatal("expected a decode error for a garbage VP8L payload")
	}
	if !strings.Contains(err.Error(), "WebP") {
		t.Errorf("expected a WebP-specific error, got %v", err)
	}
}

func TestDecodeWebPRejectsTruncatedInput(t *testing.T) {
	if _, err := decodeWebP([]byte("RIFF")); err == nil {
		t.Fatal("expected error for truncated WebP input")
	}
}
