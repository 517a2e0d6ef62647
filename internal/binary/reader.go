// Package binary provides the shared byte- and bit-level primitives used
// by the font and image codecs: big/little-endian fixed-width reads and
// the variable-length integer encodings used by SFNT/WOFF2 and PNG/WebP.
package binary

import (
	"encoding/binary"
	"errors"
)

// ErrShortRead is returned whenever a fixed-width or length-prefixed read
// would run past the end of the underlying buffer.
var ErrShortRead = errors.New("binary: short read")

// Reader is a cursor over an in-memory byte slice. Font and image tables
// are small enough to load wholesale, so this avoids the ceremony of
// io.Reader/io.Seeker for what is, in every caller, random access over a
// buffer already held in memory.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential or random-access reads starting at 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of bytes remaining from the current position.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Pos returns the current byte offset.
func (r *Reader) Pos() int { return r.pos }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(pos int) { r.pos = pos }

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) { r.pos += n }

func (r *Reader) need(n int) error {
	if r.pos < 0 || n < 0 || r.pos+n > len(r.buf) {
		return ErrShortRead
	}
	return nil
}

// Bytes reads n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Slice returns buf[start:end] without moving the cursor, validating
// bounds against the underlying buffer.
func (r *Reader) Slice(start, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(r.buf) {
		return nil, ErrShortRead
	}
	return r.buf[start:end], nil
}

// U8 reads a single byte.
func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// U16 reads a big-endian uint16 (the SFNT/PNG/WOFF2 convention).
func (r *Reader) U16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// I16 reads a big-endian int16.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a big-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// I32 reads a big-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U32LE reads a little-endian uint32 (RIFF/WebP container fields).
func (r *Reader) U32LE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// Tag reads a 4-byte ASCII tag (sfnt table tag, RIFF chunk id).
func (r *Reader) Tag() (string, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadUint16BE is a convenience one-shot accessor used by callers that
// already hold a byte slice and an offset rather than a Reader.
func ReadUint16BE(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off:])
}

// ReadUint32BE is the uint32 counterpart of ReadUint16BE.
func ReadUint32BE(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}
