// Package pdfwriter hand-builds a PDF object graph — no PDF library
// involved, per the component's design: object number assignment,
// xref table construction from real byte offsets, and a FlateDecode
// filter fed by a general-purpose compressor, not a PDF-specific one.
package pdfwriter

import (
	"bytes"
	"fmt"
	"sort"
)

// Ref is an indirect reference to an object number, serialized as
// "<n> 0 R".
type Ref int

func (r Ref) writePDF(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "%d 0 R", int(r))
}

// Object is any value that can sit inside a PDF object body.
type Object interface {
	writePDF(buf *bytes.Buffer)
}

// Name is a PDF name, e.g. /Type.
type Name string

func (n Name) writePDF(buf *bytes.Buffer) {
	buf.WriteByte('/')
	buf.WriteString(string(n))
}

// Number is a PDF numeric literal.
type Number float64

func (n Number) writePDF(buf *bytes.Buffer) {
	if n == Number(int64(n)) {
		fmt.Fprintf(buf, "%d", int64(n))
		return
	}
	fmt.Fprintf(buf, "%.4f", float64(n))
}

// Bool is a PDF boolean literal.
type Bool bool

func (b Bool) writePDF(buf *bytes.Buffer) {
	if b {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
}

// String is a PDF literal string, escaped for parentheses/backslash.
type String string

func (s String) writePDF(buf *bytes.Buffer) {
	buf.WriteByte('(')
	for _, r := range string(s) {
		switch r {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteRune(r)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte(')')
}

// HexString is a PDF hex string <...>, used for CID-keyed text and
// ToUnicode ranges.
type HexString []byte

func (h HexString) writePDF(buf *bytes.Buffer) {
	buf.WriteByte('<')
	fmt.Fprintf(buf, "%x", []byte(h))
	buf.WriteByte('>')
}

// Array is a PDF array.
type Array []Object

func (a Array) writePDF(buf *bytes.Buffer) {
	buf.WriteByte('[')
	for i, o := range a {
		if i > 0 {
			buf.WriteByte(' ')
		}
		o.writePDF(buf)
	}
	buf.WriteByte(']')
}

// Dict is a PDF dictionary. Keys are sorted before serialization so
// output is byte-for-byte deterministic across runs.
type Dict map[Name]Object

func (d Dict) writePDF(buf *bytes.Buffer) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	buf.WriteString("<<")
	for _, k := range keys {
		buf.WriteByte('/')
		buf.WriteString(k)
		buf.WriteByte(' ')
		d[Name(k)].writePDF(buf)
		buf.WriteByte(' ')
	}
	buf.WriteString(">>")
}

// Stream is a PDF stream object: a dictionary plus raw bytes. Length is
// computed and injected at write time, never hand-maintained.
type Stream struct {
	Dict Dict
	Data []byte
}

func (s *Stream) writePDF(buf *bytes.Buffer) {
	d := make(Dict, len(s.Dict)+1)
	for k, v := range s.Dict {
		d[k] = v
	}
	d["Length"] = Number(len(s.Data))
	d.writePDF(buf)
	buf.WriteString("\nstream\n")
	buf.Write(s.Data)
	buf.WriteString("\nendstream")
}

// invariantViolation panics with a precise message when the object graph
// the caller is asking pdfwriter to build cannot be valid PDF (no document
// catalog at Output time, or a compressor failure). Writer.Output recovers
// a violation raised while it serializes and returns it as an error; one
// raised earlier, while objects are being built, reaches the recover in
// render.Render.
func invariantViolation(format string, args ...interface{}) {
	panic(invariantError(fmt.Sprintf(format, args...)))
}

type invariantError string

func (e invariantError) Error() string { return string(e) }
