package pdfwriter

import (
	"bytes"
	"strings"
	"testing"
)

func serialize(t *testing.T, o Object) string {
	t.Helper()
	var buf bytes.Buffer
	o.writePDF(&buf)
	return buf.String()
}

func TestObjectSerialization(t *testing.T) {
	cases := []struct {
		name string
		obj  Object
		want string
	}{
		{"name", Name("Type"), "/Type"},
		{"integer", Number(3), "3"},
		{"fractional", Number(3.5), "3.5000"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"string escapes", String("a(b)c\\d"), `(a\(b\)c\\d)`},
		{"hex string", HexString([]byte{0x00, 0x41}), "<0041>"},
		{"array", Array{Number(1), Number(2)}, "[1 2]"},
		{"ref", Ref(7), "7 0 R"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := serialize(t, c.obj); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestDictKeysAreSortedForDeterminism(t *testing.T) {
	d := Dict{"Zeta": Number(1), "Alpha": Number(2), "Mid": Number(3)}
	got := serialize(t, d)
	wantOrder := []string{"/Alpha", "/Mid", "/Zeta"}
	lastIdx := -1
	for _, key := range wantOrder {
		idx := strings.Index(got, key)
		if idx == -1 {
			t.Fatalf("missing key %s in %q", key, got)
		}
		if idx < lastIdx {
			t.Fatalf("keys out of order in %q", got)
		}
		lastIdx = idx
	}
}

func TestStreamComputesLength(t *testing.T) {
	s := &Stream{Dict: Dict{"Filter": Name("FlateDecode")}, Data: []byte("hello")}
	got := serialize(t, s)
	if !strings.Contains(got, "/Length 5") {
		t.Errorf("expected /Length 5 in %q", got)
	}
	if !strings.Contains(got, "stream\nhello\nendstream") {
		t.Errorf("expected stream body wrapper in %q", got)
	}
}

func TestWriterOutputProducesWellFormedFile(t *testing.T) {
	w := New()
	doc := NewDocument(w, 612, 792)
	doc.AddPage([]byte("BT ET"), Dict{})
	doc.Finish()

	out, err := w.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	s := string(out)

	if !strings.HasPrefix(s, "%PDF-1.4\n") {
		t.Errorf("missing PDF header: %q", s[:20])
	}
	if !strings.Contains(s, "/Type /Catalog") {
		t.Errorf("missing catalog: %s", s)
	}
	if !strings.Contains(s, "/Type /Pages") {
		t.Errorf("missing page tree: %s", s)
	}
	if !strings.Contains(s, "trailer") || !strings.Contains(s, "startxref") {
		t.Errorf("missing trailer/startxref: %s", s)
	}
	if !strings.HasSuffix(s, "%%EOF\n") {
		t.Errorf("file does not end with %%%%EOF\\n: %q", s[len(s)-20:])
	}
}

func TestWriterOutputWithoutCatalogIsInvariantViolation(t *testing.T) {
	w := New()
	w.NewObject(Dict{"Type": Name("Font")})

	_, err := w.Output()
	if err == nil {
		t.Fatal("expected invariant violation error for missing catalog")
	}
	if !strings.Contains(err.Error(), "invariant violation") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDocumentAddPageAssignsDistinctObjects(t *testing.T) {
	w := New()
	doc := NewDocument(w, 100, 100)
	p1 := doc.AddPage([]byte("1"), Dict{})
	p2 := doc.AddPage([]byte("2"), Dict{})
	if p1 == p2 {
		t.Fatal("expected distinct page object references")
	}
	doc.Finish()
	if len(doc.pageIDs) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.pageIDs))
	}
}
