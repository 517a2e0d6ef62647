package env

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestDecodeDataURIBase64(t *testing.T) {
	got, err := decodeDataURI("data:text/plain;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("decodeDataURI: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestDecodeDataURIPercentEncoded(t *testing.T) {
	got, err := decodeDataURI("data:text/plain,hello%20world")
	if err != nil {
		t.Fatalf("decodeDataURI: %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("got %q, want %q", got, "hello world")
	}
}

func TestDecodeDataURIRejectsMalformedInput(t *testing.T) {
	if _, err := decodeDataURI("data:no-comma-here"); err == nil {
		t.Fatal("expected an error for a data URI without a comma")
	}
}

func TestReadBinaryResolvesDataURI(t *testing.T) {
	e := NewLocalEnvironment(nil)
	got, err := e.ReadBinary(context.Background(), "data:text/plain;base64,aGk=")
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if string(got) != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}

func TestReadBinaryResolvesLocalFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("local content"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := NewLocalEnvironment(nil)
	got, err := e.ReadBinary(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if string(got) != "local content" {
		t.Errorf("got %q, want %q", got, "local content")
	}
}

func TestReadBinaryFetchesHTTPURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote content"))
	}))
	defer srv.Close()

	e := NewLocalEnvironment(nil)
	got, err := e.ReadBinary(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if string(got) != "remote content" {
		t.Errorf("got %q, want %q", got, "remote content")
	}
}

func TestReadBinaryPropagatesHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	e := NewLocalEnvironment(nil)
	if _, err := e.ReadBinary(context.Background(), srv.URL); err == nil {
		t.Fatal("expected an error for a non-200 HTTP response")
	}
}

func TestDecompressBrotliInflatesCompressedData(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, repeated, repeated, repeated")

	var compressed bytes.Buffer
	bw := brotli.NewWriter(&compressed)
	if _, err := bw.Write(original); err != nil {
		t.Fatalf("compressing fixture: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("closing brotli writer: %v", err)
	}

	e := NewLocalEnvironment(nil)
	got, err := e.DecompressBrotli(compressed.Bytes())
	if err != nil {
		t.Fatalf("DecompressBrotli: %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Errorf("got %q, want %q", got, original)
	}
}

func TestNewLocalEnvironmentDefaultsToNoopLogger(t *testing.T) {
	e := NewLocalEnvironment(nil)
	if e.Log() == nil {
		t.Fatal("expected a non-nil default logger")
	}
	e.Log().Info("should not panic")
}
