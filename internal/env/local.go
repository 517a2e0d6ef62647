package env

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"htmlpdf/internal/infrastructure/logger"
)

// commonFontDirs mirrors the handful of locations a document's font
// references are likely to resolve against on a typical Linux host.
var commonFontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	filepath.Join(os.Getenv("HOME"), ".fonts"),
	filepath.Join(os.Getenv("HOME"), ".local/share/fonts"),
}

// LocalEnvironment is the default Environment: local filesystem plus
// http(s) fetches, real Brotli decompression, the system clock, and a
// logger supplied by the caller.
type LocalEnvironment struct {
	log        logger.Logger
	httpClient *http.Client
}

// NewLocalEnvironment builds a LocalEnvironment. log may be nil, in which
// case Log() returns a no-op logger.
func NewLocalEnvironment(log logger.Logger) *LocalEnvironment {
	if log == nil {
		log = noopLogger{}
	}
	return &LocalEnvironment{
		log:        log,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ReadBinary resolves ref as a data: URI, an http(s) URL, or a local file
// path, in that order of recognition.
func (e *LocalEnvironment) ReadBinary(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "data:") {
		return decodeDataURI(ref)
	}
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return e.fetchHTTP(ctx, ref)
	}
	return os.ReadFile(ref)
}

func (e *LocalEnvironment) fetchHTTP(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ref, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", ref, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func decodeDataURI(ref string) ([]byte, error) {
	comma := strings.IndexByte(ref, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	meta, payload := ref[5:comma], ref[comma+1:]
	if strings.Contains(meta, "base64") {
		return base64.StdEncoding.DecodeString(payload)
	}
	decoded, err := url.QueryUnescape(payload)
	if err != nil {
		return nil, err
	}
	return []byte(decoded), nil
}

// ListFonts walks the common system font directories and returns every
// .ttf/.otf/.woff/.woff2 file found.
func (e *LocalEnvironment) ListFonts(ctx context.Context) ([]string, error) {
	var found []string
	for _, dir := range commonFontDirs {
		if dir == "" {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil || d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf", ".woff", ".woff2":
				found = append(found, path)
			}
			return nil
		})
	}
	return found, nil
}

// DecompressBrotli inflates a WOFF2 font's Brotli-compressed table data.
func (e *LocalEnvironment) DecompressBrotli(data []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
}

// Now returns the current Unix timestamp.
func (e *LocalEnvironment) Now() int64 {
	return time.Now().Unix()
}

// Log returns the environment's structured logger.
func (e *LocalEnvironment) Log() logger.Logger {
	return e.log
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{})       {}
func (noopLogger) Info(string, ...interface{})        {}
func (noopLogger) Warn(string, ...interface{})        {}
func (noopLogger) Error(string, ...interface{})       {}
func (noopLogger) Fatal(string, ...interface{})       {}
func (n noopLogger) With(...interface{}) logger.Logger { return n }
func (noopLogger) Sync() error                        { return nil }
