// Package env abstracts the side-effecting operations the rendering
// pipeline needs from its host: reading font/image bytes, listing
// installed fonts, Brotli decompression for WOFF2, the clock, and
// structured logging. Every pipeline component that touches the outside
// world takes an Environment rather than calling os/http directly, so
// tests can supply an in-memory or network-forbidding implementation.
package env

import (
	"context"

	"htmlpdf/internal/infrastructure/logger"
)

// Environment is the seam between the rendering pipeline and its host.
type Environment interface {
	// ReadBinary fetches a resource referenced by a document: a local
	// file path, a data: URI, or an http(s) URL, depending on what the
	// implementation chooses to support.
	ReadBinary(ctx context.Context, ref string) ([]byte, error)
	// ListFonts returns the font file paths available to the renderer,
	// used to resolve a CSS font-family to a concrete font program.
	ListFonts(ctx context.Context) ([]string, error)
	// DecompressBrotli inflates a WOFF2 font program's compressed table
	// stream.
	DecompressBrotli(data []byte) ([]byte, error)
	// Now returns the current time, used for document metadata and
	// {date} header/footer tokens.
	Now() int64
	// Log returns a structured logger scoped to this render call.
	Log() logger.Logger
}
