package font

import "fmt"

// FormatError reports that a font program is not a valid SFNT/WOFF/WOFF2
// stream, or is missing one of the tables required to build FontMetrics.
type FormatError string

func (e FormatError) Error() string { return "font: invalid format: " + string(e) }

// BackendError reports that an external capability the font subsystem
// depends on (the Brotli decompressor supplied through env.Environment)
// failed or is unavailable.
type BackendError struct {
	Op    string
	Cause error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("font: backend error during %s: %v", e.Op, e.Cause)
}

func (e *BackendError) Unwrap() error { return e.Cause }
