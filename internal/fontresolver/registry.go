// Package fontresolver resolves a CSS font declaration (family, weight,
// style) to a loaded font program, backed by the fonts an Environment can
// see on disk or fetch over the network. It is the concrete
// layout.FontProvider a render pass wires in.
package fontresolver

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"htmlpdf/internal/env"
	"htmlpdf/internal/font"
)

type faceKey struct {
	family string
	weight int
	style  string
}

// Registry discovers font files through an Environment, loads them
// on demand, and caches the result so repeated Resolve calls for the
// same face during a single render reuse one LoadedFont.
type Registry struct {
	environment env.Environment

	mu       sync.Mutex
	byFile   map[string]*font.LoadedFont
	files    map[faceKey]string
	indexed  bool
	fallback *font.LoadedFont
}

// NewRegistry builds a Registry over environment. Font directory
// discovery is deferred to the first Resolve call.
func NewRegistry(environment env.Environment) *Registry {
	return &Registry{
		environment: environment,
		byFile:      make(map[string]*font.LoadedFont),
		files:       make(map[faceKey]string),
	}
}

// Resolve satisfies layout.FontProvider. It returns nil, never an error,
// when no matching face can be found or loaded, so the caller falls back
// to the typographic width heuristic rather than failing the whole
// render over a missing font.
func (r *Registry) Resolve(family string, weight int, style string) *font.LoadedFont {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.indexed {
		r.index()
		r.indexed = true
	}

	for _, candidate := range candidateFamilies(family) {
		key := faceKey{family: candidate, weight: nearestWeight(weight), style: normalizeStyle(style)}
		if path, ok := r.files[key]; ok {
			if lf := r.load(path); lf != nil {
				return lf
			}
		}
	}
	return nil
}

func (r *Registry) index() {
	ctx := context.Background()
	paths, err := r.environment.ListFonts(ctx)
	if err != nil {
		return
	}
	for _, path := range paths {
		key := guessFaceKey(path)
		if _, exists := r.files[key]; !exists {
			r.files[key] = path
		}
	}
}

func (r *Registry) load(path string) *font.LoadedFont {
	if lf, ok := r.byFile[path]; ok {
		return lf
	}
	data, err := r.environment.ReadBinary(context.Background(), path)
	if err != nil {
		return nil
	}
	lf, err := font.Load(data, brotliAdapter{r.environment})
	if err != nil {
		return nil
	}
	r.byFile[path] = lf
	return lf
}

type brotliAdapter struct{ environment env.Environment }

func (a brotliAdapter) DecompressBrotli(data []byte) ([]byte, error) {
	return a.environment.DecompressBrotli(data)
}

// guessFaceKey derives a font's family/weight/style from its filename,
// since system font directories rarely carry usable metadata without a
// full name-table parse: "OpenSans-BoldItalic.ttf" -> family "opensans",
// weight 700, style "italic".
func guessFaceKey(path string) faceKey {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	style := "normal"
	lower := strings.ToLower(name)
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		style = "italic"
	}

	weight := 400
	for token, w := range weightTokens {
		if strings.Contains(lower, token) {
			weight = w
			break
		}
	}

	family := lower
	for _, sep := range []string{"-", "_"} {
		if idx := strings.Index(family, sep); idx > 0 {
			family = family[:idx]
		}
	}
	family = strings.TrimSpace(family)

	return faceKey{family: family, weight: weight, style: style}
}

var weightTokens = map[string]int{
	"thin":       100,
	"extralight": 200,
	"light":      300,
	"regular":    400,
	"medium":     500,
	"semibold":   600,
	"bold":       700,
	"extrabold":  800,
	"black":      900,
}

// candidateFamilies expands a CSS font-family value (which may be a
// comma-separated fallback list plus generic keywords) into the list of
// normalized names worth trying, in order.
func candidateFamilies(family string) []string {
	var out []string
	for _, part := range strings.Split(family, ",") {
		name := strings.ToLower(strings.Trim(strings.TrimSpace(part), `"'`))
		name = strings.ReplaceAll(name, " ", "")
		if name != "" {
			out = append(out, name)
		}
	}
	out = append(out, "sans", "sansserif", "serif", "monospace", "arial", "helvetica")
	return out
}

func normalizeStyle(style string) string {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "italic" || style == "oblique" {
		return "italic"
	}
	return "normal"
}

// nearestWeight snaps a CSS font-weight to the nearest value the
// filename-derived weight buckets use (multiples of 100).
func nearestWeight(weight int) int {
	if weight <= 0 {
		return 400
	}
	return ((weight + 50) / 100) * 100
}

// ParseWeight converts a CSS font-weight token ("bold", "400", ...) to
// its numeric form.
func ParseWeight(value string) int {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "bold":
		return 700
	case "normal", "":
		return 400
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return 400
}
