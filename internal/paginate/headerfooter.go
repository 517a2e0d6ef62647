package paginate

import (
	"strconv"
	"strings"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/core/engine/css"
	"htmlpdf/internal/core/engine/html"
	"htmlpdf/internal/core/engine/layout"
)

// Template is a header or footer HTML fragment, re-laid-out at a fixed
// width/height for every page it appears on after its tokens are
// substituted for that page's values.
type Template struct {
	HTML       string
	CSS        string
	Height     float64
	parser     *html.Parser
	cssParser  *css.Parser
	engine     *layout.Engine
	fontSource layout.FontProvider
}

// NewTemplate builds a reusable header/footer template. fonts may be nil,
// in which case text in headers/footers measures with the typographic
// heuristic like any other text node without a resolvable font.
func NewTemplate(htmlFragment, cssText string, height float64, fonts layout.FontProvider) *Template {
	return &Template{
		HTML:       htmlFragment,
		CSS:        cssText,
		Height:     height,
		parser:     html.NewParser(html.NewSanitizer(), html.NewValidator(false)),
		cssParser:  css.NewParser(false),
		engine:     layout.NewEngine(),
		fontSource: fonts,
	}
}

// Tokens is the set of values a header/footer template may reference via
// `{name}` or `{{name}}` placeholders.
type Tokens struct {
	PageNumber int
	PageCount  int
	Title      string
	Date       string
	Extra      map[string]string
}

func (t Tokens) lookup(name string) (string, bool) {
	switch name {
	case "page", "pageNumber", "page_number":
		return strconv.Itoa(t.PageNumber), true
	case "pages", "pageCount", "page_count", "total":
		return strconv.Itoa(t.PageCount), true
	case "title":
		return t.Title, true
	case "date":
		return t.Date, true
	}
	if t.Extra != nil {
		if v, ok := t.Extra[name]; ok {
			return v, true
		}
	}
	return "", false
}

// substitute replaces every `{name}`/`{{name}}` occurrence in text with its
// token value, scanning left to right by hand rather than via regexp; an
// unrecognized token name is left untouched rather than blanked, so a typo
// doesn't silently disappear from the rendered page.
func substitute(text string, tokens Tokens) string {
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		if text[i] != '{' {
			b.WriteByte(text[i])
			i++
			continue
		}

		start := i
		double := i+1 < len(text) && text[i+1] == '{'
		nameStart := i + 1
		if double {
			nameStart = i + 2
		}

		j := nameStart
		for j < len(text) && isTokenNameByte(text[j]) {
			j++
		}
		name := text[nameStart:j]

		closeLen := 1
		if double {
			closeLen = 2
		}
		if name == "" || j+closeLen > len(text) || !matchesClose(text[j:], closeLen) {
			b.WriteByte(text[i])
			i++
			continue
		}

		if v, ok := tokens.lookup(name); ok {
			b.WriteString(v)
		} else {
			b.WriteString(text[start : j+closeLen])
		}
		i = j + closeLen
	}
	return b.String()
}

func isTokenNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func matchesClose(s string, n int) bool {
	for k := 0; k < n; k++ {
		if s[k] != '}' {
			return false
		}
	}
	return true
}

// Render substitutes tokens into the template HTML, parses and lays it out
// at the given width with Height as the viewport height, and returns the
// resulting layout tree; content taller than Height is not clipped.
func (t *Template) Render(width float64, tokens Tokens) (*domain.LayoutNode, error) {
	resolved := substitute(t.HTML, tokens)

	stylesheet, err := t.cssParser.Parse(t.CSS)
	if err != nil {
		return nil, err
	}

	dom, err := t.parser.Parse(resolved, domain.SecurityOptions{SanitizeHTML: true, AllowExternalCSS: false})
	if err != nil {
		return nil, err
	}

	opts := domain.LayoutOptions{ViewportWidth: int(width), ViewportHeight: int(t.Height), DPI: 96}
	tree, err := t.engine.CalculateLayout(dom, stylesheet, opts, t.fontSource)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// ApplyHeaderFooter renders header and footer (when non-nil) for page and
// attaches them to it. PageCount is left at zero, so `{pages}` renders as
// 0; FinalizePageCount re-renders with the total.
func ApplyHeaderFooter(page *Page, header, footer *Template, width float64, title, date string) error {
	tokens := Tokens{PageNumber: page.Number, Title: title, Date: date}
	if header != nil {
		h, err := header.Render(width, tokens)
		if err != nil {
			return err
		}
		page.Header = h
	}
	if footer != nil {
		f, err := footer.Render(width, tokens)
		if err != nil {
			return err
		}
		page.Footer = f
	}
	return nil
}

// FinalizePageCount sets Tokens.PageCount-dependent header/footer content
// after the total page count is known (headers referencing `{pages}` need
// a second substitution pass once pagination completes).
func FinalizePageCount(pages []*Page, header, footer *Template, width float64, title, date string) error {
	count := len(pages)
	for _, p := range pages {
		tokens := Tokens{PageNumber: p.Number, PageCount: count, Title: title, Date: date}
		if header != nil {
			h, err := header.Render(width, tokens)
			if err != nil {
				return err
			}
			p.Header = h
		}
		if footer != nil {
			f, err := footer.Render(width, tokens)
			if err != nil {
				return err
			}
			p.Footer = f
		}
	}
	return nil
}
