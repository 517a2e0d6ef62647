package css

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"htmlpdf/internal/core/domain"
)

// BoxShadow is a single parsed `box-shadow` layer.
type BoxShadow struct {
	OffsetX, OffsetY float64
	Blur, Spread     float64
	Color            domain.Color
	Inset            bool
}

var boxShadowLengthRegex = regexp.MustCompile(`-?[\d.]+(?:px|pt|em|rem)?`)

// ParseBoxShadow parses a single-layer `box-shadow` value: optional
// `inset`, 2-4 lengths, and an optional trailing color. Comma-separated
// multi-layer shadows are split by the caller before invoking this.
func ParseBoxShadow(value string) *BoxShadow {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" {
		return nil
	}

	shadow := &BoxShadow{Color: domain.Color{A: 255}}
	if strings.Contains(value, "inset") {
		shadow.Inset = true
		value = strings.ReplaceAll(value, "inset", "")
	}

	if color := parseColor(value); color != nil {
		shadow.Color = *color
		value = stripColorToken(value)
	} else {
		fields := strings.Fields(value)
		for i, f := range fields {
			if c := parseColor(f); c != nil {
				shadow.Color = *c
				value = strings.Join(append(fields[:i:i], fields[i+1:]...), " ")
				break
			}
		}
	}

	lengths := boxShadowLengthRegex.FindAllString(value, -1)
	vals := make([]float64, 0, len(lengths))
	for _, l := range lengths {
		vals = append(vals, parseLengthPx(l))
	}
	if len(vals) < 2 {
		return nil
	}
	shadow.OffsetX = vals[0]
	shadow.OffsetY = vals[1]
	if len(vals) > 2 {
		shadow.Blur = vals[2]
	}
	if len(vals) > 3 {
		shadow.Spread = vals[3]
	}
	return shadow
}

var colorTokenRegex = regexp.MustCompile(`(?i)#[0-9a-f]{3,8}|rgba?\([^)]*\)`)

func stripColorToken(value string) string {
	return colorTokenRegex.ReplaceAllString(value, "")
}

func parseLengthPx(s string) float64 {
	s = strings.TrimSpace(s)
	for _, unit := range []string{"px", "pt", "em", "rem"} {
		if strings.HasSuffix(s, unit) {
			f, _ := strconv.ParseFloat(s[:len(s)-len(unit)], 64)
			return f
		}
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// GradientKind distinguishes linear from radial gradients in a parsed
// `background-image` value.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
)

// GradientStop is one color stop of a parsed gradient.
type GradientStop struct {
	Color  domain.Color
	Offset float64
}

// Gradient is a parsed CSS `linear-gradient()`/`radial-gradient()` value.
type Gradient struct {
	Kind      GradientKind
	Angle     float64
	Stops     []GradientStop
	Repeating bool
}

var gradientFuncRegex = regexp.MustCompile(`(repeating-)?(linear|radial)-gradient\((.*)\)`)
var gradientAngleRegex = regexp.MustCompile(`^(-?[\d.]+)deg`)

// ParseGradient parses the pragmatic gradient subset this renderer
// supports: `linear-gradient(<angle>deg | to <side>, <color> <stop>%, ...)`
// and `radial-gradient(<color> <stop>%, ...)`. The sides top, right,
// bottom and left map to 0, 90, 180 and 270deg; corner directions such
// as `to top right` are not recognised and fall back to 180deg. Returns
// nil for anything else (including plain `url(...)` backgrounds, handled
// by ParseURL).
func ParseGradient(value string) *Gradient {
	m := gradientFuncRegex.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return nil
	}
	g := &Gradient{Repeating: m[1] != "", Kind: GradientLinear}
	if m[2] == "radial" {
		g.Kind = GradientRadial
	}

	body := m[3]
	parts := splitTopLevelCommas(body)
	if len(parts) == 0 {
		return nil
	}

	if g.Kind == GradientLinear {
		first := strings.TrimSpace(parts[0])
		if am := gradientAngleRegex.FindStringSubmatch(first); am != nil {
			g.Angle, _ = strconv.ParseFloat(am[1], 64)
			parts = parts[1:]
		} else if strings.HasPrefix(first, "to ") {
			switch strings.TrimSpace(first[3:]) {
			case "top":
				g.Angle = 0
			case "right":
				g.Angle = 90
			case "left":
				g.Angle = 270
			default:
				g.Angle = 180
			}
			parts = parts[1:]
		} else {
			g.Angle = 180 // CSS default: to bottom
		}
	}

	for i, p := range parts {
		p = strings.TrimSpace(p)
		color := parseColor(p)
		if color == nil {
			continue
		}
		offset := float64(i) / float64(max(1, len(parts)-1))
		if pm := regexp.MustCompile(`([\d.]+)%`).FindStringSubmatch(p); pm != nil {
			pct, _ := strconv.ParseFloat(pm[1], 64)
			offset = pct / 100
		}
		g.Stops = append(g.Stops, GradientStop{Color: *color, Offset: offset})
	}
	if len(g.Stops) == 0 {
		return nil
	}
	return g
}

func splitTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	last := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var urlRegex = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)

// ParseURL extracts the URL from a CSS `url(...)` value, or "" if value
// isn't a url() reference.
func ParseURL(value string) string {
	if m := urlRegex.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return ""
}

// Matrix2x3 is a parsed CSS 2D transform matrix.
type Matrix2x3 struct {
	A, B, C, D, E, F float64
}

var matrixRegex = regexp.MustCompile(`matrix\(([^)]+)\)`)
var translateRegex = regexp.MustCompile(`translate\(\s*(-?[\d.]+)(?:px)?\s*,?\s*(-?[\d.]*)(?:px)?\s*\)`)
var rotateRegex = regexp.MustCompile(`rotate\((-?[\d.]+)deg\)`)
var scaleRegex = regexp.MustCompile(`scale\((-?[\d.]+)(?:,\s*(-?[\d.]+))?\)`)

// ParseTransform parses a single-function CSS `transform` value
// (`matrix()`, `translate()`, `rotate()`, or `scale()`) into its
// equivalent 2x3 affine matrix. Multi-function transform lists are not
// composed: the functions are tried in the fixed order matrix, translate,
// rotate, scale, and only the first one found in the value applies,
// whatever its position in the list.
func ParseTransform(value string) *Matrix2x3 {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" {
		return nil
	}
	if m := matrixRegex.FindStringSubmatch(value); m != nil {
		nums := strings.Split(m[1], ",")
		if len(nums) == 6 {
			vals := make([]float64, 6)
			for i, n := range nums {
				vals[i], _ = strconv.ParseFloat(strings.TrimSpace(n), 64)
			}
			return &Matrix2x3{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}
		}
	}
	if m := translateRegex.FindStringSubmatch(value); m != nil {
		tx, _ := strconv.ParseFloat(m[1], 64)
		ty := 0.0
		if m[2] != "" {
			ty, _ = strconv.ParseFloat(m[2], 64)
		}
		return &Matrix2x3{A: 1, D: 1, E: tx, F: ty}
	}
	if m := rotateRegex.FindStringSubmatch(value); m != nil {
		deg, _ := strconv.ParseFloat(m[1], 64)
		rad := deg * 3.141592653589793 / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		return &Matrix2x3{A: cos, B: sin, C: -sin, D: cos}
	}
	if m := scaleRegex.FindStringSubmatch(value); m != nil {
		sx, _ := strconv.ParseFloat(m[1], 64)
		sy := sx
		if m[2] != "" {
			sy, _ = strconv.ParseFloat(m[2], 64)
		}
		return &Matrix2x3{A: sx, D: sy}
	}
	return nil
}
