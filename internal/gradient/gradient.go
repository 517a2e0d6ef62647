// Package gradient turns a parsed CSS gradient (internal/core/domain.Gradient)
// into a PDF shading object: a ShadingType 2 (axial) dictionary for
// linear gradients or ShadingType 3 (radial) for radial ones, backed by a
// stitched FunctionType 3 function over FunctionType 2 (exponential
// interpolation, N=1, i.e. plain linear) pieces between consecutive
// color stops.
package gradient

import (
	"math"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/pdfwriter"
)

// Build registers a shading object for grad sized to box (in PDF user
// space, already Y-flipped by the caller) and returns its object
// reference; choosing the /Shading resource name is left to the caller.
func Build(w *pdfwriter.Writer, grad *domain.Gradient, box domain.Box) pdfwriter.Ref {
	stops := normalizeStops(grad.Stops)
	fn := stitchedFunction(stops)

	var shading pdfwriter.Dict
	switch grad.Kind {
	case domain.GradientRadial:
		shading = radialShading(grad, box, fn)
	default:
		shading = linearShading(grad, box, fn)
	}
	return w.NewObject(shading)
}

func normalizeStops(stops []domain.GradientStop) []domain.GradientStop {
	if len(stops) == 0 {
		return []domain.GradientStop{
			{Color: domain.Color{A: 255}, Offset: 0},
			{Color: domain.Color{R: 255, G: 255, B: 255, A: 255}, Offset: 1},
		}
	}
	if len(stops) == 1 {
		return []domain.GradientStop{stops[0], stops[0]}
	}
	return stops
}

// stitchedFunction builds the FunctionType 3 "stitching" function that
// glues together one FunctionType 2 exponential-interpolation function
// per consecutive stop pair, matching how PDF represents a multi-stop
// gradient with no native multi-stop primitive.
func stitchedFunction(stops []domain.GradientStop) pdfwriter.Dict {
	functions := make(pdfwriter.Array, 0, len(stops)-1)
	bounds := make(pdfwriter.Array, 0, len(stops)-2)
	encode := make(pdfwriter.Array, 0, (len(stops)-1)*2)

	for i := 0; i+1 < len(stops); i++ {
		c0 := stops[i].Color
		c1 := stops[i+1].Color
		functions = append(functions, pdfwriter.Dict{
			"FunctionType": pdfwriter.Number(2),
			"Domain":       pdfwriter.Array{pdfwriter.Number(0), pdfwriter.Number(1)},
			"C0":           colorArray(c0),
			"C1":           colorArray(c1),
			"N":            pdfwriter.Number(1),
		})
		encode = append(encode, pdfwriter.Number(0), pdfwriter.Number(1))
		if i+2 < len(stops) {
			bounds = append(bounds, pdfwriter.Number(stops[i+1].Offset))
		}
	}

	return pdfwriter.Dict{
		"FunctionType": pdfwriter.Number(3),
		"Domain":       pdfwriter.Array{pdfwriter.Number(0), pdfwriter.Number(1)},
		"Functions":    functions,
		"Bounds":       bounds,
		"Encode":       encode,
	}
}

func colorArray(c domain.Color) pdfwriter.Array {
	return pdfwriter.Array{
		pdfwriter.Number(float64(c.R) / 255),
		pdfwriter.Number(float64(c.G) / 255),
		pdfwriter.Number(float64(c.B) / 255),
	}
}

// linearShading computes the axial gradient's start/end coordinates from
// the CSS angle (0deg points up, increasing clockwise) projected across
// the box's diagonal, per the CSS linear-gradient geometry the box's
// content occupies.
func linearShading(grad *domain.Gradient, box domain.Box, fn pdfwriter.Dict) pdfwriter.Dict {
	rad := (grad.Angle - 90) * math.Pi / 180 // CSS 0deg = up; PDF coords measure from +x axis
	cx, cy := box.Width/2, box.Height/2
	halfDiag := math.Hypot(box.Width, box.Height) / 2
	dx, dy := math.Cos(rad)*halfDiag, math.Sin(rad)*halfDiag

	extend := pdfwriter.Array{pdfwriter.Bool(true), pdfwriter.Bool(true)}
	if grad.Repeating {
		extend = pdfwriter.Array{pdfwriter.Bool(false), pdfwriter.Bool(false)}
	}

	return pdfwriter.Dict{
		"ShadingType": pdfwriter.Number(2),
		"ColorSpace":  pdfwriter.Name("DeviceRGB"),
		"Coords": pdfwriter.Array{
			pdfwriter.Number(cx - dx), pdfwriter.Number(cy - dy),
			pdfwriter.Number(cx + dx), pdfwriter.Number(cy + dy),
		},
		"Function": fn,
		"Extend":   extend,
	}
}

// radialShading centers the gradient on the box with a radius spanning
// its farthest corner, the common "farthest-corner" CSS radial-gradient
// default this renderer targets.
func radialShading(grad *domain.Gradient, box domain.Box, fn pdfwriter.Dict) pdfwriter.Dict {
	cx, cy := box.Width/2, box.Height/2
	radius := math.Hypot(box.Width/2, box.Height/2)

	extend := pdfwriter.Array{pdfwriter.Bool(true), pdfwriter.Bool(true)}
	if grad.Repeating {
		extend = pdfwriter.Array{pdfwriter.Bool(false), pdfwriter.Bool(false)}
	}

	return pdfwriter.Dict{
		"ShadingType": pdfwriter.Number(3),
		"ColorSpace":  pdfwriter.Name("DeviceRGB"),
		"Coords": pdfwriter.Array{
			pdfwriter.Number(cx), pdfwriter.Number(cy), pdfwriter.Number(0),
			pdfwriter.Number(cx), pdfwriter.Number(cy), pdfwriter.Number(radius),
		},
		"Function": fn,
		"Extend":   extend,
	}
}
