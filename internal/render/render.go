// Package render wires the full HTML+CSS -> PDF pipeline together: parse,
// layout, paginate, paint, and emit. Render is the module's single public
// entry point and the one place a pdfwriter invariant-violation panic is
// converted into a structured, returned error.
package render

import (
	"context"
	"fmt"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/core/engine/css"
	"htmlpdf/internal/core/engine/html"
	"htmlpdf/internal/core/engine/layout"
	"htmlpdf/internal/env"
	"htmlpdf/internal/fontresolver"
	"htmlpdf/internal/imaging"
	"htmlpdf/internal/paginate"
	"htmlpdf/internal/paint"
	"htmlpdf/internal/pdfwriter"
)

// mmToPt converts millimeters (this module's page-size unit) to PDF
// points (1/72 inch).
const mmToPt = 72.0 / 25.4

// Result is what a successful Render produces.
type Result struct {
	PDF       []byte
	PageCount int
}

// Render turns htmlContent (optionally carrying its own <style> tags) and
// an extra cssContent stylesheet into a complete PDF document, honoring
// the page size and margins in opts. Header/footer templates in opts are
// laid out for every page (Page.Header, Page.Footer) with {title} and
// {date} substituted as empty strings; painting draws only each page's
// body nodes, so header and footer content does not appear in the PDF.
func Render(ctx context.Context, htmlContent, cssContent string, opts domain.PrintOptions, environment env.Environment) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*domain.PrintError); ok {
				err = pe
				return
			}
			err = domain.NewPrintError(domain.ErrCodeInternal, fmt.Sprintf("render: %v", r), nil).
				WithKind(domain.KindPdfInvariantViolation)
		}
	}()

	sanitizer := html.NewSanitizer()
	validator := html.NewValidator(false)
	htmlParser := html.NewParser(sanitizer, validator)

	domTree, err := htmlParser.Parse(htmlContent, opts.Security)
	if err != nil {
		return nil, domain.NewPrintError(domain.ErrCodeInvalidInput, "HTML parsing failed", err).WithKind(domain.KindParseError)
	}

	cssParser := css.NewParser(false)
	stylesheet, err := cssParser.Parse(extractStyleSheets(domTree) + "\n" + cssContent)
	if err != nil {
		return nil, domain.NewPrintError(domain.ErrCodeInvalidInput, "CSS parsing failed", err).WithKind(domain.KindParseError)
	}

	fontProvider := fontresolver.NewRegistry(environment)

	dpi := float64(opts.Layout.DPI)
	if dpi <= 0 {
		dpi = 96
	}
	pxToPt := 72.0 / dpi

	pageWidthMM := opts.Page.Size.Width
	pageHeightMM := opts.Page.Size.Height
	if opts.Page.Orientation == domain.OrientationLandscape {
		pageWidthMM, pageHeightMM = pageHeightMM, pageWidthMM
	}
	pageWidthPt := pageWidthMM * mmToPt
	pageHeightPt := pageHeightMM * mmToPt

	marginTopPx := opts.Page.Margins.Top * mmToPt / pxToPt
	marginBottomPx := opts.Page.Margins.Bottom * mmToPt / pxToPt
	contentWidthPx := (pageWidthMM - opts.Page.Margins.Left - opts.Page.Margins.Right) * mmToPt / pxToPt
	contentHeightPx := pageHeightMM*mmToPt/pxToPt - marginTopPx - marginBottomPx

	layoutOpts := opts.Layout
	layoutOpts.ViewportWidth = int(contentWidthPx)
	if layoutOpts.ViewportHeight <= 0 {
		layoutOpts.ViewportHeight = int(contentHeightPx)
	}
	layoutOpts.DPI = int(dpi)

	engine := layout.NewEngine()
	layoutTree, err := engine.CalculateLayout(domTree, stylesheet, layoutOpts, fontProvider)
	if err != nil {
		return nil, domain.NewPrintError(domain.ErrCodeInternal, "layout calculation failed", err).WithKind(domain.KindLayoutOverflow)
	}

	layoutCtx := &layout.LayoutContext{
		Viewport: domain.Box{Width: contentWidthPx, Height: contentHeightPx},
		DPI:      dpi,
		Options:  layoutOpts,
		Fonts:    fontProvider,
	}
	engine.ResolvePositioned(layoutTree, layoutCtx)

	paginator := paginate.New(contentHeightPx)
	pages, err := paginator.Paginate(layoutTree)
	if err != nil {
		return nil, domain.NewPrintError(domain.ErrCodeInternal, "pagination failed", err).WithKind(domain.KindLayoutOverflow)
	}

	var header, footer *paginate.Template
	if opts.Page.HeaderHTML != "" {
		header = paginate.NewTemplate(opts.Page.HeaderHTML, opts.Page.HeaderCSS, opts.Page.HeaderHeight*mmToPt/pxToPt, fontProvider)
	}
	if opts.Page.FooterHTML != "" {
		footer = paginate.NewTemplate(opts.Page.FooterHTML, opts.Page.FooterCSS, opts.Page.FooterHeight*mmToPt/pxToPt, fontProvider)
	}
	if header != nil || footer != nil {
		if err := paginate.FinalizePageCount(pages, header, footer, contentWidthPx, "", ""); err != nil {
			return nil, domain.NewPrintError(domain.ErrCodeInternal, "header/footer rendering failed", err).WithKind(domain.KindLayoutOverflow)
		}
	}

	w := pdfwriter.New()
	doc := pdfwriter.NewDocument(w, pageWidthPt, pageHeightPt)

	images := &environmentImages{ctx: ctx, environment: environment}
	painter := paint.New(w, fontProvider, images, pxToPt)
	painter.PrepareFonts(pages)

	marginLeftPt := opts.Page.Margins.Left * mmToPt
	marginBottomPt := opts.Page.Margins.Bottom * mmToPt
	for _, page := range pages {
		content, resources, err := painter.PaintPage(page, contentHeightPx)
		if err != nil {
			return nil, domain.NewPrintError(domain.ErrCodeInternal, "page painting failed", err).WithKind(domain.KindPdfInvariantViolation)
		}
		// PaintPage draws from the page origin; shift it into the margin box.
		content = append([]byte(fmt.Sprintf("q\n1 0 0 1 %.3f %.3f cm\n", marginLeftPt, marginBottomPt)), content...)
		content = append(content, "Q\n"...)
		doc.AddPage(content, resources)
	}
	doc.Finish()

	pdfBytes, err := w.Output()
	if err != nil {
		return nil, domain.NewPrintError(domain.ErrCodeInternal, "PDF emission failed", err).WithKind(domain.KindPdfInvariantViolation)
	}

	return &Result{PDF: pdfBytes, PageCount: len(pages)}, nil
}

// extractStyleSheets concatenates the text content of every <style>
// element in the document, the common way CSS travels inline with HTML
// input rather than as a separate stylesheet file.
func extractStyleSheets(node *html.DOMNode) string {
	var out string
	var walk func(n *html.DOMNode)
	walk = func(n *html.DOMNode) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "style" {
			for _, child := range n.Children {
				if child.Type == html.TextNode {
					out += child.Data + "\n"
				}
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(node)
	return out
}

type environmentImages struct {
	ctx         context.Context
	environment env.Environment
}

func (e *environmentImages) Resolve(src string) (*imaging.Image, error) {
	data, err := e.environment.ReadBinary(e.ctx, src)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(data)
}
