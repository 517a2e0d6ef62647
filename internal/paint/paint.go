// Package paint walks a paginated layout tree in paint order and emits
// PDF page content stream operators: fills and strokes for backgrounds,
// borders and box shadows, BT/ET text runs for shaped glyphs, and
// q/cm/Q blocks for opacity and 2D transforms. It is the bridge between
// the layout/paginate stages (px, top-left, Y-down) and pdfwriter's
// object graph (pt, bottom-left, Y-up).
package paint

import (
	"bytes"
	"fmt"
	"sort"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/core/engine/layout"
	"htmlpdf/internal/font"
	"htmlpdf/internal/gradient"
	"htmlpdf/internal/imaging"
	"htmlpdf/internal/paginate"
	"htmlpdf/internal/pdfwriter"
	"htmlpdf/internal/shaping"
)

// ImageResolver fetches and decodes the raster an <img> or
// background-image reference points at. A nil return (with no error) is
// treated as "skip painting this image".
type ImageResolver interface {
	Resolve(src string) (*imaging.Image, error)
}

// fontResource is what a LoadedFont resolves to once embedded: the PDF
// object reference and the rune->CID subset table the content stream's
// hex strings must be built against.
type fontResource struct {
	ref    pdfwriter.Ref
	subset *font.Subset
	name   pdfwriter.Name
}

// Painter paints one document's pages into PDF content streams, sharing
// one global font-embedding pass across every page so a face used on
// page 1 and page 40 embeds once, not forty times.
type Painter struct {
	w       *pdfwriter.Writer
	fonts   layout.FontProvider
	images  ImageResolver
	scale   float64 // px -> pt
	fontRes map[*font.LoadedFont]*fontResource
	imgRes  map[string]pdfwriter.Ref
	fontSeq int
	imgSeq  int
}

// New builds a Painter. scale converts the layout engine's pixel units
// to PDF points (72/DPI).
func New(w *pdfwriter.Writer, fonts layout.FontProvider, images ImageResolver, scale float64) *Painter {
	return &Painter{
		w:       w,
		fonts:   fonts,
		images:  images,
		scale:   scale,
		fontRes: make(map[*font.LoadedFont]*fontResource),
		imgRes:  make(map[string]pdfwriter.Ref),
	}
}

// PrepareFonts walks every page's node list (page.Header and page.Footer
// are not walked) collecting the runes each distinct font actually
// renders, then embeds one CIDFontType2 subset per font. Must run before
// PaintPage.
func (p *Painter) PrepareFonts(pages []*paginate.Page) {
	used := make(map[*font.LoadedFont]map[rune]struct{})
	order := make(map[*font.LoadedFont]int)
	var visit func(n *domain.LayoutNode)
	visit = func(n *domain.LayoutNode) {
		if n == nil {
			return
		}
		if _, seen := order[p.resolveFont(n)]; len(n.Lines) > 0 && !seen {
			order[p.resolveFont(n)] = len(order)
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, pg := range pages {
		for _, node := range pg.Nodes {
			p.collectRunes(node, used)
			visit(node)
		}
	}

	// Fonts are numbered in the order document traversal first meets
	// them, so /F0, /F1, ... assignment (and therefore the emitted PDF
	// bytes) is deterministic across runs.
	fonts := make([]*font.LoadedFont, 0, len(used))
	for lf := range used {
		fonts = append(fonts, lf)
	}
	sort.Slice(fonts, func(i, j int) bool { return order[fonts[i]] < order[fonts[j]] })

	for _, lf := range fonts {
		subset := font.NewSubset(lf, used[lf])
		name := pdfwriter.Name(fmt.Sprintf("F%d", p.fontSeq))
		p.fontSeq++
		ref := pdfwriter.EmbedSubsetFont(p.w, subset, lf, string(name))
		p.fontRes[lf] = &fontResource{ref: ref, subset: subset, name: name}
	}
}

func (p *Painter) collectRunes(node *domain.LayoutNode, used map[*font.LoadedFont]map[rune]struct{}) {
	if node == nil {
		return
	}
	if len(node.Lines) > 0 {
		if lf := p.resolveFont(node); lf != nil {
			set := used[lf]
			if set == nil {
				set = make(map[rune]struct{})
				used[lf] = set
			}
			for _, line := range node.Lines {
				for _, seg := range line.Segments {
					for _, r := range seg.Text {
						set[r] = struct{}{}
					}
				}
			}
		}
	}
	for _, child := range node.Children {
		p.collectRunes(child, used)
	}
}

func (p *Painter) resolveFont(node *domain.LayoutNode) *font.LoadedFont {
	if p.fonts == nil {
		return nil
	}
	return p.fonts.Resolve(node.Style.Font.Family, node.Style.Font.Weight, node.Style.Font.Style)
}

// PaintPage emits the content stream for one page and the resource
// dictionary it references (fonts, images, shadings).
func (p *Painter) PaintPage(page *paginate.Page, pageHeightPx float64) ([]byte, pdfwriter.Dict, error) {
	var buf bytes.Buffer
	resources := pdfwriter.Dict{}
	fontUsed := pdfwriter.Dict{}
	xobjUsed := pdfwriter.Dict{}
	shadingUsed := pdfwriter.Dict{}

	ctx := &paintContext{
		buf:          &buf,
		pageHeightPt: pageHeightPx * p.scale,
		scale:        p.scale,
		fontUsed:     fontUsed,
		xobjUsed:     xobjUsed,
		shadingUsed:  shadingUsed,
	}

	for _, node := range page.Nodes {
		p.paintNode(node, ctx)
	}

	if len(fontUsed) > 0 {
		resources["Font"] = fontUsed
	}
	if len(xobjUsed) > 0 {
		resources["XObject"] = xobjUsed
	}
	if len(shadingUsed) > 0 {
		resources["Shading"] = shadingUsed
	}
	return buf.Bytes(), resources, nil
}

type paintContext struct {
	buf          *bytes.Buffer
	pageHeightPt float64
	scale        float64
	fontUsed     pdfwriter.Dict
	xobjUsed     pdfwriter.Dict
	shadingUsed  pdfwriter.Dict
}

// toPDF converts a layout-space box (px, top-left origin, Y-down) to PDF
// user space (pt, bottom-left origin, Y-up).
func (c *paintContext) toPDF(box domain.Box) (x, y, w, h float64) {
	w = box.Width * c.scale
	h = box.Height * c.scale
	x = box.X * c.scale
	y = c.pageHeightPt - (box.Y+box.Height)*c.scale
	return
}

func (p *Painter) paintNode(node *domain.LayoutNode, ctx *paintContext) {
	if node == nil || node.Style.Display == domain.DisplayNone {
		return
	}

	hasTransform := node.Style.Transform != nil
	hasOpacity := node.Style.Opacity > 0 && node.Style.Opacity < 1
	wrapped := hasTransform || hasOpacity
	if wrapped {
		fmt.Fprint(ctx.buf, "q\n")
		if hasTransform {
			m := node.Style.Transform
			x, y, _, _ := ctx.toPDF(node.Box)
			fmt.Fprintf(ctx.buf, "1 0 0 1 %s %s cm\n", fnum(x), fnum(y))
			fmt.Fprintf(ctx.buf, "%s %s %s %s 0 0 cm\n", fnum(m.A), fnum(m.B), fnum(m.C), fnum(m.D))
			fmt.Fprintf(ctx.buf, "1 0 0 1 %s %s cm\n", fnum(-x), fnum(-y))
		}
	}

	p.paintShadows(node, ctx)
	p.paintBackground(node, ctx)
	p.paintBorder(node, ctx)
	p.paintText(node, ctx)

	for _, child := range node.Children {
		p.paintNode(child, ctx)
	}

	if wrapped {
		fmt.Fprint(ctx.buf, "Q\n")
	}
}

func (p *Painter) paintShadows(node *domain.LayoutNode, ctx *paintContext) {
	for _, sh := range node.Style.BoxShadows {
		if sh.Inset {
			continue // inset shadows need clip-path support the paint stage does not yet have
		}
		box := node.Box
		box.X += sh.OffsetX - sh.Spread
		box.Y += sh.OffsetY - sh.Spread
		box.Width += sh.Spread * 2
		box.Height += sh.Spread * 2

		if sh.Blur > 0 {
			p.paintBlurredShadow(box, node.Style.BorderRadius, sh, ctx)
			continue
		}

		x, y, w, h := ctx.toPDF(box)
		setFillColor(ctx.buf, sh.Color)
		fmt.Fprintf(ctx.buf, "%s %s %s %s re f\n", fnum(x), fnum(y), fnum(w), fnum(h))
	}
}

// paintBlurredShadow rasterizes a soft-edged shadow layer (gg + box blur,
// see shadow.go) and places it as an image XObject, since the content
// stream's own fill operators can only draw hard-edged shapes.
func (p *Painter) paintBlurredShadow(box domain.Box, radii [4]domain.CornerRadius, sh domain.Shadow, ctx *paintContext) {
	img := rasterizeShadow(box, radii, sh, ctx.scale)
	if img == nil {
		return
	}
	ref := embedShadowImage(p.w, img)
	name := pdfwriter.Name(fmt.Sprintf("Im%d", p.imgSeq))
	p.imgSeq++
	ctx.xobjUsed[name] = ref

	pad := sh.Blur * ctx.scale * 3
	if pad < 1 {
		pad = 1
	}
	x, y, w, h := ctx.toPDF(box)
	x -= pad
	y -= pad
	w += pad * 2
	h += pad * 2
	fmt.Fprintf(ctx.buf, "q\n%s 0 0 %s %s %s cm\n/%s Do\nQ\n", fnum(w), fnum(h), fnum(x), fnum(y), name)
}

func (p *Painter) paintBackground(node *domain.LayoutNode, ctx *paintContext) {
	x, y, w, h := ctx.toPDF(node.Box)
	if w <= 0 || h <= 0 {
		return
	}
	radii := scaleRadii(node.Style.BorderRadius, ctx.scale)
	rounded := hasRadius(radii)

	if grad := node.Style.BackgroundGradient; grad != nil {
		ref := gradient.Build(p.w, grad, domain.Box{Width: w, Height: h})
		name := pdfwriter.Name(fmt.Sprintf("Sh%d", len(ctx.shadingUsed)))
		ctx.shadingUsed[name] = ref
		fmt.Fprint(ctx.buf, "q\n")
		if rounded {
			appendRoundedRectPath(ctx.buf, x, y, w, h, radii)
			ctx.buf.WriteString("W n\n")
		} else {
			fmt.Fprintf(ctx.buf, "%s %s %s %s re W n\n", fnum(x), fnum(y), fnum(w), fnum(h))
		}
		fmt.Fprintf(ctx.buf, "1 0 0 1 %s %s cm\n/%s sh\nQ\n", fnum(x), fnum(y), name)
		return
	}

	if node.Style.Background.Color.A > 0 {
		setFillColor(ctx.buf, node.Style.Background.Color)
		if rounded {
			appendRoundedRectPath(ctx.buf, x, y, w, h, radii)
			ctx.buf.WriteString("f\n")
		} else {
			fmt.Fprintf(ctx.buf, "%s %s %s %s re f\n", fnum(x), fnum(y), fnum(w), fnum(h))
		}
	}

	if node.Type == "image" && node.Style.BackgroundImage != nil && p.images != nil {
		if rounded {
			fmt.Fprint(ctx.buf, "q\n")
			appendRoundedRectPath(ctx.buf, x, y, w, h, radii)
			ctx.buf.WriteString("W n\n")
			p.paintImage(node.Style.BackgroundImage.Src, x, y, w, h, ctx)
			fmt.Fprint(ctx.buf, "Q\n")
		} else {
			p.paintImage(node.Style.BackgroundImage.Src, x, y, w, h, ctx)
		}
	}
}

func (p *Painter) paintImage(src string, x, y, w, h float64, ctx *paintContext) {
	ref, ok := p.imgRes[src]
	if !ok {
		img, err := p.images.Resolve(src)
		if err != nil || img == nil {
			return
		}
		ref = pdfwriter.EmbedImage(p.w, img)
		p.imgRes[src] = ref
	}
	name := pdfwriter.Name(fmt.Sprintf("Im%d", p.imgSeq))
	p.imgSeq++
	ctx.xobjUsed[name] = ref
	fmt.Fprintf(ctx.buf, "q\n%s 0 0 %s %s %s cm\n/%s Do\nQ\n", fnum(w), fnum(h), fnum(x), fnum(y), name)
}

// paintBorder strokes a plain rectangle border, or — when any corner has a
// radius — fills the even-odd difference of the outer and inner rounded
// rectangles (spec.md 4.H), which is the only way to get a ring of uniform
// width around a rounded corner from fill/stroke primitives alone.
func (p *Painter) paintBorder(node *domain.LayoutNode, ctx *paintContext) {
	b := node.Style.Border
	if b.Width <= 0 || b.Style == domain.BorderNone {
		return
	}
	x, y, w, h := ctx.toPDF(node.Box)
	radii := scaleRadii(node.Style.BorderRadius, ctx.scale)

	if !hasRadius(radii) {
		setStrokeColor(ctx.buf, b.Color)
		fmt.Fprintf(ctx.buf, "%s w\n", fnum(b.Width*ctx.scale))
		fmt.Fprintf(ctx.buf, "%s %s %s %s re S\n", fnum(x), fnum(y), fnum(w), fnum(h))
		return
	}

	bw := b.Width * ctx.scale
	inner := [4]domain.CornerRadius{
		{X: maxf(0, radii[0].X-bw), Y: maxf(0, radii[0].Y-bw)},
		{X: maxf(0, radii[1].X-bw), Y: maxf(0, radii[1].Y-bw)},
		{X: maxf(0, radii[2].X-bw), Y: maxf(0, radii[2].Y-bw)},
		{X: maxf(0, radii[3].X-bw), Y: maxf(0, radii[3].Y-bw)},
	}

	setFillColor(ctx.buf, b.Color)
	appendRoundedRectPath(ctx.buf, x, y, w, h, radii)
	appendRoundedRectPath(ctx.buf, x+bw, y+bw, w-2*bw, h-2*bw, inner)
	ctx.buf.WriteString("f*\n")
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (p *Painter) paintText(node *domain.LayoutNode, ctx *paintContext) {
	if len(node.Lines) == 0 {
		return
	}
	lf := p.resolveFont(node)
	if lf == nil {
		return
	}
	res, ok := p.fontRes[lf]
	if !ok {
		return
	}
	ctx.fontUsed[res.name] = res.ref

	fontSize := node.Style.Font.Size
	if fontSize <= 0 {
		fontSize = 16
	}
	letterSpacing := node.Style.Text.LetterSpace
	wordSpacing := node.Style.Text.WordSpace

	fmt.Fprint(ctx.buf, "BT\n")
	setFillColor(ctx.buf, node.Style.Color)
	fmt.Fprintf(ctx.buf, "/%s %s Tf\n", res.name, fnum(fontSize*ctx.scale))

	for _, line := range node.Lines {
		baseY := node.Box.Y + line.Baseline
		_, py, _, _ := ctx.toPDF(domain.Box{X: node.Box.X, Y: baseY, Width: 0, Height: 0})

		for _, seg := range line.Segments {
			run := shaping.Build(seg.Text, lf, fontSize, shaping.Options{LetterSpacing: letterSpacing, WordSpacing: wordSpacing})
			hex := glyphHex(run, res.subset)
			segX := (node.Box.X + seg.X) * ctx.scale
			fmt.Fprintf(ctx.buf, "1 0 0 1 %s %s Tm\n", fnum(segX), fnum(py))
			fmt.Fprintf(ctx.buf, "<%s> Tj\n", hex)
		}
	}
	fmt.Fprint(ctx.buf, "ET\n")
}

func glyphHex(run *shaping.Run, subset *font.Subset) string {
	var b bytes.Buffer
	for _, g := range run.Glyphs {
		cid := subset.CIDForRune(g.Rune)
		fmt.Fprintf(&b, "%04X", cid)
	}
	return b.String()
}

func setFillColor(buf *bytes.Buffer, c domain.Color) {
	fmt.Fprintf(buf, "%s %s %s rg\n", fnum(float64(c.R)/255), fnum(float64(c.G)/255), fnum(float64(c.B)/255))
}

func setStrokeColor(buf *bytes.Buffer, c domain.Color) {
	fmt.Fprintf(buf, "%s %s %s RG\n", fnum(float64(c.R)/255), fnum(float64(c.G)/255), fnum(float64(c.B)/255))
}

func fnum(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
