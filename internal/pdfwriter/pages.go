package pdfwriter

// Document assembles the page tree and document catalog: one Pages
// object as parent, one Page object per page, each carrying its own
// /Resources and /Contents. This mirrors the conventional PDF page-tree
// shape (a single flat Kids array is sufficient at the page counts this
// renderer produces; a balanced tree is unneeded).
type Document struct {
	w         *Writer
	pagesID   Ref
	pageIDs   []Ref
	mediaBox  Array
	resources Dict
}

// NewDocument reserves the Pages object and records the shared
// media box every page defaults to (in PDF points).
func NewDocument(w *Writer, widthPt, heightPt float64) *Document {
	return &Document{
		w:        w,
		pagesID:  w.NewObjectID(),
		mediaBox: Array{Number(0), Number(0), Number(widthPt), Number(heightPt)},
	}
}

// AddPage creates a new page with the given content stream bytes and
// resource dictionary (fonts, XObjects, shadings it references), and
// returns its object reference.
func (d *Document) AddPage(content []byte, resources Dict) Ref {
	contentID := d.w.NewObject(&Stream{
		Dict: Dict{"Filter": Name("FlateDecode")},
		Data: flateCompress(content),
	})

	pageID := d.w.NewObject(Dict{
		"Type":      Name("Page"),
		"Parent":    d.pagesID,
		"MediaBox":  d.mediaBox,
		"Contents":  contentID,
		"Resources": resources,
	})
	d.pageIDs = append(d.pageIDs, pageID)
	return pageID
}

// Finish writes the Pages object (now that all Kids are known) and the
// document catalog, and registers the catalog as the trailer root.
func (d *Document) Finish() Ref {
	kids := make(Array, len(d.pageIDs))
	for i, id := range d.pageIDs {
		kids[i] = id
	}
	d.w.Set(d.pagesID, Dict{
		"Type":  Name("Pages"),
		"Kids":  kids,
		"Count": Number(len(d.pageIDs)),
	})

	catalogID := d.w.NewObject(Dict{
		"Type":  Name("Catalog"),
		"Pages": d.pagesID,
	})
	d.w.SetCatalog(catalogID)
	return catalogID
}
