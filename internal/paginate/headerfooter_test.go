package paginate

import "testing"

func TestSubstituteReplacesKnownTokensSingleAndDoubleBrace(t *testing.T) {
	tokens := Tokens{PageNumber: 3, PageCount: 10, Title: "Report", Date: "2026-07-31"}

	got := substitute("Page {page} of {{pages}} — {title} ({date})", tokens)
	want := "Page 3 of 10 — Report (2026-07-31)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSubstituteLeavesUnknownTokensUntouched(t *testing.T) {
	got := substitute("{typo} and {page}", Tokens{PageNumber: 1})
	want := "{typo} and 1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSubstituteLeavesUnmatchedBracesAlone(t *testing.T) {
	got := substitute("{ incomplete", Tokens{})
	if got != "{ incomplete" {
		t.Errorf("got %q, want unchanged input", got)
	}
}

func TestSubstituteReadsExtraTokens(t *testing.T) {
	tokens := Tokens{Extra: map[string]string{"author": "A. Writer"}}
	got := substitute("By {author}", tokens)
	if got != "By A. Writer" {
		t.Errorf("got %q, want %q", got, "By A. Writer")
	}
}

func TestTemplateRenderProducesLayoutWithSubstitutedText(t *testing.T) {
	tpl := NewTemplate(`<div>Page {page} of {pages}</div>`, `div { font-size: 10px; }`, 40, nil)

	tree, err := tpl.Render(300, Tokens{PageNumber: 2, PageCount: 5})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if tree == nil {
		t.Fatal("expected a non-nil layout tree")
	}
}

func TestFinalizePageCountAppliesTotalPageCountToEveryPage(t *testing.T) {
	header := NewTemplate(`<div>{page}/{pages}</div>`, "", 20, nil)
	pages := []*Page{{Number: 1}, {Number: 2}, {Number: 3}}

	if err := FinalizePageCount(pages, header, nil, 200, "Title", "2026-07-31"); err != nil {
		t.Fatalf("FinalizePageCount: %v", err)
	}
	for _, p := range pages {
		if p.Header == nil {
			t.Errorf("page %d missing rendered header", p.Number)
		}
	}
}
