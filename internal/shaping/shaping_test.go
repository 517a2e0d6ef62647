package shaping

import "testing"

func TestHeuristicWordWidthScalesWithFontSize(t *testing.T) {
	small := HeuristicWordWidth("hello", 10, 400)
	large := HeuristicWordWidth("hello", 20, 400)
	if large <= small {
		t.Fatalf("expected width to grow with font size: small=%v large=%v", small, large)
	}
	if large != small*2 {
		t.Errorf("width should scale linearly with font size: small=%v large=%v", small, large)
	}
}

func TestHeuristicWordWidthHeavierWeightIsWider(t *testing.T) {
	normal := HeuristicWordWidth("sample", 12, 400)
	bold := HeuristicWordWidth("sample", 12, 700)
	if bold <= normal {
		t.Errorf("bold weight should measure wider: normal=%v bold=%v", normal, bold)
	}
}

func TestBuildWithNilFontReturnsEmptyRun(t *testing.T) {
	run := Build("hello", nil, 12, Options{})
	if len(run.Glyphs) != 0 || run.Width != 0 {
		t.Errorf("expected an empty run when no font is available, got %+v", run)
	}
}

func TestUsedRunesCollectsAcrossRuns(t *testing.T) {
	r1 := &Run{Glyphs: []GlyphPosition{{Rune: 'a'}, {Rune: 'b'}}}
	r2 := &Run{Glyphs: []GlyphPosition{{Rune: 'b'}, {Rune: 'c'}}}
	used := UsedRunes([]*Run{r1, r2})
	for _, r := range []rune{'a', 'b', 'c'} {
		if _, ok := used[r]; !ok {
			t.Errorf("expected rune %q in used set", r)
		}
	}
	if len(used) != 3 {
		t.Errorf("expected 3 distinct runes, got %d", len(used))
	}
}
