package search

import (
	"testing"

	"github.com/hyperion-editor/hyperion/internal/buffer"
)

func newDoc(text string) *buffer.Buffer { return buffer.New(text) }

func TestSearchScenario(t *testing.T) {
	doc := newDoc("foo bar\nbaz foo\nqux")
	e := New()
	if n := e.Search("foo", doc); n != 2 {
		t.Fatalf("Search count = %d, want 2", n)
	}
	want := []Match{{Line: 0, StartCol: 0, EndCol: 3}, {Line: 1, StartCol: 4, EndCol: 7}}
	got := e.Matches()
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("matches[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if e.CurrentIndex() != 0 {
		t.Fatalf("current = %d, want 0", e.CurrentIndex())
	}
	m, ok := e.Next()
	if !ok || m != want[1] || e.CurrentIndex() != 1 {
		t.Fatalf("Next = %v,%v idx %d, want %v idx 1", m, ok, e.CurrentIndex(), want[1])
	}
	m, ok = e.Next()
	if !ok || m != want[0] || e.CurrentIndex() != 0 {
		t.Fatalf("Next wrap = %v,%v idx %d, want %v idx 0", m, ok, e.CurrentIndex(), want[0])
	}
	m, _ = e.Prev()
	if m != want[1] {
		t.Fatalf("Prev wrap = %v, want %v", m, want[1])
	}
}

func TestSearchNonOverlapping(t *testing.T) {
	e := New()
	if n := e.Search("aa", newDoc("aaa")); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
	if n := e.Search("aa", newDoc("aaaa")); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	m := e.Matches()
	if m[1].StartCol != 2 {
		t.Fatalf("second match start = %d, want 2", m[1].StartCol)
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	e := New()
	if n := e.Search("Foo", newDoc("foo Foo FOO")); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestSearchEmptyPatternIsInactive(t *testing.T) {
	e := New()
	if n := e.Search("", newDoc("abc")); n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}
	if e.Active() {
		t.Fatalf("engine active with empty pattern")
	}
	if _, ok := e.Next(); ok {
		t.Fatalf("Next reported a match with no matches")
	}
	if _, ok := e.Prev(); ok {
		t.Fatalf("Prev reported a match with no matches")
	}
	if _, ok := e.Current(); ok {
		t.Fatalf("Current reported a match with no matches")
	}
}

func TestSearchGraphemeColumns(t *testing.T) {
	doc := newDoc("\u00e9t\u00e9 e\u0301t\u00e9 \u4e16\u754c")
	e := New()
	if n := e.Search("t\u00e9", doc); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	m := e.Matches()
	if m[0] != (Match{Line: 0, StartCol: 1, EndCol: 3}) {
		t.Fatalf("first = %v", m[0])
	}
	if m[1] != (Match{Line: 0, StartCol: 5, EndCol: 7}) {
		t.Fatalf("second = %v", m[1])
	}

	// a bare "e" never matches inside "e" + combining acute
	if n := e.Search("e", doc); n != 0 {
		t.Fatalf("count for bare e = %d, want 0", n)
	}
	if n := e.Search("\u754c", doc); n != 1 || e.Matches()[0].StartCol != 9 {
		t.Fatalf("wide match = %v", e.Matches())
	}
}

func TestNextCycleReturnsToStart(t *testing.T) {
	e := New()
	n := e.Search("x", newDoc("x x\nx\n\nxx x"))
	if n != 6 {
		t.Fatalf("count = %d, want 6", n)
	}
	start, _ := e.Current()
	for i := 0; i < n; i++ {
		e.Next()
	}
	if got, _ := e.Current(); got != start {
		t.Fatalf("after %d Next = %v, want %v", n, got, start)
	}
	for i := 0; i < n; i++ {
		e.Prev()
	}
	if got, _ := e.Current(); got != start {
		t.Fatalf("after %d Prev = %v, want %v", n, got, start)
	}
}

func TestRefreshAfterEdit(t *testing.T) {
	doc := newDoc("foo\nfoo\nfoo")
	e := New()
	e.Search("foo", doc)
	e.Next()
	e.Next()
	if e.Stale(doc) {
		t.Fatalf("fresh engine reported stale")
	}

	doc.SetCursor(buffer.Pos{Row: 2, Col: 0})
	doc.DeleteAfter()
	if !e.Stale(doc) {
		t.Fatalf("engine not stale after edit")
	}
	e.Refresh(doc)
	if e.Count() != 2 {
		t.Fatalf("count after refresh = %d, want 2", e.Count())
	}
	if e.CurrentIndex() != 1 {
		t.Fatalf("current after refresh = %d, want 1 (clamped)", e.CurrentIndex())
	}

	doc.Load("bar")
	e.Refresh(doc)
	if e.Count() != 0 || e.CurrentIndex() != -1 {
		t.Fatalf("after load: count %d idx %d, want 0 -1", e.Count(), e.CurrentIndex())
	}
	if !e.Active() {
		t.Fatalf("pattern dropped by refresh")
	}
}

func TestOnLine(t *testing.T) {
	e := New()
	e.Search("a", newDoc("a a\nb\naaa"))
	if got := len(e.OnLine(0)); got != 2 {
		t.Fatalf("OnLine(0) = %d matches, want 2", got)
	}
	if got := len(e.OnLine(1)); got != 0 {
		t.Fatalf("OnLine(1) = %d matches, want 0", got)
	}
	if got := len(e.OnLine(2)); got != 3 {
		t.Fatalf("OnLine(2) = %d matches, want 3", got)
	}
	if got := len(e.OnLine(9)); got != 0 {
		t.Fatalf("OnLine(9) = %d matches, want 0", got)
	}
}

func TestReset(t *testing.T) {
	e := New()
	e.Search("a", newDoc("a"))
	e.Reset()
	if e.Active() || e.Count() != 0 || e.Pattern() != "" {
		t.Fatalf("Reset left state: active %v count %d pattern %q", e.Active(), e.Count(), e.Pattern())
	}
}
