// Package search finds pattern occurrences in a document and keeps the
// cyclic "current match" used by next/previous navigation.
package search

import (
	"sort"

	"github.com/hyperion-editor/hyperion/internal/grapheme"
)

// Match is one occurrence. Columns are grapheme indices, EndCol exclusive.
type Match struct {
	Line     int
	StartCol int
	EndCol   int
}

// Source is the read-only view of a document the engine scans.
type Source interface {
	LineCount() int
	LineClusters(row int) []string
	Version() uint64
}

// Engine holds the pattern, the ordered match list and the current index.
// The zero value is an inactive engine.
type Engine struct {
	pattern  string
	clusters []string
	matches  []Match
	current  int
	version  uint64
}

func New() *Engine {
	return &Engine{current: -1}
}

// Search scans src for pattern and selects the first match. An empty
// pattern clears the engine. It returns the match count.
func (e *Engine) Search(pattern string, src Source) int {
	e.pattern = pattern
	e.clusters = grapheme.Split(pattern)
	e.scan(src)
	e.current = -1
	if len(e.matches) > 0 {
		e.current = 0
	}
	return len(e.matches)
}

// Refresh rescans src with the current pattern when src changed since the
// last scan. The current index is kept, clamped into the new list.
func (e *Engine) Refresh(src Source) {
	if !e.Stale(src) {
		return
	}
	prev := e.current
	e.scan(src)
	switch {
	case len(e.matches) == 0:
		e.current = -1
	case prev < 0:
		e.current = 0
	case prev >= len(e.matches):
		e.current = len(e.matches) - 1
	default:
		e.current = prev
	}
}

// Stale reports whether the matches were computed for an older version of
// src.
func (e *Engine) Stale(src Source) bool {
	return e.Active() && e.version != src.Version()
}

// Next advances to the following match, wrapping from the last to the
// first. It reports false when there are no matches.
func (e *Engine) Next() (Match, bool) {
	if len(e.matches) == 0 {
		return Match{}, false
	}
	e.current = (e.current + 1) % len(e.matches)
	return e.matches[e.current], true
}

// Prev moves to the preceding match, wrapping from the first to the last.
func (e *Engine) Prev() (Match, bool) {
	n := len(e.matches)
	if n == 0 {
		return Match{}, false
	}
	if e.current < 0 {
		e.current = 0
	}
	e.current = (e.current + n - 1) % n
	return e.matches[e.current], true
}

func (e *Engine) Current() (Match, bool) {
	if e.current < 0 || e.current >= len(e.matches) {
		return Match{}, false
	}
	return e.matches[e.current], true
}

// CurrentIndex returns the index of the current match, or -1.
func (e *Engine) CurrentIndex() int { return e.current }

// Matches returns the match list sorted by line then start column. The
// slice is owned by the engine.
func (e *Engine) Matches() []Match { return e.matches }

func (e *Engine) Count() int { return len(e.matches) }

func (e *Engine) Pattern() string { return e.pattern }

// Active reports whether a non-empty pattern is set.
func (e *Engine) Active() bool { return e.pattern != "" }

// Reset drops the pattern and all matches.
func (e *Engine) Reset() {
	e.pattern = ""
	e.clusters = nil
	e.matches = nil
	e.current = -1
	e.version = 0
}

// OnLine returns the matches of one line.
func (e *Engine) OnLine(line int) []Match {
	lo := sort.Search(len(e.matches), func(i int) bool { return e.matches[i].Line >= line })
	hi := lo
	for hi < len(e.matches) && e.matches[hi].Line == line {
		hi++
	}
	return e.matches[lo:hi]
}

func (e *Engine) scan(src Source) {
	e.matches = e.matches[:0]
	e.version = src.Version()
	if len(e.clusters) == 0 {
		e.matches = nil
		return
	}
	for row := 0; row < src.LineCount(); row++ {
		e.matches = appendLineMatches(e.matches, row, src.LineClusters(row), e.clusters)
	}
}

// appendLineMatches appends the non-overlapping occurrences of pat in line.
// Scanning resumes after the end of each match.
func appendLineMatches(dst []Match, row int, line, pat []string) []Match {
	n := len(pat)
	for col := 0; col+n <= len(line); {
		if grapheme.Equal(line[col:col+n], pat) {
			dst = append(dst, Match{Line: row, StartCol: col, EndCol: col + n})
			col += n
			continue
		}
		col++
	}
	return dst
}
