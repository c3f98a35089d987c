package logic

import (
	"unicode"
	"unicode/utf8"

	"selectdrop/internal/domain"
)

// Segment is one piece of a label split for match emphasis
type Segment struct {
	Text  string
	Match bool
}

// Filter returns the options whose label contains query, ignoring case.
// An empty query returns the catalog itself; otherwise a new slice in
// catalog order. The input is never modified.
func Filter(catalog []domain.Option, query string) []domain.Option {
	if query == "" {
		return catalog
	}

	matched := make([]domain.Option, 0, len(catalog))
	for _, opt := range catalog {
		if MatchesQuery(opt.Label, query) {
			matched = append(matched, opt)
		}
	}
	return matched
}

// MatchesQuery checks if a single label passes the filter
func MatchesQuery(label, query string) bool {
	if query == "" {
		return true
	}
	labelRunes, _ := decodeLabel(label)
	queryRunes := []rune(query)
	for i := 0; i+len(queryRunes) <= len(labelRunes); i++ {
		if foldedEqual(labelRunes[i:i+len(queryRunes)], queryRunes) {
			return true
		}
	}
	return false
}

// Highlight splits label around every non-overlapping, case-insensitive
// occurrence of query. The segment texts concatenate back to label, byte
// for byte, even when label is not valid UTF-8.
func Highlight(label, query string) []Segment {
	if query == "" {
		return []Segment{{Text: label}}
	}

	labelRunes, offsets := decodeLabel(label)
	queryRunes := []rune(query)

	var segments []Segment
	start := 0
	for i := 0; i+len(queryRunes) <= len(labelRunes); {
		if !foldedEqual(labelRunes[i:i+len(queryRunes)], queryRunes) {
			i++
			continue
		}
		if i > start {
			segments = append(segments, Segment{Text: label[offsets[start]:offsets[i]]})
		}
		end := i + len(queryRunes)
		segments = append(segments, Segment{Text: label[offsets[i]:offsets[end]], Match: true})
		start = end
		i = end
	}
	if start < len(labelRunes) || len(segments) == 0 {
		segments = append(segments, Segment{Text: label[offsets[start]:]})
	}
	return segments
}

// decodeLabel splits s into runes plus the byte offset where each one
// starts. offsets has one extra entry holding len(s). Invalid bytes decode
// to utf8.RuneError one byte at a time.
func decodeLabel(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		runes = append(runes, r)
		offsets = append(offsets, i)
		i += size
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}

func foldedEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFoldRune(a[i], b[i]) {
			return false
		}
	}
	return true
}

// equalFoldRune reports whether a and b share a simple case folding orbit,
// so 'k', 'K' and the Kelvin sign all compare equal.
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
