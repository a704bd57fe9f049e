// Package textrange maps character-offset ranges onto flattened text.
//
// Offsets are rune offsets into the concatenated plain text of a container,
// independent of how that text is split across nodes by intervening markup.
// All ranges are half-open: Start inclusive, End exclusive.
package textrange

import (
	"strings"
	"unicode/utf8"
)

// Span is a half-open rune-offset range into a piece of text.
type Span struct {
	Start int `json:"start_index"`
	End   int `json:"end_index"`
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Valid reports whether the span is in bounds for text of textLen runes.
func (s Span) Valid(textLen int) bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= textLen
}

// Overlaps reports whether two spans share at least one rune.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Selection is a platform-independent description of a user text selection:
// node indexes into a flattened sequence of text nodes plus rune offsets
// within the boundary nodes. Adapters translate platform selection events
// (e.g. DOM Range endpoints) into this tuple.
type Selection struct {
	StartNode   int `json:"start_node"`
	StartOffset int `json:"start_offset"`
	EndNode     int `json:"end_node"`
	EndOffset   int `json:"end_offset"`
}

// Extract is a resolved selection: the selected text and its span within
// the flattened container text.
type Extract struct {
	Text string `json:"text"`
	Span
}

// Resolve converts a node-based selection into an absolute rune span over
// the concatenated text of nodes. The second return value is false when the
// selection is collapsed, whitespace-only, or falls outside the container.
//
// Because offsets are measured against the flattened text rather than node
// boundaries, the result is unaffected by markup that splits the text into
// additional nodes (such as previously highlighted segments).
func Resolve(nodes []string, sel Selection) (Extract, bool) {
	if sel.StartNode < 0 || sel.StartNode >= len(nodes) ||
		sel.EndNode < 0 || sel.EndNode >= len(nodes) {
		return Extract{}, false
	}

	lens := make([]int, len(nodes))
	for i, n := range nodes {
		lens[i] = utf8.RuneCountInString(n)
	}
	if sel.StartOffset < 0 || sel.StartOffset > lens[sel.StartNode] ||
		sel.EndOffset < 0 || sel.EndOffset > lens[sel.EndNode] {
		return Extract{}, false
	}

	// Length of the "pre-range" from the container start to each boundary.
	start := sel.StartOffset
	for i := 0; i < sel.StartNode; i++ {
		start += lens[i]
	}
	end := sel.EndOffset
	for i := 0; i < sel.EndNode; i++ {
		end += lens[i]
	}

	// Selections made backwards arrive with swapped boundaries.
	if start > end {
		start, end = end, start
	}
	if start == end {
		return Extract{}, false
	}

	flat := []rune(strings.Join(nodes, ""))
	text := string(flat[start:end])
	if strings.TrimSpace(text) == "" {
		return Extract{}, false
	}

	return Extract{Text: text, Span: Span{Start: start, End: end}}, true
}
