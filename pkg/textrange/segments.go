package textrange

import "sort"

// Segment is a contiguous slice of source text for rendering: either plain
// (SpanIndex < 0) or highlighted by the input span at SpanIndex.
type Segment struct {
	Text      string `json:"text"`
	SpanIndex int    `json:"span_index"`
}

// Highlighted reports whether the segment is covered by a span.
func (s Segment) Highlighted() bool {
	return s.SpanIndex >= 0
}

// BuildSegments splits source into an ordered sequence of plain and
// highlighted segments. Spans are stable-sorted by start offset (ties keep
// input order) and walked with a monotonically advancing cursor; gaps
// between spans become plain segments, as does any trailing remainder.
//
// For in-bounds, non-overlapping spans the concatenation of all segment
// texts reproduces source exactly. Overlap is rejected upstream at write
// time, but the walk still guards against it: a span fully covered by the
// cursor is dropped, a partially covered one is truncated to begin at the
// cursor, so the round-trip holds for whatever is rendered. Out-of-bounds
// spans are skipped.
func BuildSegments(source string, spans []Span) []Segment {
	runes := []rune(source)
	if len(runes) == 0 {
		return nil
	}

	type indexed struct {
		Span
		idx int
	}
	ordered := make([]indexed, 0, len(spans))
	for i, sp := range spans {
		if !sp.Valid(len(runes)) {
			continue
		}
		ordered = append(ordered, indexed{Span: sp, idx: i})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	segments := make([]Segment, 0, 2*len(ordered)+1)
	cursor := 0
	for _, sp := range ordered {
		start := sp.Start
		if start < cursor {
			if sp.End <= cursor {
				continue
			}
			start = cursor
		}
		if start > cursor {
			segments = append(segments, Segment{Text: string(runes[cursor:start]), SpanIndex: -1})
		}
		segments = append(segments, Segment{Text: string(runes[start:sp.End]), SpanIndex: sp.idx})
		cursor = sp.End
	}
	if cursor < len(runes) {
		segments = append(segments, Segment{Text: string(runes[cursor:]), SpanIndex: -1})
	}

	return segments
}
