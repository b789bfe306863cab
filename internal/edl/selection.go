package edl

import "sort"

// Selection is an ordered, non-overlapping list of Ranges within a single
// document, the unit that every narrowing/widening command operates on.
type Selection struct {
	Path   string
	Ranges []Range
}

// NewSelection builds a Selection from ranges in any order, sorting them and
// coalescing touching or overlapping ones via normalize.
func NewSelection(path string, ranges []Range) Selection {
	return Selection{Path: path, Ranges: normalize(ranges)}
}

// IsEmpty reports whether the selection covers no ranges.
func (s Selection) IsEmpty() bool { return len(s.Ranges) == 0 }

// normalize sorts ranges by start position and merges any that touch or
// overlap, maintaining the selection algebra's non-overlapping invariant.
func normalize(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	out := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start.Before(last.End) || r.Start == last.End {
			*last = last.Union(r)
			continue
		}
		out = append(out, r)
	}
	return out
}

// FullSelection returns the selection covering an entire document, the
// selection every `file` command starts from.
func FullSelection(doc *Document) Selection {
	return Selection{Path: doc.Path, Ranges: []Range{doc.FullRange()}}
}

// FindAllLiteral resolves `select_all` with a literal heredoc body:
// every non-overlapping occurrence of needle within doc's current text,
// using graduated matching (match.go). Returns ErrNoMatch if nothing is
// found at any tier.
func FindAllLiteral(doc *Document, needle string) (Selection, MatchLevel, error) {
	spans, level := literalMatches(doc.Text, needle)
	if len(spans) == 0 {
		return Selection{}, 0, newEngineError(ErrNoMatch, doc.Path, "no occurrence of literal text found")
	}
	ranges := make([]Range, len(spans))
	for i, sp := range spans {
		ranges[i] = Range{Start: doc.PositionAt(sp.Start), End: doc.PositionAt(sp.End)}
	}
	return Selection{Path: doc.Path, Ranges: normalize(ranges)}, level, nil
}

// FindOneLiteral resolves `select_one`: exactly one occurrence of needle is
// required. Zero occurrences is ErrNoMatch; more than one is ErrAmbiguous.
// Ambiguity is judged on raw occurrence count, before touching matches are
// coalesced, so two adjacent occurrences still count as two.
func FindOneLiteral(doc *Document, needle string) (Selection, MatchLevel, error) {
	spans, level := literalMatches(doc.Text, needle)
	if len(spans) == 0 {
		return Selection{}, 0, newEngineError(ErrNoMatch, doc.Path, "no occurrence of literal text found")
	}
	if len(spans) > 1 {
		return Selection{}, 0, newEngineError(ErrAmbiguous, doc.Path,
			"ambiguous: %d matches", len(spans))
	}
	sp := spans[0]
	r := Range{Start: doc.PositionAt(sp.Start), End: doc.PositionAt(sp.End)}
	return Selection{Path: doc.Path, Ranges: []Range{r}}, level, nil
}

// IntersectWithPattern implements `narrow`: restrict each range of sel to the
// portion(s) of it matching pattern, dropping ranges with no match. Used for
// both the literal and regex narrow forms; the caller supplies the matcher.
func IntersectWithPattern(doc *Document, sel Selection, findInSlice func(slice string) []byteSpan) (Selection, error) {
	var out []Range
	for _, r := range sel.Ranges {
		sliceStart := doc.ByteOffset(r.Start)
		slice := doc.Slice(r)
		spans := findInSlice(slice)
		for _, sp := range spans {
			out = append(out, Range{
				Start: doc.PositionAt(sliceStart + sp.Start),
				End:   doc.PositionAt(sliceStart + sp.End),
			})
		}
	}
	if len(out) == 0 {
		return Selection{}, newEngineError(ErrNoMatch, doc.Path, "narrow matched nothing within current selection")
	}
	return Selection{Path: sel.Path, Ranges: normalize(out)}, nil
}

// WidenLines implements `widen_lines`: expand every range to cover the full
// line(s) it touches, then coalesce any ranges that now overlap or become
// adjacent.
func WidenLines(doc *Document, sel Selection) Selection {
	widened := make([]Range, len(sel.Ranges))
	for i, r := range sel.Ranges {
		lineStart, _, _ := doc.LineBounds(r.Start)
		endAnchor := r.End
		if !r.IsEmpty() && r.End.Column == 0 && r.End.Row > r.Start.Row {
			// End sits exactly at the start of a line (e.g. a range ending
			// right after a trailing newline): widen from the prior line so
			// we don't pull in one extra, untouched line.
			endAnchor = Position{Row: r.End.Row - 1, Column: 0}
		}
		_, endNoNewline, endWithNewline := doc.LineBounds(endAnchor)
		end := endWithNewline
		if endAnchor.Row == len(splitLines(doc.Text))-1 {
			end = endNoNewline
		}
		widened[i] = Range{Start: lineStart, End: end}
	}
	return Selection{Path: sel.Path, Ranges: normalize(widened)}
}

// Nth implements the `nth` operand modifier: reduce the selection to just
// its N-th range, 1-indexed per surface syntax.
func Nth(sel Selection, n int) (Selection, error) {
	if n < 1 || n > len(sel.Ranges) {
		return Selection{}, newEngineError(ErrIndexOutOfRange, sel.Path,
			"nth index %d out of range for %d matches", n, len(sel.Ranges))
	}
	return Selection{Path: sel.Path, Ranges: []Range{sel.Ranges[n-1]}}, nil
}
