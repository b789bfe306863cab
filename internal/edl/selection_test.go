package edl

import "testing"

func TestFindAllLiteralNonOverlapping(t *testing.T) {
	doc := NewDocument("/p/x.ts", "aa aa aa")
	sel, level, err := FindAllLiteral(doc, "aa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sel.Ranges) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(sel.Ranges), sel.Ranges)
	}
	if level != MatchExact {
		t.Fatalf("expected exact match level, got %s", level)
	}
}

func TestFindAllLiteralCoalescesTouchingMatches(t *testing.T) {
	doc := NewDocument("/p/x.ts", "xx yy")
	sel, _, err := FindAllLiteral(doc, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sel.Ranges) != 1 {
		t.Fatalf("expected adjacent matches to coalesce into 1 range, got %d: %+v", len(sel.Ranges), sel.Ranges)
	}
	if got := doc.Slice(sel.Ranges[0]); got != "xx" {
		t.Fatalf("expected coalesced range to cover %q, got %q", "xx", got)
	}
}

func TestFindOneLiteralAmbiguousOnTouchingOccurrences(t *testing.T) {
	doc := NewDocument("/p/x.ts", "xx")
	_, _, err := FindOneLiteral(doc, "x")
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != ErrAmbiguous {
		t.Fatalf("expected Ambiguous error for adjacent occurrences, got %v", err)
	}
}

func TestFindOneLiteralAmbiguous(t *testing.T) {
	doc := NewDocument("/p/x.ts", "x\nx\n")
	_, _, err := FindOneLiteral(doc, "x")
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != ErrAmbiguous {
		t.Fatalf("expected Ambiguous error, got %v", err)
	}
}

func TestFindOneLiteralNoMatch(t *testing.T) {
	doc := NewDocument("/p/x.ts", "hello\n")
	_, _, err := FindOneLiteral(doc, "goodbye")
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != ErrNoMatch {
		t.Fatalf("expected NoMatch error, got %v", err)
	}
}

func TestWidenLinesCoalescesAdjacentRanges(t *testing.T) {
	doc := NewDocument("/p/x.ts", "one\ntwo\nthree\n")
	r1 := Range{Start: Position{0, 0}, End: Position{0, 3}} // "one"
	r2 := Range{Start: Position{1, 0}, End: Position{1, 3}} // "two"
	sel := Selection{Path: doc.Path, Ranges: []Range{r1, r2}}

	widened := WidenLines(doc, sel)
	if len(widened.Ranges) != 1 {
		t.Fatalf("expected widened ranges on adjacent lines to coalesce into 1, got %d: %+v", len(widened.Ranges), widened.Ranges)
	}
}

func TestNthSelectsSingleRange(t *testing.T) {
	sel := Selection{Path: "/p/x.ts", Ranges: []Range{
		{Start: Position{0, 0}, End: Position{0, 1}},
		{Start: Position{1, 0}, End: Position{1, 1}},
		{Start: Position{2, 0}, End: Position{2, 1}},
	}}
	second, err := Nth(sel, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Ranges) != 1 || second.Ranges[0] != sel.Ranges[1] {
		t.Fatalf("expected nth 2 to select the middle range, got %+v", second.Ranges)
	}
	if _, err := Nth(sel, 0); err == nil {
		t.Fatalf("expected nth 0 to be out of range")
	}
}

func TestNthOutOfRange(t *testing.T) {
	sel := Selection{Path: "/p/x.ts", Ranges: []Range{{Start: Position{0, 0}, End: Position{0, 1}}}}
	_, err := Nth(sel, 5)
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != ErrIndexOutOfRange {
		t.Fatalf("expected IndexOutOfRange, got %v", err)
	}
}

func TestIntersectWithPatternNeverCrossesRangeBoundary(t *testing.T) {
	doc := NewDocument("/p/x.ts", "foo bar foo\nbar foo bar\n")
	// Restrict to just the first line.
	sel := Selection{Path: doc.Path, Ranges: []Range{{Start: Position{0, 0}, End: Position{0, 11}}}}
	narrowed, err := IntersectWithPattern(doc, sel, func(slice string) []byteSpan {
		spans, _ := literalMatches(slice, "foo")
		return spans
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range narrowed.Ranges {
		if r.Start.Row != 0 || r.End.Row != 0 {
			t.Fatalf("narrow leaked past the input range's line: %+v", r)
		}
	}
	if len(narrowed.Ranges) != 2 {
		t.Fatalf("expected 2 occurrences of 'foo' on line 0, got %d", len(narrowed.Ranges))
	}
}
