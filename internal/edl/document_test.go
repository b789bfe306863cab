package edl

import "testing"

func TestApplyBatchEditRightToLeftCursors(t *testing.T) {
	text := "aaa bbb ccc"
	edits := []RangeEdit{
		{SpliceStart: 0, SpliceEnd: 3, Insert: "XX"},  // "aaa" -> "XX"
		{SpliceStart: 4, SpliceEnd: 7, Insert: "Y"},   // "bbb" -> "Y"
		{SpliceStart: 8, SpliceEnd: 11, Insert: "ZZZZ"}, // "ccc" -> "ZZZZ"
	}

	result, cursors := ApplyBatchEdit(text, edits)
	want := "XX Y ZZZZ"
	if result != want {
		t.Fatalf("unexpected result:\nwant: %q\ngot:  %q", want, result)
	}

	// Cursor 0 should land right after "XX".
	if cursors[0] != len("XX") {
		t.Fatalf("expected cursor 0 at %d, got %d", len("XX"), cursors[0])
	}
	// Cursor 1 should land right after "XX Y".
	if cursors[1] != len("XX Y") {
		t.Fatalf("expected cursor 1 at %d, got %d", len("XX Y"), cursors[1])
	}
	// Cursor 2 should land right after "XX Y ZZZZ".
	if cursors[2] != len(result) {
		t.Fatalf("expected cursor 2 at %d, got %d", len(result), cursors[2])
	}
}

func TestApplyBatchEditDeleteOnly(t *testing.T) {
	text := "one two three"
	edits := []RangeEdit{
		{SpliceStart: 4, SpliceEnd: 7, Insert: ""}, // remove "two"
	}
	result, cursors := ApplyBatchEdit(text, edits)
	if result != "one  three" {
		t.Fatalf("unexpected result: %q", result)
	}
	if cursors[0] != 4 {
		t.Fatalf("expected cursor at deletion point 4, got %d", cursors[0])
	}
}

func TestPositionAtNewlineBoundary(t *testing.T) {
	doc := NewDocument("/p/x.ts", "x\ny\n")
	// Offset 2 sits just past the first line's newline: start of row 1.
	if p := doc.PositionAt(2); p != (Position{Row: 1, Column: 0}) {
		t.Fatalf("expected offset 2 to map to 2:1, got %s", p)
	}
	// Offset 4 is end of text, past the last newline: the phantom final row.
	if p := doc.PositionAt(4); p != (Position{Row: 2, Column: 0}) {
		t.Fatalf("expected offset 4 to map to 3:1, got %s", p)
	}
	if off := doc.ByteOffset(Position{Row: 2, Column: 0}); off != 4 {
		t.Fatalf("expected byte offset 4, got %d", off)
	}
}

func TestPositionAtAndByteOffsetUnicode(t *testing.T) {
	doc := NewDocument("/p/x.ts", "café bar\n")
	// "café" = 4 runes, 5 bytes (é is 2 bytes in UTF-8).
	p := doc.PositionAt(5) // byte offset right after "café"
	if p.Column != 4 {
		t.Fatalf("expected column 4 (rune count), got %d", p.Column)
	}
	offset := doc.ByteOffset(Position{Row: 0, Column: 4})
	if offset != 5 {
		t.Fatalf("expected byte offset 5, got %d", offset)
	}
}
