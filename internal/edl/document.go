package edl

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Document is an open file in the executor's workspace. It is owned
// exclusively by the ExecutionState that created it and is mutated only
// through executor commands.
type Document struct {
	// Path is the absolute, resolved file path.
	Path string

	// Text is the current full content.
	Text string

	// Original is the text as first read (or "" for a newly created file),
	// retained for summary accounting.
	Original string

	// Modified is set once Text first diverges from Original.
	Modified bool

	// Errored marks this document "errored" for the remainder of its
	// current binding: subsequent commands targeting it become no-ops
	// that continue to record into the error channel. Cleared when a
	// file command re-targets the path, which starts a fresh binding.
	Errored bool

	// IsNew records whether this document was created via `newfile` rather
	// than opened from an existing file.
	IsNew bool
}

// NewDocument constructs a Document for an existing file's contents.
func NewDocument(path, text string) *Document {
	return &Document{Path: path, Text: text, Original: text}
}

// NewEmptyDocument constructs a Document for a `newfile` command.
func NewEmptyDocument(path string) *Document {
	return &Document{Path: path, Text: "", Original: "", IsNew: true}
}

// SetText replaces the document's text and updates the modified flag.
func (d *Document) SetText(text string) {
	d.Text = text
	if d.Text != d.Original {
		d.Modified = true
	}
}

// FullRange returns a range spanning the entire document.
func (d *Document) FullRange() Range {
	return Range{Start: Position{0, 0}, End: d.PositionAt(len(d.Text))}
}

// splitLines splits text into logical lines, each retaining its trailing
// newline (strings.SplitAfter semantics). A trailing zero-length element is
// present when text ends with "\n", representing the empty line after it.
func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	return strings.SplitAfter(text, "\n")
}

// lineContent strips a line's trailing newline, if present.
func lineContent(raw string) (content string, hasNewline bool) {
	if strings.HasSuffix(raw, "\n") {
		return raw[:len(raw)-1], true
	}
	return raw, false
}

// ByteOffset converts a Position into a byte offset into d.Text. Positions
// are clamped to the nearest valid location rather than panicking, since
// callers are expected to validate bounds with InBounds first.
func (d *Document) ByteOffset(p Position) int {
	lines := splitLines(d.Text)
	if p.Row < 0 {
		return 0
	}
	if p.Row >= len(lines) {
		return len(d.Text)
	}
	offset := 0
	for i := 0; i < p.Row; i++ {
		offset += len(lines[i])
	}
	content, _ := lineContent(lines[p.Row])
	runes := []rune(content)
	col := p.Column
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	offset += len(string(runes[:col]))
	return offset
}

// PositionAt converts a byte offset into d.Text into a Position.
func (d *Document) PositionAt(byteOffset int) Position {
	if byteOffset < 0 {
		byteOffset = 0
	}
	if byteOffset > len(d.Text) {
		byteOffset = len(d.Text)
	}
	lines := splitLines(d.Text)
	consumed := 0
	for row, raw := range lines {
		// Strict comparison: an offset sitting exactly past a line's trailing
		// newline belongs to the start of the next row, not to the clamped
		// end of this one.
		if byteOffset < consumed+len(raw) || row == len(lines)-1 {
			content, _ := lineContent(raw)
			rel := byteOffset - consumed
			if rel > len(content) {
				rel = len(content)
			}
			if rel < 0 {
				rel = 0
			}
			col := utf8.RuneCountInString(content[:rel])
			return Position{Row: row, Column: col}
		}
		consumed += len(raw)
	}
	return Position{}
}

// InBounds reports whether every position of r lies within the document.
func (d *Document) InBounds(r Range) bool {
	end := d.PositionAt(len(d.Text))
	return !r.Start.Before(Position{}) && !r.Start.After(end) && !r.End.Before(r.Start) && !r.End.After(end)
}

// Slice extracts the text covered by r.
func (d *Document) Slice(r Range) string {
	start := d.ByteOffset(r.Start)
	end := d.ByteOffset(r.End)
	if start > end {
		start, end = end, start
	}
	return d.Text[start:end]
}

// LineBounds returns, for the line containing p, the Position of its start,
// the Position just past its content, and the Position just past its
// trailing newline (the start of the next row). When the line has no
// trailing newline, endWithNewline equals endNoNewline.
func (d *Document) LineBounds(p Position) (start, endNoNewline, endWithNewline Position) {
	lines := splitLines(d.Text)
	row := p.Row
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}
	content, hasNewline := lineContent(lines[row])
	start = Position{Row: row, Column: 0}
	endNoNewline = Position{Row: row, Column: utf8.RuneCountInString(content)}
	if hasNewline {
		endWithNewline = Position{Row: row + 1, Column: 0}
	} else {
		endWithNewline = endNoNewline
	}
	return start, endNoNewline, endWithNewline
}

// RangeEdit describes a single splice against a document's underlying byte
// text: delete [SpliceStart, SpliceEnd) and insert Insert in its place.
type RangeEdit struct {
	SpliceStart int
	SpliceEnd   int
	Insert      string
}

// ApplyBatchEdit applies a set of non-overlapping splices to text in a
// single pass, right-to-left (highest offset first).
// It returns the resulting text and, for each edit (in input order), the
// byte offset of the cursor immediately after its inserted/replaced segment.
//
// The right-to-left application means edits at smaller offsets never need
// their recorded cursor positions recomputed: instead of tracking a cursor
// as an absolute offset (which left-side edits would invalidate), each
// cursor is tracked as a distance from the end of the text, which remaining
// (further left) edits never touch.
func ApplyBatchEdit(text string, edits []RangeEdit) (string, []int) {
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return edits[order[a]].SpliceStart < edits[order[b]].SpliceStart })

	tailLen := make([]int, len(edits))
	cur := text
	for i := len(order) - 1; i >= 0; i-- {
		idx := order[i]
		e := edits[idx]
		cursor := e.SpliceStart + len(e.Insert)
		cur = cur[:e.SpliceStart] + e.Insert + cur[e.SpliceEnd:]
		tailLen[idx] = len(cur) - cursor
	}

	final := len(cur)
	cursors := make([]int, len(edits))
	for i := range edits {
		cursors[i] = final - tailLen[i]
	}
	return cur, cursors
}
