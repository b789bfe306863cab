package edl

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TraceEntry is one per-command outcome in the execution log, including
// no-op entries for empty selections.
type TraceEntry struct {
	Line    int    `json:"line"`
	Command string `json:"command"`
	Outcome string `json:"outcome"` // "ok", "no-op", "error", "fatal"
	Detail  string `json:"detail,omitempty"`
}

// FileMutationSummary is the per-file accounting the executor produces for
// every document whose final text differs from its original.
type FileMutationSummary struct {
	Replacements int `json:"replacements"`
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
	LinesAdded   int `json:"lines_added"`
	LinesRemoved int `json:"lines_removed"`
}

// FileMutation pairs a changed file's final content with its summary.
type FileMutation struct {
	Path    string              `json:"path"`
	Content string              `json:"content"`
	Summary FileMutationSummary `json:"summary"`
}

// FileError is a non-fatal, file-level failure recorded in the result
// payload.
type FileError struct {
	Path    string    `json:"path"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// RunOutput is the successful result of RunScript.
type RunOutput struct {
	Mutations      []FileMutation `json:"mutations"`
	Trace          []TraceEntry   `json:"trace"`
	FileErrors     []FileError    `json:"file_errors"`
	FinalSelection []Range        `json:"final_selection,omitempty"`
	Committed      bool           `json:"committed"`
}

// RunError is returned when a fatal error aborts the script before (or
// during) commit.
type RunError struct {
	Err   *EngineError
	Trace []TraceEntry
}

func (e *RunError) Error() string { return e.Err.Error() }

const resultMarker = "EDL_RESULT_V1 "

// Render produces the full result envelope consumed by an LLM caller: a
// machine-readable JSON prefix behind a distinguishable marker, followed by
// a compact human-readable trace rendering.
func Render(out *RunOutput) string {
	var sb strings.Builder
	sb.WriteString(resultMarker)
	enc, _ := json.Marshal(out)
	sb.Write(enc)
	sb.WriteString("\n\n")
	sb.WriteString(RenderHuman(out))
	return sb.String()
}

// RenderHuman renders the compact, one-line-per-file human summary plus the
// command trace, e.g. "src/foo.ts: 3 replace, 1 insert (+5/-2)".
func RenderHuman(out *RunOutput) string {
	var sb strings.Builder

	if len(out.Mutations) == 0 {
		sb.WriteString("no files changed\n")
	}
	for _, m := range out.Mutations {
		sb.WriteString(summaryLine(m.Path, m.Summary))
		sb.WriteString("\n")
	}

	if len(out.FileErrors) > 0 {
		sb.WriteString("\nfile errors:\n")
		for _, fe := range out.FileErrors {
			fmt.Fprintf(&sb, "  %s: %s (%s)\n", fe.Path, fe.Message, fe.Kind)
		}
	}

	sb.WriteString("\ntrace:\n")
	for _, t := range out.Trace {
		fmt.Fprintf(&sb, "  [%d] %s: %s", t.Line, t.Command, t.Outcome)
		if t.Detail != "" {
			fmt.Fprintf(&sb, ": %s", t.Detail)
		}
		sb.WriteString("\n")
	}

	if out.Committed {
		sb.WriteString("\ncommit: succeeded\n")
	} else {
		sb.WriteString("\ncommit: skipped\n")
	}

	return sb.String()
}

func summaryLine(path string, s FileMutationSummary) string {
	var parts []string
	if s.Replacements > 0 {
		parts = append(parts, fmt.Sprintf("%d replace", s.Replacements))
	}
	if s.Insertions > 0 {
		parts = append(parts, fmt.Sprintf("%d insert", s.Insertions))
	}
	if s.Deletions > 0 {
		parts = append(parts, fmt.Sprintf("%d delete", s.Deletions))
	}
	if len(parts) == 0 {
		parts = append(parts, "no changes")
	}
	return fmt.Sprintf("%s: %s (+%d/-%d)", path, strings.Join(parts, ", "), s.LinesAdded, s.LinesRemoved)
}
