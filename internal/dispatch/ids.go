// Package dispatch models the surrounding tool framework's view of EDL: a
// tagged-variant ToolKind plus a four-method Tool interface, the shape the
// host's dispatcher already uses for every other tool it runs (shell, grep,
// glob). It is deliberately thin, and EDL's own engine (internal/edl) has
// no dependency on this package.
package dispatch

// ThreadID, ToolRequestID, and ToolName are distinct string-backed types so
// the compiler rejects passing one where another is expected, even though
// all three are strings at runtime.
type ThreadID string

type ToolRequestID string

type ToolName string
