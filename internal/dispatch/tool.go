package dispatch

import (
	"context"
	"encoding/json"
)

// ToolResult is what a Tool hands back once a request IsDone: the rendered
// text to relay to the model and whether it represents a failure.
type ToolResult struct {
	Content string
	IsError bool
}

// Tool is the dispatcher-facing contract every tool implements. EDL's own
// engine is synchronous, so EDLTool's Request runs to completion immediately
// and GetResult/IsDone simply report that; the four-method shape still
// matters because it is how the host's dispatcher treats every tool
// uniformly, sync or async.
type Tool interface {
	// Request begins handling one invocation, identified by requestID
	// within threadID, with the given raw JSON arguments.
	Request(ctx context.Context, threadID ThreadID, requestID ToolRequestID, args json.RawMessage) error

	// Abort cancels a previously requested, not-yet-done invocation.
	Abort(requestID ToolRequestID) error

	// GetResult returns the result of requestID, if it is done.
	GetResult(requestID ToolRequestID) (ToolResult, bool)

	// IsDone reports whether requestID has finished (successfully or not).
	IsDone(requestID ToolRequestID) bool
}
