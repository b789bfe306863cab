package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kodeagent/edl/internal/edl"
)

// ToolNameEDL is the name this tool is registered under.
const ToolNameEDL ToolName = "edl_run_script"

// edlRequestArgs is the JSON shape a caller passes to Request.
type edlRequestArgs struct {
	Script     string `json:"script"`
	WorkingDir string `json:"working_dir"`
}

// EDLTool adapts edl.RunScript to the dispatcher's Tool interface.
// EDL's engine is synchronous, so Request runs the script to completion
// before returning; GetResult/IsDone simply report the already-computed
// outcome. Registers are scoped per ThreadID: one thread stands in for one
// agent session, and registers do not survive past it.
type EDLTool struct {
	fileIO edl.FileIO

	mu        sync.Mutex
	registers map[ThreadID]*edl.RegisterStore
	results   map[ToolRequestID]ToolResult
}

// NewEDLTool constructs an EDLTool backed by fileIO (typically
// edl.NewLocalFileIO() outside of tests).
func NewEDLTool(fileIO edl.FileIO) *EDLTool {
	return &EDLTool{
		fileIO:    fileIO,
		registers: make(map[ThreadID]*edl.RegisterStore),
		results:   make(map[ToolRequestID]ToolResult),
	}
}

func (t *EDLTool) registerStoreFor(thread ThreadID) *edl.RegisterStore {
	t.mu.Lock()
	defer t.mu.Unlock()
	rs, ok := t.registers[thread]
	if !ok {
		rs = edl.NewRegisterStore()
		t.registers[thread] = rs
	}
	return rs
}

// Request parses args and runs the script synchronously.
func (t *EDLTool) Request(ctx context.Context, thread ThreadID, requestID ToolRequestID, args json.RawMessage) error {
	var parsed edlRequestArgs
	if err := json.Unmarshal(args, &parsed); err != nil {
		return fmt.Errorf("invalid edl_run_script arguments: %w", err)
	}

	registers := t.registerStoreFor(thread)
	out, runErr := edl.RunScript(ctx, parsed.Script, t.fileIO, registers, edl.RunOptions{WorkingDir: parsed.WorkingDir})

	t.mu.Lock()
	defer t.mu.Unlock()
	if runErr != nil {
		t.results[requestID] = ToolResult{Content: runErr.Error(), IsError: true}
		return nil
	}
	// A run that committed is a success even when individual files errored;
	// the rendered envelope carries the per-file errors for the model to act
	// on.
	t.results[requestID] = ToolResult{Content: edl.Render(out)}
	return nil
}

// Abort is a no-op: EDL runs synchronously to completion within Request, so
// there is never an in-flight invocation to cancel by the time a caller
// could call Abort.
func (t *EDLTool) Abort(ToolRequestID) error { return nil }

func (t *EDLTool) GetResult(requestID ToolRequestID) (ToolResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	res, ok := t.results[requestID]
	return res, ok
}

func (t *EDLTool) IsDone(requestID ToolRequestID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.results[requestID]
	return ok
}
