package dispatch

// entry pairs a registered Tool with the ToolKind it was registered under.
type entry struct {
	kind ToolKind
	tool Tool
}

// Registry is an explicit, caller-constructed table of tools. There is no
// process-wide default: the host builds one at startup and threads it
// through to whatever constructs the dispatcher.
type Registry struct {
	entries map[ToolName]entry
}

// NewRegistry constructs an empty registry. Callers own the returned value
// and thread it explicitly to whatever constructs the dispatcher; there is
// no package-level default instance.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ToolName]entry)}
}

// Register adds tool under name, tagged with kind. A later call with the
// same name replaces the prior registration.
func (r *Registry) Register(name ToolName, kind ToolKind, tool Tool) {
	r.entries[name] = entry{kind: kind, tool: tool}
}

// Get returns the tool registered under name, if any.
func (r *Registry) Get(name ToolName) (Tool, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.tool, true
}

// KindOf returns the ToolKind a registered tool was tagged with.
func (r *Registry) KindOf(name ToolName) (ToolKind, bool) {
	e, ok := r.entries[name]
	if !ok {
		return "", false
	}
	return e.kind, true
}

// Names returns every registered tool name.
func (r *Registry) Names() []ToolName {
	names := make([]ToolName, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	return names
}
