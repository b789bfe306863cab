package dispatch

// ToolKind categorizes a tool for permission/routing purposes.
type ToolKind string

const (
	KindEdit   ToolKind = "edit"
	KindRead   ToolKind = "read"
	KindSearch ToolKind = "search"
)
