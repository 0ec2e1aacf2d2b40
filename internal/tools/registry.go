// Package tools defines the Tool contract and the registry that backs tool
// discovery and execution.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool is one entry in the advertised catalog. Execute receives the raw
// arguments object from tools/call; execution failures are domain data and
// surface to the caller as flagged error content, never as protocol errors.
type Tool interface {
	Name() string
	Description() string
	Schema() json.RawMessage
	Execute(ctx context.Context, args json.RawMessage) (interface{}, error)
}

// AnnotatedTool optionally attaches MCP behavior hints to a tool.
type AnnotatedTool interface {
	Tool
	Annotations() map[string]bool
}

// Registry holds the fixed tool catalog. It is populated once at startup and
// read-only afterwards; registration order is preserved so tools/list output
// is stable.
type Registry struct {
	tools map[string]Tool
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

func (r *Registry) Register(tool Tool) error {
	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool already registered: %s", name)
	}

	r.tools[name] = tool
	r.order = append(r.order, name)
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Execute runs the named tool. An unrecognized name is a tool-level failure
// with a message naming the tool.
func (r *Registry) Execute(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("Unknown tool: %s", name)
	}
	return tool.Execute(ctx, args)
}

// List returns the catalog in registration order.
func (r *Registry) List() []Tool {
	result := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.tools[name])
	}
	return result
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
