package agent

import "context"

// Tool represents an agent tool that can be called by an LLM orchestrator.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters. Failures are captured in
	// the returned payload; an error return means the input could not even
	// be decoded.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// ToolDefinition is the function-calling description of one tool.
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// Definitions returns the function-calling definitions of all registered tools.
func (r *ToolRegistry) Definitions() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return defs
}
