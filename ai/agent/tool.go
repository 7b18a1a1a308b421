// Package agent exposes the CV retrieval operations as
// natural-language-callable tools for the realtime agent runtime.
package agent

import (
	"context"
)

// Tool is a callable capability of the conversational agent.
type Tool interface {
	// Name returns the tool name.
	Name() string

	// Description returns the tool description shown to the model.
	Description() string

	// Execute runs the tool with a JSON-encoded argument object and
	// returns text to relay into the conversation. Execute never
	// returns an error for backend failures; those are rendered as
	// "Error: ..." strings so a defect cannot crash the turn.
	Execute(ctx context.Context, input string) (string, error)
}

// ToolWithSchema extends Tool with a JSON Schema parameter definition
// for the agent framework's tool dispatch.
type ToolWithSchema interface {
	Tool

	// Parameters returns the JSON Schema for the tool's input.
	Parameters() map[string]interface{}
}

// NativeTool implements ToolWithSchema with direct function execution.
type NativeTool struct {
	execute     func(ctx context.Context, input string) (string, error)
	params      map[string]interface{}
	name        string
	description string
}

// NewNativeTool creates a new NativeTool.
func NewNativeTool(
	name string,
	description string,
	execute func(ctx context.Context, input string) (string, error),
	parameters map[string]interface{},
) ToolWithSchema {
	return &NativeTool{
		name:        name,
		description: description,
		execute:     execute,
		params:      parameters,
	}
}

func (t *NativeTool) Name() string {
	return t.name
}

func (t *NativeTool) Description() string {
	return t.description
}

func (t *NativeTool) Parameters() map[string]interface{} {
	return t.params
}

func (t *NativeTool) Execute(ctx context.Context, input string) (string, error) {
	return t.execute(ctx, input)
}

// objectSchema builds a JSON Schema object definition.
func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringParam(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func integerParam(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}
