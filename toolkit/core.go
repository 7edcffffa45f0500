// Package toolkit provides a flat tool dispatch framework for AI-facing tool servers.
// It registers named tools, describes them with JSON schemas reflected from Go types,
// validates incoming arguments against those schemas and converts every outcome,
// including failures, into a uniform Result envelope.
//
// Core concepts:
//   - Toolkit: The registry and dispatcher that owns every registered Tool
//   - Tool: A single named operation with an input shape, an output shape and a handler
//   - Result: The envelope returned for every call, flagged as success or error
//
// This file defines the core interfaces that all Tool implementations must satisfy.
package toolkit

import (
	"context"
	"encoding/json"
)

// Tool represents an individual operation that can be dispatched by name.
// Each Tool defines its own name, description, input and output schemas and
// execution logic. Implementations are usually built with NewTool, which derives
// the schemas from the handler's argument and response types.
type Tool interface {
	// GetName returns the unique name of the tool.
	// This name is used for lookup in dispatch requests and must be unique
	// within a toolkit instance.
	GetName() string

	// GetDescription provides a human-readable description of what the tool does.
	// This description is advertised to clients during discovery.
	GetDescription() string

	// GetInputSchema returns the JSON schema definition for the arguments
	// this tool expects. Arguments are validated against it before Handle runs.
	GetInputSchema() interface{}

	// GetOutputSchema returns the JSON schema definition of a successful response.
	GetOutputSchema() interface{}

	// Handle validates the raw JSON arguments, decodes them into the expected type,
	// performs the operation and returns the result or an error.
	// Implementations should return ToolKitError values for structured error handling.
	Handle(ctx context.Context, args json.RawMessage) (interface{}, error)
}

// Descriptor is the immutable, discoverable description of a registered tool.
type Descriptor struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	InputSchema  interface{} `json:"inputSchema"`
	OutputSchema interface{} `json:"outputSchema,omitempty"`
}

func describe(t Tool) Descriptor {
	return Descriptor{
		Name:         t.GetName(),
		Description:  t.GetDescription(),
		InputSchema:  t.GetInputSchema(),
		OutputSchema: t.GetOutputSchema(),
	}
}
