// Package toolkit provides a flat tool dispatch framework for AI-facing tool servers.
// This file defines the data structures used for responses, errors,
// and schema generation within the toolkit framework.
package toolkit

import (
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Error codes produced by the toolkit itself. Tools may define their own codes
// and return them through NewError; the dispatcher passes those through unchanged.
const (
	CodeUnknownTool      = "unknown_tool"
	CodeInvalidArguments = "invalid_arguments"
	CodeHandlerExecution = "handler_execution_error"
)

// --- Result Envelope ---

// Result is the envelope returned for every dispatched call.
// IsError is always serialized so callers can distinguish success from failure
// by an explicit flag. On success Data holds the tool's typed response; on
// failure Error holds the code and message.
type Result struct {
	Tool    string        `json:"tool"`
	IsError bool          `json:"isError"`
	Data    interface{}   `json:"data,omitempty"`
	Error   *ToolKitError `json:"error,omitempty"`
}

func success(tool string, data interface{}) Result {
	return Result{Tool: tool, Data: data}
}

func failure(tool string, err ToolKitError) Result {
	return Result{Tool: tool, IsError: true, Error: &err}
}

// --- Error Handling ---

// ToolKitError provides a standardized structure for errors occurring within the toolkit framework.
// It encapsulates both a machine-readable error code for programmatic handling and a human-readable
// message for debugging and user feedback.
type ToolKitError struct {
	Code    string `json:"code"`    // A machine-readable error code (e.g., "invalid_arguments", "file_not_found")
	Message string `json:"message"` // A human-readable description of the error
}

// Error implements the standard error interface for ToolKitError.
// This enables ToolKitError to be used with standard Go error handling mechanisms
// while preserving the structured error information.
func (e ToolKitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new ToolKitError instance with the specified code and message.
// This is the preferred way to create and return errors from tool implementations
// to ensure consistent error handling across the toolkit.
//
// Common error codes:
//   - "invalid_arguments": When tool arguments don't match the expected schema
//   - "handler_execution_error": When the tool fails with an unclassified error
//   - "unknown_tool": When a requested tool doesn't exist
func NewError(code, message string) error {
	return ToolKitError{
		Code:    code,
		Message: message,
	}
}

// Errorf is NewError with a formatted message.
func Errorf(code, format string, args ...interface{}) error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// CodeOf reports the toolkit code carried by err, or "" if err is not a ToolKitError.
func CodeOf(err error) string {
	var tkErr ToolKitError
	if errors.As(err, &tkErr) {
		return tkErr.Code
	}
	return ""
}

// asToolKitError classifies an arbitrary handler error. ToolKitErrors, even wrapped
// ones, keep their code; anything else becomes a handler_execution_error.
func asToolKitError(err error) ToolKitError {
	var tkErr ToolKitError
	if errors.As(err, &tkErr) {
		return tkErr
	}
	return ToolKitError{Code: CodeHandlerExecution, Message: err.Error()}
}

// --- Schema Generation Helper ---

// GenerateSchema creates a JSON schema representation for the provided generic type T.
// It uses reflection through the github.com/invopop/jsonschema library to generate
// a complete schema that can be used for documentation, validation, and providing
// to LLMs for tool use.
//
// The schema generation respects jsonschema tags on struct fields, including:
// - required: Whether the field is required
// - description: Field descriptions for documentation
// - minimum / minLength: Numeric and string constraints enforced at dispatch
//
// Example usage:
//
//	type MyArgs struct {
//	    Name string `json:"name" jsonschema:"required,description=The user's name"`
//	    Age  int    `json:"age" jsonschema:"minimum=0,description=The user's age in years"`
//	}
//	schema := GenerateSchema[MyArgs]()
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true, // Allow additional properties in the generated schema
		DoNotReference:             true, // Keep schema self-contained, no $refs
		RequiredFromJSONSchemaTags: true, // Respect `jsonschema:"required"` tags
		Anonymous:                  true, // No $id derived from the Go package path
	}
	var v T
	return reflector.Reflect(&v)
}
