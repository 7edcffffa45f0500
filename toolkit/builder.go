package toolkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// HandlerFunc is the typed signature of a tool implementation. T is the
// argument type the input schema is reflected from, R the response type
// the output schema is reflected from.
type HandlerFunc[T any, R any] func(ctx context.Context, args T) (R, error)

type tool[T any, R any] struct {
	name         string
	description  string
	inputSchema  *jsonschema.Schema
	outputSchema *jsonschema.Schema
	validator    *validator
	handler      HandlerFunc[T, R]
}

// NewTool builds a Tool from a typed handler. The input and output schemas are
// reflected from T and R once, here, and the input schema is compiled into the
// validator every call goes through before the handler runs.
//
// NewTool panics if the reflected input schema cannot be compiled; that is a
// programming error in the argument type and surfaces at startup.
//
// Example:
//
//	readTool := toolkit.NewTool("read_file", "Read content of a file", ws.ReadFile)
func NewTool[T any, R any](name, description string, handler func(context.Context, T) (R, error)) Tool {
	input := GenerateSchema[T]()
	v, err := compileValidator(input)
	if err != nil {
		panic(fmt.Sprintf("toolkit: tool %q: %v", name, err))
	}
	return &tool[T, R]{
		name:         name,
		description:  description,
		inputSchema:  input,
		outputSchema: GenerateSchema[R](),
		validator:    v,
		handler:      handler,
	}
}

func (t *tool[T, R]) GetName() string              { return t.name }
func (t *tool[T, R]) GetDescription() string       { return t.description }
func (t *tool[T, R]) GetInputSchema() interface{}  { return t.inputSchema }
func (t *tool[T, R]) GetOutputSchema() interface{} { return t.outputSchema }

// Handle validates args against the input schema, decodes them into T and runs
// the handler. Validation and decoding failures are reported as invalid_arguments;
// the handler is not called in that case.
func (t *tool[T, R]) Handle(ctx context.Context, args json.RawMessage) (interface{}, error) {
	if err := t.validator.validate(args); err != nil {
		return nil, Errorf(CodeInvalidArguments, "invalid arguments for %s: %v", t.name, err)
	}

	var in T
	if !isEmptyArgs(args) {
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, Errorf(CodeInvalidArguments, "invalid arguments for %s: %v", t.name, err)
		}
	}

	out, err := t.handler(ctx, in)
	if err != nil {
		return nil, err
	}
	return out, nil
}
