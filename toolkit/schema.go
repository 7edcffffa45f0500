package toolkit

import (
	"encoding/json"
	"fmt"

	gschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/invopop/jsonschema"
)

// validator checks raw JSON arguments against a reflected input schema.
type validator struct {
	resolved *gschema.Resolved
}

// compileValidator converts a reflected schema into a resolved validation schema.
// The invopop schema is round-tripped through JSON since the two libraries do not
// share a type.
func compileValidator(schema *jsonschema.Schema) (*validator, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal input schema: %w", err)
	}
	var s gschema.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode input schema: %w", err)
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve input schema: %w", err)
	}
	return &validator{resolved: resolved}, nil
}

// validate decodes args into a generic JSON value and checks it against the schema.
// Empty or null arguments are treated as an empty object.
func (v *validator) validate(args json.RawMessage) error {
	if isEmptyArgs(args) {
		args = json.RawMessage(`{}`)
	}
	var instance interface{}
	if err := json.Unmarshal(args, &instance); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	return v.resolved.Validate(instance)
}

func isEmptyArgs(args json.RawMessage) bool {
	return len(args) == 0 || string(args) == "null"
}
