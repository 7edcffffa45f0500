// Package toolkit provides a flat tool dispatch framework for AI-facing tool servers.
// It enables registering, describing and dispatching named tools while
// handling schema generation, argument validation and error normalization automatically.
package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDuplicateTool is returned by Register when a tool name is already taken.
var ErrDuplicateTool = errors.New("tool already registered")

// unknownToolLabel replaces unregistered names in metric labels to keep their cardinality bounded.
const unknownToolLabel = "_unknown"

// --- Toolkit Struct and Methods ---

// Toolkit is the registry and dispatcher for a set of tools.
// Tools are registered once at startup and never change afterwards; dispatch
// looks a tool up by name, runs it and normalizes the outcome into a Result.
type Toolkit struct {
	name    string
	mu      sync.RWMutex
	tools   map[string]Tool
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithLogger sets the logger used for dispatch events. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Toolkit) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMetrics enables per-call Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(t *Toolkit) {
		t.metrics = m
	}
}

// New creates an empty Toolkit with the provided name.
//
// Example:
//
//	tk := toolkit.New("workspace_files", toolkit.WithLogger(logger))
//	tk.MustRegister(toolkit.NewTool("read_file", "Read content of a file", ws.ReadFile))
func New(name string, opts ...Option) *Toolkit {
	t := &Toolkit{
		name:   name,
		tools:  make(map[string]Tool),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetToolkitName returns the configured name of the toolkit instance.
func (t *Toolkit) GetToolkitName() string {
	return t.name
}

// Register adds a tool. It fails if the tool is nil, has an empty name, or if
// the name is already registered.
func (t *Toolkit) Register(tool Tool) error {
	if tool == nil {
		return errors.New("toolkit: nil tool")
	}
	name := strings.TrimSpace(tool.GetName())
	if name == "" {
		return errors.New("toolkit: tool name is empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.tools[name]; exists {
		return fmt.Errorf("toolkit: %q: %w", name, ErrDuplicateTool)
	}
	t.tools[name] = tool
	t.logger.Debug("tool registered", zap.String("tool", name))
	return nil
}

// MustRegister is like Register but panics on error. It is meant for startup
// wiring, where a duplicate name is a fatal configuration mistake.
func (t *Toolkit) MustRegister(tools ...Tool) {
	for _, tool := range tools {
		if err := t.Register(tool); err != nil {
			panic(err)
		}
	}
}

// Tools returns the descriptors of all registered tools, sorted by name.
func (t *Toolkit) Tools() []Descriptor {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Descriptor, 0, len(t.tools))
	for _, tool := range t.tools {
		out = append(out, describe(tool))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Describe renders a human-readable, XML-like catalog of the registered tools.
// It is meant to be placed in an LLM system prompt next to the tool definitions.
func (t *Toolkit) Describe() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("In this environment, you have access to the following <toolkit name=\"%s\">:\n", t.name))
	for _, d := range t.Tools() {
		schemaStr := "schema_error"
		if schemaBytes, err := json.Marshal(d.InputSchema); err == nil {
			schemaStr = string(schemaBytes)
		} else {
			t.logger.Warn("marshal input schema", zap.String("tool", d.Name), zap.Error(err))
		}
		sb.WriteString(fmt.Sprintf("<tool name=\"%s\" description=\"%s\"><input_schema>%s</input_schema></tool>\n", d.Name, d.Description, schemaStr))
	}
	sb.WriteString("</toolkit>")
	return sb.String()
}

func (t *Toolkit) lookup(name string) (Tool, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tool, ok := t.tools[name]
	return tool, ok
}

// --- Processing Methods ---

// Dispatch runs the named tool with raw JSON arguments and always returns a Result.
//
// The method handles failure scenarios without ever panicking or returning a Go error:
//   - An unregistered name yields an unknown_tool error naming the tool
//   - Arguments that fail schema validation yield invalid_arguments
//   - ToolKitErrors returned by the handler are passed through with their code
//   - Other handler errors and handler panics yield handler_execution_error
func (t *Toolkit) Dispatch(ctx context.Context, name string, args json.RawMessage) (res Result) {
	start := time.Now()
	callID := uuid.NewString()
	log := t.logger.With(zap.String("tool", name), zap.String("call_id", callID))

	tool, ok := t.lookup(name)
	if !ok {
		res = failure(name, ToolKitError{Code: CodeUnknownTool, Message: fmt.Sprintf("Unknown tool: %s", name)})
		log.Warn("unknown tool requested")
		t.metrics.observe(unknownToolLabel, CodeUnknownTool, time.Since(start))
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("tool panicked", zap.Any("panic", r), zap.Stack("stack"))
			res = failure(name, ToolKitError{Code: CodeHandlerExecution, Message: fmt.Sprintf("tool %s panicked: %v", name, r)})
		}
		t.finish(log, res, time.Since(start))
	}()

	out, err := tool.Handle(ctx, args)
	if err != nil {
		return failure(name, asToolKitError(err))
	}
	return success(name, out)
}

func (t *Toolkit) finish(log *zap.Logger, res Result, elapsed time.Duration) {
	outcome := OutcomeOK
	if res.IsError {
		outcome = res.Error.Code
		log.Warn("tool call failed",
			zap.String("code", res.Error.Code),
			zap.String("error", res.Error.Message),
			zap.Duration("duration", elapsed))
	} else {
		log.Debug("tool call completed", zap.Duration("duration", elapsed))
	}
	t.metrics.observe(res.Tool, outcome, elapsed)
}
