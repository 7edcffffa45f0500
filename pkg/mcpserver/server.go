package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/hamzaessahbaoui/workspace-files/toolkit"
)

// New builds an MCP server advertising every tool registered on tk. Every call
// is routed through Toolkit.Dispatch, so the MCP layer never sees a Go error
// from a tool.
// Tools registered on tk after New returns are not advertised.
func New(tk *toolkit.Toolkit, impl *mcp.Implementation, logger *zap.Logger) *mcp.Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	server := mcp.NewServer(impl, nil)
	for _, d := range tk.Tools() {
		server.AddTool(&mcp.Tool{
			Name:         d.Name,
			Description:  d.Description,
			InputSchema:  d.InputSchema,
			OutputSchema: d.OutputSchema,
		}, handler(tk, d.Name))
		logger.Debug("mcp tool added", zap.String("tool", d.Name))
	}
	return server
}

// Run serves the toolkit over stdio until the client disconnects or ctx is done.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func handler(tk *toolkit.Toolkit, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args json.RawMessage
		if req.Params != nil {
			args = req.Params.Arguments
		}
		return ToCallToolResult(tk.Dispatch(ctx, name, args)), nil
	}
}

// ToCallToolResult converts a dispatch envelope to an MCP tool result.
// The text content always carries the JSON envelope; structured content carries
// the success payload only, so it matches the advertised output schema.
func ToCallToolResult(res toolkit.Result) *mcp.CallToolResult {
	text, err := json.Marshal(res)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Error marshaling result: %v", err)}},
		}
	}
	out := &mcp.CallToolResult{
		IsError: res.IsError,
		Content: []mcp.Content{&mcp.TextContent{Text: string(text)}},
	}
	if !res.IsError {
		out.StructuredContent = res.Data
	}
	return out
}
