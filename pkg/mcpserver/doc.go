// Package mcpserver exposes a toolkit over the Model Context Protocol.
//
// The transport is the only stateful collaborator: the toolkit behind it is
// stateless apart from the filesystem, and every call is answered with a
// result, successful or flagged with IsError.
//
// Usage:
//
//	server := mcpserver.New(tk, &mcp.Implementation{Name: "File MCP Server", Version: "1.0.0"}, logger)
//	if err := mcpserver.Run(ctx, server); err != nil {
//	    logger.Fatal("mcp server stopped", zap.Error(err))
//	}
package mcpserver
