package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/anthropics/og/internal/model"
)

// NewMCPServer exposes the dispatcher's registry as an MCP server. Every
// tool is registered from its Param schema, so the MCP surface and the ATP
// surface can never drift apart.
func NewMCPServer(d *Dispatcher) *server.MCPServer {
	srv := server.NewMCPServer(
		"og",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	for i := range d.Tools() {
		tool := d.Tools()[i]
		srv.AddTool(mcpTool(tool), mcpHandler(d, tool.Name))
	}

	return srv
}

// ServeMCP serves the dispatcher over stdio until the client disconnects.
func ServeMCP(d *Dispatcher) error {
	return server.ServeStdio(NewMCPServer(d))
}

func mcpTool(t Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		var popts []mcp.PropertyOption
		if p.Required {
			popts = append(popts, mcp.Required())
		}
		popts = append(popts, mcp.Description(p.Description))

		switch p.Type {
		case "integer", "number":
			opts = append(opts, mcp.WithNumber(p.Name, popts...))
		case "boolean":
			opts = append(opts, mcp.WithBoolean(p.Name, popts...))
		case "object":
			opts = append(opts, mcp.WithObject(p.Name, popts...))
		case "array":
			opts = append(opts, mcp.WithArray(p.Name, popts...))
		default:
			opts = append(opts, mcp.WithString(p.Name, popts...))
		}
	}
	return mcp.NewTool(t.Name, opts...)
}

func mcpHandler(d *Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := d.Call(name, req.GetArguments())
		if err != nil {
			e := model.AsError(err)
			return mcp.NewToolResultError(fmt.Sprintf("%s: %s", e.Kind, e.Message)), nil
		}
		text, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError("internal error"), nil
		}
		return mcp.NewToolResultText(string(text)), nil
	}
}
