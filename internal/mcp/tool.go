package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AddCheckTool registers the unusedpub_check tool with an MCP server.
// This function is composable - it can be combined with other tool registrations.
func AddCheckTool(s *server.MCPServer, defaultWorkspace string, check CheckFunc) {
	tool := mcp.NewTool(
		"unusedpub_check",
		mcp.WithDescription("Detect likely-unused public functions and methods in a code workspace using its SCIP cross-reference index. Returns findings grouped by file with definition line numbers."),
		mcp.WithString("workspace",
			mcp.Description("Workspace root to analyze. Defaults to the workspace the server was started in.")),
	)

	s.AddTool(tool, createCheckHandler(defaultWorkspace, check))
}

// createCheckHandler creates the handler function for the unusedpub_check tool.
func createCheckHandler(defaultWorkspace string, check CheckFunc) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		workspace := defaultWorkspace
		if argsMap, ok := request.Params.Arguments.(map[string]interface{}); ok {
			if ws, ok := argsMap["workspace"].(string); ok && ws != "" {
				workspace = ws
			}
		}

		result, err := check(ctx, workspace)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
		}

		response := &CheckResponse{
			Workspace: workspace,
			Groups:    result.Groups,
			Total:     result.Total,
		}

		jsonData, err := json.Marshal(response)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}

		// Return as text result (mcp-go convention)
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
