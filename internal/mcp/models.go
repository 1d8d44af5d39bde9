package mcp

import (
	"context"

	"github.com/unusedpub/unusedpub/internal/analysis"
)

// CheckFunc runs the full elimination pipeline for a workspace. The CLI wires
// this to its own pipeline so the MCP surface stays free of config plumbing.
type CheckFunc func(ctx context.Context, workspace string) (*analysis.Result, error)

// CheckResponse is returned by the unusedpub_check tool.
type CheckResponse struct {
	Workspace string                  `json:"workspace"`
	Groups    []analysis.FindingGroup `json:"groups"`
	Total     int                     `json:"total"`
}
