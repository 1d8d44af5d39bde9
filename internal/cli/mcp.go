package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unusedpub/unusedpub/internal/analysis"
	"github.com/unusedpub/unusedpub/internal/mcp"
	"github.com/unusedpub/unusedpub/internal/workspace"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp [workspace]",
	Short: "Serve the unused-code check over the Model Context Protocol",
	Long: `Starts an MCP server on stdio exposing the unusedpub_check tool, so
editors and agents can run the gate and consume findings as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	root, err := workspace.Resolve(arg)
	if err != nil {
		return err
	}

	check := func(ctx context.Context, ws string) (*analysis.Result, error) {
		root, err := workspace.Resolve(ws)
		if err != nil {
			return nil, err
		}
		cfg, err := loadConfig(root)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := workspace.Validate(root, cfg.Project.Marker); err != nil {
			return nil, err
		}
		return runPipeline(ctx, root, cfg, nil, true)
	}

	server := mcp.NewServer(root, Version, check)
	return server.Serve(cmd.Context())
}
