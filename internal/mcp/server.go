package mcp

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
)

// Server exposes the unused-code check over the Model Context Protocol on
// stdio, so agents and editors can gate changes without shelling out.
type Server struct {
	workspace string
	mcp       *server.MCPServer
}

// NewServer creates an MCP server rooted at the given workspace.
func NewServer(workspace, version string, check CheckFunc) *Server {
	mcpServer := server.NewMCPServer(
		"unusedpub",
		version,
		server.WithToolCapabilities(true),
	)

	AddCheckTool(mcpServer, workspace, check)

	return &Server{
		workspace: workspace,
		mcp:       mcpServer,
	}
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
