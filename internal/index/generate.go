package index

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/unusedpub/unusedpub/internal/config"
)

// Ensure makes sure a SCIP index exists at indexPath, invoking the configured
// external indexer against the workspace when it is missing. Regeneration of a
// stale-but-present index is the caller's responsibility.
func Ensure(ctx context.Context, cfg config.IndexConfig, workspace, indexPath string) error {
	if _, err := os.Stat(indexPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat SCIP index %s: %w", indexPath, err)
	}

	if !cfg.Generate {
		return fmt.Errorf("SCIP index not found at %s and index generation is disabled", indexPath)
	}

	log.Printf("SCIP index not found at %s. Generating with %s. This may take a while for large workspaces.",
		indexPath, cfg.Command[0])

	return Generate(ctx, cfg.Command, workspace, indexPath)
}

// Generate runs the external indexer command with {workspace} and {index}
// placeholders substituted. The command runs with the workspace as its
// working directory.
func Generate(ctx context.Context, command []string, workspace, indexPath string) error {
	if len(command) == 0 {
		return fmt.Errorf("no indexer command configured")
	}

	args := make([]string, 0, len(command))
	for _, arg := range command {
		arg = strings.ReplaceAll(arg, "{workspace}", workspace)
		arg = strings.ReplaceAll(arg, "{index}", indexPath)
		args = append(args, arg)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = workspace
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("indexer %q failed: %w\n%s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}

	if _, err := os.Stat(indexPath); err != nil {
		return fmt.Errorf("indexer completed but produced no index at %s: %w", indexPath, err)
	}

	return nil
}
