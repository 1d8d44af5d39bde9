package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/unusedpub/unusedpub/internal/analysis"
	"github.com/unusedpub/unusedpub/internal/workspace"
)

// ConsoleReporter prints finding groups as a file path header followed by one
// line per finding: the 1-based line number and the literal source text.
type ConsoleReporter struct {
	// Workspace is the root the index's relative paths are resolved against.
	Workspace string
	// Out receives the report; defaults to os.Stdout.
	Out io.Writer
	// ReadLines loads a source file's lines; defaults to workspace.ReadLines.
	ReadLines func(path string) ([]string, error)
}

// Report writes every finding group. A group whose file no longer exists is
// logged as a stale-index warning and skipped without failing the run.
func (r *ConsoleReporter) Report(result *analysis.Result) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	readLines := r.ReadLines
	if readLines == nil {
		readLines = workspace.ReadLines
	}

	for _, group := range result.Groups {
		fullPath := filepath.Join(r.Workspace, filepath.FromSlash(group.Path))
		if _, err := os.Stat(fullPath); err != nil {
			log.Printf("%s not found, is the SCIP index up-to-date?", group.Path)
			continue
		}

		lines, err := readLines(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", group.Path, err)
		}

		fmt.Fprintln(out, group.Path)
		for _, finding := range group.Findings {
			if int(finding.Line) >= len(lines) {
				log.Printf("%s:%d is beyond the end of the file, is the SCIP index up-to-date?",
					group.Path, finding.Line+1)
				continue
			}
			fmt.Fprintf(out, "%-4d %s\n", finding.Line+1, lines[finding.Line])
		}
		fmt.Fprintln(out)
	}

	return nil
}
