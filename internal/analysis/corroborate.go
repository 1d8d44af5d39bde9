package analysis

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/sourcegraph/conc/pool"
)

// ScanOptions configures the textual corroboration pass.
type ScanOptions struct {
	// Files are the workspace-relative paths to scan.
	Files []string
	// ReadLines loads a file's lines given its workspace-relative path.
	ReadLines func(path string) ([]string, error)
	// Workers bounds the per-file scan concurrency; 0 means GOMAXPROCS.
	Workers int
	// OnFileScanned, if set, is called once per scanned file.
	OnFileScanned func(path string)
}

// Corroborate scans the workspace source text and counts, per candidate, the
// lines containing the candidate's display name as a literal substring. A line
// counts once per candidate no matter how often the name appears on it.
// Candidates whose name shows up on more than one line are removed: a second
// occurrence is treated as a real use the index missed, for example inside
// markup the indexer does not cover.
//
// Files are scanned concurrently; per-file counts are merged before the
// retain step, so the result does not depend on scan order. A file read
// failure aborts the pass.
func Corroborate(ctx context.Context, candidates CandidateSet, opts ScanOptions) error {
	if len(candidates) == 0 || len(opts.Files) == 0 {
		retainCorroborated(candidates)
		return nil
	}

	names := make(map[string]string, len(candidates))
	for symbol, c := range candidates {
		names[symbol] = c.DisplayName
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := pool.NewWithResults[map[string]int]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(workers)

	for _, file := range opts.Files {
		p.Go(func(ctx context.Context) (map[string]int, error) {
			lines, err := opts.ReadLines(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", file, err)
			}

			counts := make(map[string]int)
			for _, line := range lines {
				for symbol, name := range names {
					if strings.Contains(line, name) {
						counts[symbol]++
					}
				}
			}

			if opts.OnFileScanned != nil {
				opts.OnFileScanned(file)
			}
			return counts, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return err
	}

	for _, counts := range results {
		for symbol, n := range counts {
			if c, ok := candidates[symbol]; ok {
				c.Uses += n
			}
		}
	}

	retainCorroborated(candidates)
	return nil
}

// retainCorroborated keeps only candidates seen on at most one line: that
// single line is assumed to be the definition itself.
func retainCorroborated(candidates CandidateSet) {
	for symbol, c := range candidates {
		if c.Uses > 1 {
			delete(candidates, symbol)
		}
	}
}
