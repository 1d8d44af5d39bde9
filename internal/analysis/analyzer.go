package analysis

import (
	"context"
	"log"

	"github.com/sourcegraph/scip/bindings/go/scip"
)

// Options configures a pipeline run.
type Options struct {
	Scan ScanOptions
	// Verbose enables per-pass candidate count logging.
	Verbose bool
}

// Run executes the full elimination pipeline over a decoded index:
// collection, reference elimination, heuristic filtering, textual
// corroboration, and location. The candidate set shrinks monotonically; the
// returned result holds the located survivors grouped and sorted for display.
func Run(ctx context.Context, idx *scip.Index, opts Options) (*Result, error) {
	candidates, traits := Collect(idx)
	if opts.Verbose {
		log.Printf("Found %d declarations and %d traits", len(candidates), len(traits))
	}

	EliminateReferenced(idx, candidates)
	if opts.Verbose {
		log.Printf("Pass 1 (references): %d candidates", len(candidates))
	}

	FilterHeuristics(candidates, traits)
	if opts.Verbose {
		log.Printf("Pass 2 (mains, tests, trait methods): %d candidates", len(candidates))
	}

	if err := Corroborate(ctx, candidates, opts.Scan); err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("Pass 3 (search): %d candidates", len(candidates))
	}

	groups := Locate(idx, candidates)

	total := 0
	for _, g := range groups {
		total += len(g.Findings)
	}

	return &Result{Groups: groups, Total: total}, nil
}
