package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/unusedpub/unusedpub/internal/analysis"
	"github.com/unusedpub/unusedpub/internal/config"
	"github.com/unusedpub/unusedpub/internal/history"
	"github.com/unusedpub/unusedpub/internal/index"
	"github.com/unusedpub/unusedpub/internal/report"
	"github.com/unusedpub/unusedpub/internal/watcher"
	"github.com/unusedpub/unusedpub/internal/workspace"
)

var (
	scipFlag       string
	extensionsFlag string
	quietFlag      bool
	jsonFlag       bool
	watchFlag      bool
	failOnNewFlag  bool
	noHistoryFlag  bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [workspace]",
	Short: "Report possibly unused public functions and fail if any remain",
	Long: `Check runs the elimination pipeline over the workspace's SCIP index:

  1. Collect public method/function declarations
  2. Drop anything with a recorded non-definition occurrence
  3. Drop entry points, test code and trait methods
  4. Drop names appearing on more than one line of the source tree
  5. Locate and report the survivors, grouped by file

A missing index is generated with the configured external indexer.

Examples:
  # Check the current directory
  unusedpub check

  # Check another workspace with an explicit index
  unusedpub check ../service --scip /tmp/index.scip

  # Re-check continuously while editing
  unusedpub check --watch

  # Only fail on findings that were not in the last recorded run
  unusedpub check --fail-on-new
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&scipFlag, "scip", "", "path to the SCIP index (default <workspace>/index.scip)")
	checkCmd.Flags().StringVar(&extensionsFlag, "extensions", "", "comma-separated file extensions for the textual scan (default rs,html)")
	checkCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress bars and non-error output")
	checkCmd.Flags().BoolVar(&jsonFlag, "json", false, "emit findings as JSON instead of source excerpts")
	checkCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "watch for file changes and re-run the check")
	checkCmd.Flags().BoolVar(&failOnNewFlag, "fail-on-new", false, "fail only on findings absent from the last recorded run")
	checkCmd.Flags().BoolVar(&noHistoryFlag, "no-history", false, "do not record this run in the history database")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	root, err := workspace.Resolve(arg)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cfg)

	// Configuration errors abort before any analysis begins.
	if err := workspace.Validate(root, cfg.Project.Marker); err != nil {
		return err
	}

	if watchFlag {
		return runWatchMode(ctx, root, cfg)
	}

	result, err := runPipeline(ctx, root, cfg, nil, quietFlag)
	if err != nil {
		return err
	}

	if err := emitReport(root, result); err != nil {
		return err
	}
	if !quietFlag {
		log.Printf("Found %d possibly unused functions", result.Total)
	}

	return applyGatePolicy(root, cfg, result)
}

// applyFlagOverrides lets command-line flags win over file/env configuration.
func applyFlagOverrides(cfg *config.Config) {
	if scipFlag != "" {
		cfg.Index.Path = scipFlag
	}
	if extensionsFlag != "" {
		cfg.Scan.Extensions = strings.Split(extensionsFlag, ",")
	}
}

// runPipeline loads (or generates) the index, discovers scan files and runs
// the five analysis stages. cache may be nil outside watch mode.
func runPipeline(ctx context.Context, root string, cfg *config.Config, cache *workspace.ContentCache, quiet bool) (*analysis.Result, error) {
	indexPath := cfg.IndexPath(root)
	if err := index.Ensure(ctx, cfg.Index, root, indexPath); err != nil {
		return nil, err
	}

	if !quiet {
		log.Printf("Running on %s with SCIP %s", root, indexPath)
	}

	idx, err := index.Load(indexPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("Opened SCIP index with %d documents", len(idx.GetDocuments()))
	}

	discovery, err := workspace.NewDiscovery(root, cfg.Scan.Extensions, cfg.Scan.CacheMarker, cfg.Scan.Ignore)
	if err != nil {
		return nil, err
	}
	files, err := discovery.Files()
	if err != nil {
		return nil, err
	}

	progress := NewScanProgress(quiet, len(files))
	defer progress.Finish()

	return analysis.Run(ctx, idx, analysis.Options{
		Verbose: verbose,
		Scan: analysis.ScanOptions{
			Files: files,
			ReadLines: func(relPath string) ([]string, error) {
				return cache.Lines(discovery.Abs(relPath))
			},
			Workers:       cfg.Scan.Workers,
			OnFileScanned: progress.FileScanned,
		},
	})
}

// emitReport writes either the human console report or JSON.
func emitReport(root string, result *analysis.Result) error {
	if jsonFlag {
		return report.WriteJSON(os.Stdout, result)
	}
	reporter := &report.ConsoleReporter{Workspace: root}
	return reporter.Report(result)
}

// applyGatePolicy records the run and decides the exit outcome. With
// --fail-on-new only findings absent from the previous recorded run fail the
// gate; otherwise any finding does.
func applyGatePolicy(root string, cfg *config.Config, result *analysis.Result) error {
	var previous []analysis.Finding
	havePrevious := false

	if cfg.History.Enabled && !noHistoryFlag {
		store, err := history.Open(cfg.HistoryPath(root))
		if err != nil {
			return err
		}
		defer store.Close()

		if failOnNewFlag {
			prev, err := store.LatestRun(root)
			if err != nil {
				return err
			}
			if prev != nil {
				previous, err = store.FindingsForRun(prev.ID)
				if err != nil {
					return err
				}
				havePrevious = true
			}
		}

		if _, err := store.RecordRun(root, result); err != nil {
			return err
		}
		if err := store.Prune(root, cfg.History.Keep); err != nil {
			return err
		}
	}

	if failOnNewFlag && havePrevious {
		fresh := history.NewSince(result, previous)
		if len(fresh) == 0 {
			if result.Total > 0 && !quietFlag {
				log.Printf("All %d findings were already present in the last recorded run", result.Total)
			}
			return nil
		}
		return &analysis.FindingsError{Count: len(fresh)}
	}

	if result.Total > 0 {
		return &analysis.FindingsError{Count: result.Total}
	}
	return nil
}

// runWatchMode re-runs the check whenever workspace files settle after a
// change. The index is regenerated per run when generation is enabled. Watch
// mode never fails the process on findings; it runs until interrupted.
func runWatchMode(ctx context.Context, root string, cfg *config.Config) error {
	cache, err := workspace.NewContentCache(4096)
	if err != nil {
		return err
	}
	defer cache.Close()

	discovery, err := workspace.NewDiscovery(root, cfg.Scan.Extensions, cfg.Scan.CacheMarker, cfg.Scan.Ignore)
	if err != nil {
		return err
	}

	indexPath := cfg.IndexPath(root)
	relIndex, relErr := filepath.Rel(root, indexPath)
	historyRel, _ := filepath.Rel(root, cfg.HistoryPath(root))

	shouldIgnore := func(relPath string) bool {
		if relErr == nil && relPath == filepath.ToSlash(relIndex) {
			return true
		}
		if historyRel != "" && strings.HasPrefix(relPath, filepath.ToSlash(historyRel)) {
			return true
		}
		// Build output churns constantly; without the marker check every cargo
		// write (and the index regeneration itself) would re-trigger the run.
		return discovery.ShouldIgnore(relPath) || discovery.InCacheDir(relPath)
	}

	runOnce := func(ctx context.Context, regenerate bool) {
		if regenerate && cfg.Index.Generate {
			if err := index.Generate(ctx, cfg.Index.Command, root, indexPath); err != nil {
				log.Printf("Error regenerating index: %v", err)
				return
			}
		}
		result, err := runPipeline(ctx, root, cfg, cache, quietFlag)
		if err != nil {
			log.Printf("Error during check: %v", err)
			return
		}
		if err := emitReport(root, result); err != nil {
			log.Printf("Error writing report: %v", err)
			return
		}
		log.Printf("Found %d possibly unused functions", result.Total)
	}

	runOnce(ctx, false)

	w, err := watcher.New(root, shouldIgnore, func(ctx context.Context, changed []string) {
		log.Printf("Re-checking after changes in %d file(s)...", len(changed))
		runOnce(ctx, true)
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	w.Start(ctx)
	<-ctx.Done()
	w.Stop()
	return nil
}
