package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/unusedpub/unusedpub/internal/history"
	"github.com/unusedpub/unusedpub/internal/workspace"
)

var historyLimitFlag int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history [workspace]",
	Short: "List recorded check runs for a workspace",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 10, "number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
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
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled for %s", root)
	}

	store, err := history.Open(cfg.HistoryPath(root))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(root, historyLimitFlag)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		log.Printf("No recorded runs for %s", root)
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s  %d finding(s)\n",
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"), run.ID, run.Total)
	}
	return nil
}
