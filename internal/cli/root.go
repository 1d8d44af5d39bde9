package cli

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/unusedpub/unusedpub/internal/analysis"
	"github.com/unusedpub/unusedpub/internal/config"
)

var (
	verbose bool
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unusedpub",
	Short: "Detect unused public functions in a workspace",
	Long: `unusedpub detects public functions and methods that are likely unused,
using a SCIP cross-reference index plus a textual scan of the source tree.

It is meant as a CI gate: findings are reported grouped by file, and the
process fails when any remain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
//
// Exit status: 0 when the gate passes, 1 when findings remain, 2 when the
// tool itself fails, so CI can tell "found problems" from "tool broke".
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var findings *analysis.FindingsError
		if errors.As(err, &findings) {
			log.Printf("%v", err)
			os.Exit(1)
		}
		log.Printf("Error: %v", err)
		os.Exit(2)
	}
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <workspace>/.unusedpub/config.yml)")
}

// loadConfig loads the workspace configuration, honoring --config.
func loadConfig(root string) (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(root, cfgFile)
	}
	return config.LoadFromDir(root)
}
