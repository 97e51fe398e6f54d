// simulate runs levels headless, driven by a scripted input file.
//
// Usage:
//
//	simulate levels                 - List embedded levels
//	simulate run [level]            - Run a level and print a summary
//
// Global flags:
//
//	--config <path>     - YAML overrides for the game tunables
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cfg "github.com/automoto/runngun/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "simulate",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run platformer levels without a window",
	Long: `simulate runs the platformer simulation headless. Input comes from a
YAML script instead of a keyboard, so runs are repeatable.

Examples:
  simulate levels
  simulate run --ticks 600
  simulate run jungle --script ./walk-right.yaml --seed 7
  simulate run ./my-level.tmx --realtime`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		log.SetDefault(logger)
		return cfg.LoadOverrides(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runCmd)
}
