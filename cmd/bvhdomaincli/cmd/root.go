// Package cmd implements the bvhdomaincli command tree, adapted from the
// perf-analysis tool's cobra rootCmd/subcommand layout: persistent flags
// parsed in init(), a logger built in PersistentPreRunE, one subcommand
// doing the real work.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelsim/bvhdomain/internal/bvhlog"
)

var (
	verbose    bool
	configPath string

	logger bvhlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bvhdomaincli",
	Short: "Drive a BVH domain tracker over a recorded AABB frame sequence",
	Long: `bvhdomaincli replays a CSV-recorded sequence of per-object AABBs through
the bvhdomain tracker: build, refit-or-rebuild, extract K coherent
subdomains, and match them to the previous frame's ordering.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := bvhlog.LevelInfo
		if verbose {
			level = bvhlog.LevelDebug
		}
		logger = bvhlog.NewStderr(level)
		return nil
	},
}

// Execute runs the command tree, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a bvhdomain config file (yaml/json/toml)")
}

// GetLogger returns the logger constructed by PersistentPreRunE.
func GetLogger() bvhlog.Logger {
	return logger
}
