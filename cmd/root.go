package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/voicelab/coach-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coach-api",
	Short: "VoiceLab Coach API server",
	Long: `VoiceLab Coach API - A lesson and practice API for voice training

This API lets teachers author multi-step lessons around lyric texts,
annotate rune-offset ranges of those texts, assign lessons to students,
and review the practice recordings students share back.

Features:
  • Teacher-authored lessons with ordered steps
  • Offset-anchored lyric annotations with visibility contexts
  • Assignment lifecycle with notifications
  • Practice recording uploads via object storage`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration. Called lazily by commands that need it.
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
