package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meetingcast/content-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "content-api",
	Short: "Meeting content API server",
	Long: `Meeting Content API - resolves and caches meeting audio content.

The server resolves weekly meeting audio (workbook, study articles, Bible
reading and congregation study playlists) through a cache-first pipeline with
static fallbacks, keeps the Kingdom song catalog warm, and exposes a browse
tree for in-car clients.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig initializes configuration lazily, skipping commands that do not
// need it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
