package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meetingcast/content-api/internal/database"
	"github.com/meetingcast/content-api/internal/models"
	"github.com/meetingcast/content-api/pkg/config"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync cycle and exit",
	Long: `Run a single sync cycle against the configured database.

A cycle sweeps expired cache entries, prefetches the next four weeks of
meeting content, and refreshes the song catalog. Use this for cron-driven
deployments where the built-in daily ticker is disabled.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.CachedContent{},
		&models.CachedSong{},
		&models.PlaybackPosition{},
	); err != nil {
		return err
	}

	deps := buildDependencies(db, cfg)

	result := deps.Syncer.Run(context.Background())

	fmt.Printf("Sync complete in %s\n", time.Duration(result.Duration)*time.Millisecond)
	fmt.Printf("  Swept:  %d expired entries\n", result.Swept)
	fmt.Printf("  Warmed: %d units\n", result.Warmed)
	fmt.Printf("  Failed: %d units\n", result.Failed)
	if result.Failed > 0 {
		return fmt.Errorf("%d sync units failed", result.Failed)
	}
	return nil
}
