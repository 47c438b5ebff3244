package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetingcast/content-api/internal/database"
	"github.com/meetingcast/content-api/internal/models"
	"github.com/meetingcast/content-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Create or update the SQLite schema for cached content, cached songs,
and playback positions. Safe to run repeatedly; existing data is preserved.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("running migrations: %w", err)
	}

	fmt.Printf("Migrations applied to %s\n", cfg.Database.Path)
	return nil
}
