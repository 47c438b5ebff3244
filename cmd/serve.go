package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meetingcast/content-api/api"
	"github.com/meetingcast/content-api/api/types"
	"github.com/meetingcast/content-api/internal/database"
	"github.com/meetingcast/content-api/internal/models"
	contentService "github.com/meetingcast/content-api/internal/services/content"
	"github.com/meetingcast/content-api/internal/services/pubmedia"
	songsService "github.com/meetingcast/content-api/internal/services/songs"
	"github.com/meetingcast/content-api/internal/services/syncer"
	"github.com/meetingcast/content-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Meeting Content API server with the configured settings.

The server resolves meeting content, serves the browse tree, and runs the
background sync cycle that keeps the cache warm.

Example:
  content-api serve
  content-api serve --port 9090
  content-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
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

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	syncCtx, cancelSync := context.WithCancel(context.Background())
	defer cancelSync()
	var backgroundSync *syncer.Service
	if cfg.Sync.Enabled {
		backgroundSync = deps.Syncer.(*syncer.Service)
		backgroundSync.Start(syncCtx)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] Meeting Content API listening on %s:%d", serverHost, serverPort)

	select {
	case <-stop:
		log.Println("[INFO] Shutting down server...")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
	}

	if backgroundSync != nil {
		cancelSync()
		backgroundSync.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Println("[INFO] Server gracefully stopped")
	return nil
}

// buildDependencies wires the services the handlers and the background sync
// share.
func buildDependencies(db *database.DB, cfg *config.Config) *types.Dependencies {
	language := cfg.Content.Language
	pubClient := pubmedia.NewClient(pubmedia.Config{
		BaseURL:   cfg.PubMedia.BaseURL,
		Language:  language,
		UserAgent: cfg.PubMedia.UserAgent,
		Timeout:   cfg.PubMedia.Timeout,
	})

	contentStore := contentService.NewRepository(db.DB)
	resolver := contentService.NewService(contentStore, pubClient)
	songCatalog := songsService.NewService(songsService.NewRepository(db.DB), pubClient, language)

	return &types.Dependencies{
		DB:              db,
		ContentResolver: resolver,
		SongCatalog:     songCatalog,
		Syncer: syncer.NewService(resolver, contentStore, songCatalog,
			syncer.WithPeriod(cfg.Sync.Period)),
	}
}
