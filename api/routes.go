package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/meetingcast/content-api/api/browse"
	contentapi "github.com/meetingcast/content-api/api/content"
	"github.com/meetingcast/content-api/api/health"
	"github.com/meetingcast/content-api/api/positions"
	songsapi "github.com/meetingcast/content-api/api/songs"
	syncapi "github.com/meetingcast/content-api/api/sync"
	"github.com/meetingcast/content-api/api/types"
	"github.com/meetingcast/content-api/api/version"
	_ "github.com/meetingcast/content-api/docs/swagger"
	"github.com/meetingcast/content-api/internal/services/bible"
	broadcastService "github.com/meetingcast/content-api/internal/services/broadcast"
	browseService "github.com/meetingcast/content-api/internal/services/browse"
	contentService "github.com/meetingcast/content-api/internal/services/content"
	"github.com/meetingcast/content-api/internal/services/mediator"
	positionsService "github.com/meetingcast/content-api/internal/services/positions"
	"github.com/meetingcast/content-api/internal/services/pubmedia"
	songsService "github.com/meetingcast/content-api/internal/services/songs"
	"github.com/meetingcast/content-api/internal/services/syncer"
	"github.com/meetingcast/content-api/pkg/config"
	"github.com/meetingcast/content-api/pkg/week"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiters *limiterRegistry) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if err := initializeServices(deps, cfg); err != nil {
		return err
	}

	v1 := engine.Group("/api/v1")

	// Browse and content drive the in-car UI, so they get the highest limits
	browseGroup := v1.Group("/browse")
	browseGroup.Use(limiters.Middleware("browse", 20, 30))
	browse.RegisterRoutes(browseGroup, deps)

	contentGroup := v1.Group("/content")
	contentGroup.Use(limiters.Middleware("content", 10, 20))
	contentapi.RegisterRoutes(contentGroup, deps)

	songsGroup := v1.Group("/songs")
	songsGroup.Use(limiters.Middleware("songs", 10, 20))
	songsapi.RegisterRoutes(songsGroup, deps)

	positionsGroup := v1.Group("/positions")
	positionsGroup.Use(limiters.Middleware("positions", 20, 30))
	positions.RegisterRoutes(positionsGroup, deps)

	// Sync hammers the upstream API, keep it slow
	syncGroup := v1.Group("/sync")
	syncGroup.Use(limiters.Middleware("sync", 1, 2))
	syncapi.RegisterRoutes(syncGroup, deps)

	return nil
}

// initializeServices wires any dependency the caller did not provide.
func initializeServices(deps *types.Dependencies, cfg *config.Config) error {
	language := cfg.Content.Language
	if language == "" {
		language = "E"
	}

	pubClient := pubmedia.NewClient(pubmedia.Config{
		BaseURL:   cfg.PubMedia.BaseURL,
		Language:  language,
		UserAgent: cfg.PubMedia.UserAgent,
		Timeout:   cfg.PubMedia.Timeout,
	})
	mediatorClient := mediator.NewClient(mediator.Config{
		BaseURL:   cfg.Mediator.BaseURL,
		UserAgent: cfg.PubMedia.UserAgent,
		Timeout:   cfg.Mediator.Timeout,
	})

	if deps.ContentResolver == nil {
		if deps.DB == nil || deps.DB.DB == nil {
			return fmt.Errorf("content resolver requires a database")
		}
		store := contentService.NewRepository(deps.DB.DB)
		deps.ContentResolver = contentService.NewService(store, pubClient)
	}

	if deps.SongCatalog == nil {
		if deps.DB == nil || deps.DB.DB == nil {
			return fmt.Errorf("song catalog requires a database")
		}
		deps.SongCatalog = songsService.NewService(
			songsService.NewRepository(deps.DB.DB), pubClient, language)
	}

	if deps.PositionStore == nil {
		if deps.DB == nil || deps.DB.DB == nil {
			return fmt.Errorf("position store requires a database")
		}
		deps.PositionStore = positionsService.NewRepository(deps.DB.DB)
	}

	if deps.Syncer == nil {
		if deps.DB == nil || deps.DB.DB == nil {
			return fmt.Errorf("syncer requires a database")
		}
		deps.Syncer = syncer.NewService(
			deps.ContentResolver,
			contentService.NewRepository(deps.DB.DB),
			deps.SongCatalog,
			syncer.WithPeriod(cfg.Sync.Period),
		)
	}

	if deps.Browser == nil {
		deps.Browser = browseService.NewService(
			deps.ContentResolver,
			deps.SongCatalog,
			broadcastService.NewService(mediatorClient, language),
			bible.NewCatalog(pubClient),
			week.NewCalculator(nil),
		)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
