package types

import (
	"context"

	"github.com/meetingcast/content-api/internal/database"
	"github.com/meetingcast/content-api/internal/models"
	"github.com/meetingcast/content-api/internal/services/content"
	"github.com/meetingcast/content-api/internal/services/positions"
	"github.com/meetingcast/content-api/internal/services/songs"
	"github.com/meetingcast/content-api/internal/services/syncer"
)

// Browser walks the browse tree.
type Browser interface {
	Children(ctx context.Context, parentID string) ([]models.MediaItem, error)
}

// SyncRunner executes one sync pass on demand.
type SyncRunner interface {
	Run(ctx context.Context) syncer.Result
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	ContentResolver content.Resolver
	Browser         Browser
	SongCatalog     songs.Catalog
	PositionStore   positions.Store
	Syncer          SyncRunner
}
