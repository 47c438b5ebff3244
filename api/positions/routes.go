package positions

import (
	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
)

// RegisterRoutes registers playback position routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/positions/:mediaId - Get the saved resume point
	router.GET("/:mediaId", Get(deps))

	// PUT /api/v1/positions/:mediaId - Save a resume point
	router.PUT("/:mediaId", Put(deps))
}
