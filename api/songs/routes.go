package songs

import (
	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
)

// RegisterRoutes registers song catalog routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/songs - List the song catalog
	router.GET("", GetAll(deps))
}
