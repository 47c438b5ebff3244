package content

import (
	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
)

// RegisterRoutes registers content resolution routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/content/:type/:week - Resolve content for a week
	router.GET("/:type/:week", GetContent(deps))
}
