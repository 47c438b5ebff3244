package browse

import (
	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
)

// RegisterRoutes registers browse tree routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/browse/:id - List children of a browse node
	router.GET("/:id", GetChildren(deps))
}
