package sync

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
)

// Post triggers a sync pass
// @Summary      Run sync
// @Description  Sweeps expired cache rows, prefetches upcoming weeks and refreshes the song catalog
// @Tags         sync
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/sync [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Syncer == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "error",
				"message": "Sync is not configured",
			})
			return
		}

		result := deps.Syncer.Run(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   result,
		})
	}
}
