package songs

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
)

// GetAll lists the Kingdom song catalog
// @Summary      List songs
// @Description  Returns the cached song catalog, refreshing it from the remote API when stale
// @Tags         songs
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/songs [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		songs, err := deps.SongCatalog.All(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Listing songs failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load song catalog",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data": gin.H{
				"count": len(songs),
				"songs": songs,
			},
		})
	}
}
