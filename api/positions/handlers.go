package positions

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
)

// PositionUpdateRequest is a resume point update.
type PositionUpdateRequest struct {
	PositionMs int64 `json:"position_ms"`
}

// Get returns the saved playback position for a media ID
// @Summary      Get playback position
// @Tags         positions
// @Produce      json
// @Param        mediaId path string true "Media ID"
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/positions/{mediaId} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaId")

		pos, err := deps.PositionStore.Get(c.Request.Context(), mediaID)
		if err != nil {
			log.Printf("[ERROR] Loading position for %s failed: %v", mediaID, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load playback position",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   pos,
		})
	}
}

// Put saves the playback position for a media ID
// @Summary      Save playback position
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        mediaId path string true "Media ID"
// @Param        body body PositionUpdateRequest true "New position"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Router       /api/v1/positions/{mediaId} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaId")

		var req PositionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request body",
				"details": err.Error(),
			})
			return
		}

		if req.PositionMs < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Position cannot be negative",
			})
			return
		}

		pos, err := deps.PositionStore.Save(c.Request.Context(), mediaID, req.PositionMs)
		if err != nil {
			log.Printf("[ERROR] Saving position for %s failed: %v", mediaID, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to save playback position",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   pos,
		})
	}
}
