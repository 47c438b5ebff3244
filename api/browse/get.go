package browse

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
	browseService "github.com/meetingcast/content-api/internal/services/browse"
)

// GetChildren lists the children of a browse node
// @Summary      Browse a node
// @Description  Lists the child items of a browse tree node
// @Tags         browse
// @Produce      json
// @Param        id path string true "Node ID, use 'root' for the top level"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /api/v1/browse/{id} [get]
func GetChildren(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		nodeID := c.Param("id")

		items, err := deps.Browser.Children(c.Request.Context(), nodeID)
		if err != nil {
			if errors.Is(err, browseService.ErrUnknownNode) {
				c.JSON(http.StatusNotFound, gin.H{
					"status":  "error",
					"message": "Unknown browse node",
				})
				return
			}
			log.Printf("[ERROR] Browsing node %s failed: %v", nodeID, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load browse node",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data": gin.H{
				"id":    nodeID,
				"items": items,
			},
		})
	}
}
