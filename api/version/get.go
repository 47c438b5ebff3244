package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      API info
// @Description  Returns service name and version
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Meeting Content API",
			"version":     "1.0.0",
			"description": "Meeting audio resolution and caching API",
			"status":      "running",
		})
	}
}
