package content

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meetingcast/content-api/api/types"
	contentService "github.com/meetingcast/content-api/internal/services/content"
	"github.com/meetingcast/content-api/pkg/week"
)

// GetContent resolves one content type for one week
// @Summary      Resolve meeting content
// @Description  Resolves the audio for a content type and week, consulting cache, remote API and static fallbacks
// @Tags         content
// @Produce      json
// @Param        type path string true "Content type" Enums(workbook, watchtower, bible_reading, congregation_study)
// @Param        week path string true "Any date inside the week, YYYY-MM-DD"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Router       /api/v1/content/{type}/{week} [get]
func GetContent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType, err := contentService.ParseType(c.Param("type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Unknown content type",
			})
			return
		}

		date, err := time.Parse("2006-01-02", c.Param("week"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid week date, expected YYYY-MM-DD",
			})
			return
		}

		// Any date inside the week resolves to that week's Monday.
		info := week.WeekOf(date)

		resolution, err := deps.ContentResolver.Resolve(c.Request.Context(), contentType, info.WeekStart)
		if err != nil {
			if errors.Is(err, contentService.ErrStoreUnavailable) {
				log.Printf("[ERROR] Store unavailable resolving %s %s: %v", contentType, info.Key(), err)
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "error",
					"message": "Content store unavailable",
				})
				return
			}
			log.Printf("[ERROR] Resolving %s %s failed: %v", contentType, info.Key(), err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to resolve content",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data": gin.H{
				"type":       resolution.Type,
				"week_start": info.Key(),
				"week_label": info.Label,
				"url":        resolution.URL,
				"playlist":   resolution.Playlist,
				"source":     resolution.Source,
			},
		})
	}
}
