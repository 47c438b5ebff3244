package browse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetingcast/content-api/api/types"
	"github.com/meetingcast/content-api/internal/models"
	browseService "github.com/meetingcast/content-api/internal/services/browse"
)

type stubBrowser struct {
	items map[string][]models.MediaItem
	err   error
}

func (b *stubBrowser) Children(ctx context.Context, parentID string) ([]models.MediaItem, error) {
	if b.err != nil {
		return nil, b.err
	}
	items, ok := b.items[parentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", browseService.ErrUnknownNode, parentID)
	}
	return items, nil
}

func setupRouter(browser types.Browser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/api/v1/browse")
	RegisterRoutes(group, &types.Dependencies{Browser: browser})
	return engine
}

func TestGetChildrenRoot(t *testing.T) {
	engine := setupRouter(&stubBrowser{items: map[string][]models.MediaItem{
		"root": {
			{ID: "weekly_meetings", Title: "Weekly Meetings", Browsable: true},
		},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse/root", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			ID    string             `json:"id"`
			Items []models.MediaItem `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "root", body.Data.ID)
	require.Len(t, body.Data.Items, 1)
	assert.True(t, body.Data.Items[0].Browsable)
}

func TestGetChildrenUnknownNode(t *testing.T) {
	engine := setupRouter(&stubBrowser{items: map[string][]models.MediaItem{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse/bogus", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetChildrenInternalError(t *testing.T) {
	engine := setupRouter(&stubBrowser{err: errors.New("store down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse/root", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
