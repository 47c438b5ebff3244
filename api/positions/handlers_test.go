package positions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetingcast/content-api/api/types"
	"github.com/meetingcast/content-api/internal/models"
)

type stubStore struct {
	saved map[string]int64
}

func (s *stubStore) Get(ctx context.Context, mediaID string) (*models.PlaybackPosition, error) {
	return &models.PlaybackPosition{MediaID: mediaID, PositionMs: s.saved[mediaID]}, nil
}

func (s *stubStore) Save(ctx context.Context, mediaID string, positionMs int64) (*models.PlaybackPosition, error) {
	if s.saved == nil {
		s.saved = make(map[string]int64)
	}
	s.saved[mediaID] = positionMs
	return &models.PlaybackPosition{MediaID: mediaID, PositionMs: positionMs}, nil
}

func setupRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/api/v1/positions")
	RegisterRoutes(group, &types.Dependencies{PositionStore: store})
	return engine
}

func TestGetPosition(t *testing.T) {
	engine := setupRouter(&stubStore{saved: map[string]int64{"song-42": 93500}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/positions/song-42", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.PlaybackPosition `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 93500, body.Data.PositionMs)
}

func TestPutPosition(t *testing.T) {
	store := &stubStore{}
	engine := setupRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/positions/song-42",
		strings.NewReader(`{"position_ms": 120000}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 120000, store.saved["song-42"])
}

func TestPutPositionRejectsNegative(t *testing.T) {
	engine := setupRouter(&stubStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/positions/song-42",
		strings.NewReader(`{"position_ms": -5}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutPositionRejectsBadBody(t *testing.T) {
	engine := setupRouter(&stubStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/positions/song-42",
		strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
