package songs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetingcast/content-api/api/types"
	"github.com/meetingcast/content-api/internal/models"
)

type stubCatalog struct {
	songs []models.CachedSong
	err   error
}

func (s *stubCatalog) All(ctx context.Context) ([]models.CachedSong, error) {
	return s.songs, s.err
}

func (s *stubCatalog) Refresh(ctx context.Context) error {
	return s.err
}

func setupRouter(catalog *stubCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/api/v1/songs")
	RegisterRoutes(group, &types.Dependencies{SongCatalog: catalog})
	return engine
}

func TestGetAllSongs(t *testing.T) {
	engine := setupRouter(&stubCatalog{songs: []models.CachedSong{
		{Number: 1, Title: "Song 1", URL: "https://cdn.example/1.mp3", Language: "E"},
		{Number: 2, Title: "Song 2", URL: "https://cdn.example/2.mp3", Language: "E"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/songs", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Count int                 `json:"count"`
			Songs []models.CachedSong `json:"songs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.Count)
	assert.Equal(t, "Song 1", body.Data.Songs[0].Title)
}

func TestGetAllSongsStoreError(t *testing.T) {
	engine := setupRouter(&stubCatalog{err: errors.New("store down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/songs", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
