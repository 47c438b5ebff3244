package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetingcast/content-api/api/types"
	"github.com/meetingcast/content-api/internal/services/syncer"
)

type stubRunner struct {
	result syncer.Result
	runs   int
}

func (s *stubRunner) Run(ctx context.Context) syncer.Result {
	s.runs++
	return s.result
}

func setupRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/api/v1/sync")
	RegisterRoutes(group, deps)
	return engine
}

func TestPostRunsSync(t *testing.T) {
	runner := &stubRunner{result: syncer.Result{Swept: 2, Warmed: 17}}
	engine := setupRouter(&types.Dependencies{Syncer: runner})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runner.runs)

	var body struct {
		Status string        `json:"status"`
		Data   syncer.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body.Data.Swept)
	assert.Equal(t, 17, body.Data.Warmed)
}

func TestPostWithoutSyncer(t *testing.T) {
	engine := setupRouter(&types.Dependencies{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
