package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/smartsolv/mindmate-engine/internal/adapters/handler/http"
	"github.com/smartsolv/mindmate-engine/internal/adapters/storage"
	"github.com/smartsolv/mindmate-engine/internal/core/domain"
	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

var handlerNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func setupChecklistRouter() (*gin.Engine, *storage.InMemoryStore) {
	gin.SetMode(gin.TestMode)

	store := storage.NewInMemoryStore()
	svc := services.NewChecklistService(store, domain.FixedClock{Instant: handlerNow}, nil)
	handler := adapterHTTP.NewChecklistHandler(svc)

	r := gin.New()
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r, store
}

func TestGetChecklist(t *testing.T) {
	t.Run("Success: 200 with tasks and empty answers", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		req, _ := http.NewRequest("GET", "/api/v1/checklist", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var state services.ChecklistState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Len(t, state.Tasks, 10)
		assert.Zero(t, state.Progress)
	})
}

func TestSetChecklistTask(t *testing.T) {
	t.Run("Success: 200 and progress updated", func(t *testing.T) {
		router, store := setupChecklistRouter()

		req, _ := http.NewRequest("PATCH", "/api/v1/checklist/tasks/0", bytes.NewBufferString(`{"done": true}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var state services.ChecklistState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, 10, state.Progress)

		var history domain.DailyHistory
		require.NoError(t, store.Load(req.Context(), domain.KeyChecklistHistory, &history))
		assert.Equal(t, 10, history["2024-05-15"])
	})

	t.Run("Error: 400 on out-of-range index", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		req, _ := http.NewRequest("PATCH", "/api/v1/checklist/tasks/99", bytes.NewBufferString(`{"done": true}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error: 400 on non-integer index", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		req, _ := http.NewRequest("PATCH", "/api/v1/checklist/tasks/abc", bytes.NewBufferString(`{"done": true}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error: 400 on missing done field", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		req, _ := http.NewRequest("PATCH", "/api/v1/checklist/tasks/0", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReplaceChecklistAnswers(t *testing.T) {
	t.Run("Success: 200 with full submission", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		body := `{"answers": [true,true,true,true,true,false,false,false,false,false]}`
		req, _ := http.NewRequest("PUT", "/api/v1/checklist/tasks", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var state services.ChecklistState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, 50, state.Progress)
	})

	t.Run("Error: 400 on wrong answer count", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		req, _ := http.NewRequest("PUT", "/api/v1/checklist/tasks", bytes.NewBufferString(`{"answers": [true]}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestChecklistWindow(t *testing.T) {
	t.Run("Success: 200 with default 30 days", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		req, _ := http.NewRequest("GET", "/api/v1/checklist/window", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var report services.WindowReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, 30, report.Days)
		assert.Len(t, report.Points, 30)
		assert.Equal(t, domain.GradeD, report.Grade.Grade)
	})

	t.Run("Success: 200 with explicit 40 days", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		req, _ := http.NewRequest("GET", "/api/v1/checklist/window?days=40", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var report services.WindowReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Len(t, report.Points, 40)
	})

	t.Run("Error: 400 on bad days parameter", func(t *testing.T) {
		router, _ := setupChecklistRouter()

		for _, days := range []string{"0", "-5", "999", "soon"} {
			req, _ := http.NewRequest("GET", "/api/v1/checklist/window?days="+days, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, "days=%s", days)
		}
	})
}
