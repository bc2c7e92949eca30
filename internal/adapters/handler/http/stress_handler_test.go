package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/smartsolv/mindmate-engine/internal/adapters/handler/http"
	"github.com/smartsolv/mindmate-engine/internal/adapters/storage"
	"github.com/smartsolv/mindmate-engine/internal/core/domain"
	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

func setupStressRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := storage.NewInMemoryStore()
	svc := services.NewStressService(store, domain.FixedClock{Instant: handlerNow}, nil)
	handler := adapterHTTP.NewStressHandler(svc)

	r := gin.New()
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestStressQuestions(t *testing.T) {
	router := setupStressRouter()

	req, _ := http.NewRequest("GET", "/api/v1/stress/questions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []string `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 6)
}

func TestStressAnalysis(t *testing.T) {
	t.Run("Success: 200 with level and control score", func(t *testing.T) {
		router := setupStressRouter()

		body := `{"answers": ["yes","yes","no","no","no","no"]}`
		req, _ := http.NewRequest("POST", "/api/v1/stress/analysis", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var analysis services.StressAnalysis
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
		assert.Equal(t, 2, analysis.YesCount)
		assert.Equal(t, 67, analysis.StressControlScore)
		assert.Equal(t, "Moderate Stress", analysis.Result.Level)
	})

	t.Run("Error: 400 on partial submission", func(t *testing.T) {
		router := setupStressRouter()

		req, _ := http.NewRequest("POST", "/api/v1/stress/analysis", bytes.NewBufferString(`{"answers": ["yes"]}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error: 400 on unknown answer", func(t *testing.T) {
		router := setupStressRouter()

		body := `{"answers": ["yes","maybe","no","no","no","no"]}`
		req, _ := http.NewRequest("POST", "/api/v1/stress/analysis", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStressWindow(t *testing.T) {
	router := setupStressRouter()

	body := `{"answers": ["no","no","no","no","no","no"]}`
	req, _ := http.NewRequest("POST", "/api/v1/stress/analysis", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/api/v1/stress/window?days=1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var report services.WindowReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report.Points, 1)
	assert.Equal(t, 100, report.Average)
	assert.Equal(t, domain.GradeA, report.Grade.Grade)
}
