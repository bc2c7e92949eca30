package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartsolv/mindmate-engine/internal/adapters/handler/http/middleware"
	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

type StressHandler struct {
	svc *services.StressService
}

func NewStressHandler(svc *services.StressService) *StressHandler {
	return &StressHandler{svc: svc}
}

type stressAnalysisRequest struct {
	Answers []string `json:"answers" binding:"required"`
}

func (h *StressHandler) RegisterRoutes(router *gin.RouterGroup) {
	stress := router.Group("/stress")
	{
		stress.GET("/questions", h.Questions)
		stress.POST("/analysis", h.Analyze)
		stress.GET("/window", h.Window)
	}
}

func (h *StressHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.svc.Questions()})
}

func (h *StressHandler) Analyze(c *gin.Context) {
	var req stressAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), req.Answers)
	if err != nil {
		handleError(c, err)
		return
	}

	middleware.ScoresRecorded.WithLabelValues("stress").Inc()
	c.JSON(http.StatusOK, analysis)
}

func (h *StressHandler) Window(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}

	report, err := h.svc.Window(c.Request.Context(), days)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
