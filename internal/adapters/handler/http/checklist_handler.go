package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartsolv/mindmate-engine/internal/adapters/handler/http/middleware"
	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

type ChecklistHandler struct {
	svc *services.ChecklistService
}

func NewChecklistHandler(svc *services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

type setTaskRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type replaceAnswersRequest struct {
	Answers []bool `json:"answers" binding:"required"`
}

func (h *ChecklistHandler) RegisterRoutes(router *gin.RouterGroup) {
	checklist := router.Group("/checklist")
	{
		checklist.GET("", h.State)
		checklist.PUT("/tasks", h.ReplaceAnswers)
		checklist.PATCH("/tasks/:index", h.SetTask)
		checklist.GET("/window", h.Window)
	}
}

func (h *ChecklistHandler) State(c *gin.Context) {
	state, err := h.svc.State(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *ChecklistHandler) SetTask(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task index must be an integer"})
		return
	}

	var req setTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	state, err := h.svc.SetTask(c.Request.Context(), index, *req.Done)
	if err != nil {
		handleError(c, err)
		return
	}

	middleware.ScoresRecorded.WithLabelValues("checklist").Inc()
	c.JSON(http.StatusOK, state)
}

func (h *ChecklistHandler) ReplaceAnswers(c *gin.Context) {
	var req replaceAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	state, err := h.svc.ReplaceAnswers(c.Request.Context(), req.Answers)
	if err != nil {
		handleError(c, err)
		return
	}

	middleware.ScoresRecorded.WithLabelValues("checklist").Inc()
	c.JSON(http.StatusOK, state)
}

func (h *ChecklistHandler) Window(c *gin.Context) {
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

// windowDays parses the days query parameter, defaulting to the 30-day
// window the dashboard shows first.
func windowDays(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("days", "30")

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > 366 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer up to 366"})
		return 0, false
	}
	return days, true
}
