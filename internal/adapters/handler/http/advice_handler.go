package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

// AdviceHandler serves the static mood/issue lists and their suggestion
// text. Pure lookups, no service behind it.
type AdviceHandler struct{}

func NewAdviceHandler() *AdviceHandler {
	return &AdviceHandler{}
}

func (h *AdviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/moods", h.Moods)
	router.GET("/issues", h.Issues)
	router.GET("/suggestions", h.Suggestions)
}

func (h *AdviceHandler) Moods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": domain.Moods})
}

func (h *AdviceHandler) Issues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"issues": domain.Issues})
}

func (h *AdviceHandler) Suggestions(c *gin.Context) {
	topic := c.Query("topic")
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	tips, err := domain.Suggestions(topic)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic, "suggestions": tips})
}
