package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

type ChatHandler struct {
	svc *services.ChatService
}

func NewChatHandler(svc *services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		chat.GET("/greeting", h.Greeting)
		chat.POST("", h.Message)
	}
}

func (h *ChatHandler) Greeting(c *gin.Context) {
	mood := c.DefaultQuery("mood", "okay")
	c.JSON(http.StatusOK, gin.H{"reply": h.svc.Greeting(mood)})
}

func (h *ChatHandler) Message(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": h.svc.Reply(req.Message)})
}
