package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

type SessionHandler struct {
	svc *services.SessionService
}

func NewSessionHandler(svc *services.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

type loginRequest struct {
	StudentName   string `json:"studentName" binding:"required"`
	Age           int    `json:"age" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	Qualification string `json:"qualification" binding:"required"`
}

// profileResponse never exposes the stored password hash.
type profileResponse struct {
	SessionID     string    `json:"sessionId"`
	StudentName   string    `json:"studentName"`
	Age           int       `json:"age"`
	Email         string    `json:"email"`
	Qualification string    `json:"qualification"`
	LoggedInAt    time.Time `json:"loggedInAt"`
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	session := router.Group("/session")
	{
		session.POST("/login", h.Login)
		session.GET("/profile", h.Profile)
		session.DELETE("", h.Logout)
	}
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.svc.Login(c.Request.Context(), services.LoginInput{
		StudentName:   req.StudentName,
		Age:           req.Age,
		Email:         req.Email,
		Password:      req.Password,
		Qualification: req.Qualification,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

func (h *SessionHandler) Profile(c *gin.Context) {
	profile, err := h.svc.Current(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toProfileResponse(p domain.Profile) profileResponse {
	return profileResponse{
		SessionID:     p.SessionID,
		StudentName:   p.StudentName,
		Age:           p.Age,
		Email:         p.Email,
		Qualification: p.Qualification,
		LoggedInAt:    p.LoggedInAt,
	}
}
