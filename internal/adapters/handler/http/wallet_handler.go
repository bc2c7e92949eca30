package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartsolv/mindmate-engine/internal/adapters/handler/http/middleware"
	"github.com/smartsolv/mindmate-engine/internal/core/domain"
	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

type WalletHandler struct {
	svc *services.WalletService
}

func NewWalletHandler(svc *services.WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

func (h *WalletHandler) RegisterRoutes(router *gin.RouterGroup) {
	wallet := router.Group("/wallet")
	{
		wallet.GET("", h.Wallet)
		wallet.GET("/report", h.Report)
		wallet.POST("/claim", h.Claim)
	}
}

func (h *WalletHandler) Wallet(c *gin.Context) {
	wallet, err := h.svc.Wallet(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

func (h *WalletHandler) Report(c *gin.Context) {
	report, err := h.svc.Report(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Claim pays out the current month's reward. An already-claimed month or
// an ineligible score pair is a normal no-op, answered with a status
// instead of an error payload.
func (h *WalletHandler) Claim(c *gin.Context) {
	wallet, report, err := h.svc.Claim(c.Request.Context())
	switch {
	case err == nil:
		middleware.RewardsClaimed.Inc()
		middleware.CoinsAwarded.Add(float64(report.EligibleCoins))
		c.JSON(http.StatusOK, gin.H{"status": "claimed", "wallet": wallet, "report": report})

	case errors.Is(err, domain.ErrRewardAlreadyClaimed):
		c.JSON(http.StatusOK, gin.H{"status": "already_claimed", "wallet": wallet, "report": report})

	case errors.Is(err, domain.ErrRewardNotEligible):
		c.JSON(http.StatusOK, gin.H{"status": "not_eligible", "wallet": wallet, "report": report})

	default:
		handleError(c, err)
	}
}
