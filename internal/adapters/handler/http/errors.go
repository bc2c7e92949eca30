package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskIndexOutOfRange),
		errors.Is(err, domain.ErrTaskCountMismatch),
		errors.Is(err, domain.ErrStressIncomplete),
		errors.Is(err, domain.ErrStressAnswerInvalid),
		errors.Is(err, domain.ErrProfileIncomplete),
		errors.Is(err, domain.ErrInvalidQualification):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrNoAdviceForTopic):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrProfileSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})

	default:
		log.WithError(err).Errorf("Request %s %s failed", c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
