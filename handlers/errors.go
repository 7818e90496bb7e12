package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tierevents/services"
)

// respondError maps a service error to a status code and JSON body.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, services.ErrInvalidTier), errors.Is(err, services.ErrTierNotHigher):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUpgradesDisabled):
		c.JSON(http.StatusNotFound, gin.H{"error": "Upgrades not enabled"})
	case errors.Is(err, services.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
	case errors.Is(err, services.ErrTierChanged):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable. Please try again.", "retryable": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
