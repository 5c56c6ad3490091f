package handlers

import (
	"net/http"

	"shopcart-backend/logger"
	"shopcart-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes err as a JSON error. Domain errors keep their message; anything else is
// attached to the context for the request logger and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	code := services.CodeOf(err)
	if code != "" {
		logger.FromGin(c).Debug("Request rejected", zap.String("code", code), zap.Error(err))
	}

	switch code {
	case services.CodeInvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case services.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.CodeUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// callerID returns the user id placed on the context by the identity middleware.
func callerID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
