package httpHandler

import (
	"errors"
	"net/http"

	"agriwise-server/usecases"

	"github.com/gin-gonic/gin"
)

// respond writes the JSON envelope every endpoint uses.
func respond(c *gin.Context, status int, success bool, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": success,
		"message": message,
		"data":    data,
		"error":   !success,
	})
}

// respondError maps a taxonomy error to its status code. Anything outside the
// taxonomy is reported as an internal error with no detail leaked.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrValidation),
		errors.Is(err, usecases.ErrInvalidStatus),
		errors.Is(err, usecases.ErrDuplicateEmail):
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, usecases.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
	case errors.Is(err, usecases.ErrInvalidResetToken):
		respond(c, http.StatusBadRequest, false, "Invalid or expired token", nil)
	case errors.Is(err, usecases.ErrNotFound):
		respond(c, http.StatusNotFound, false, "Resource not found", nil)
	case errors.Is(err, usecases.ErrMailSend):
		respond(c, http.StatusInternalServerError, false, "Failed to send reset email", nil)
	default:
		respond(c, http.StatusInternalServerError, false, "Internal server error", nil)
	}
}
