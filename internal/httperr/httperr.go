package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
)

// CodeAuthenticationFailed is the machine-readable code carried by every 401
// produced by the auth gate, so clients can drop their stored token.
const CodeAuthenticationFailed = "AUTHENTICATION_FAILED"

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// From translates a tagged error into the HTTP response for its kind. The
// internal-fault message is already generic; the cause stays server-side.
func From(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		Write(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch e.Kind {
	case apperr.KindValidation:
		Write(c, http.StatusBadRequest, e.Message)
	case apperr.KindUnauthorized:
		Write(c, http.StatusUnauthorized, e.Message)
	case apperr.KindNotFound:
		Write(c, http.StatusNotFound, e.Message)
	case apperr.KindConflict:
		Write(c, http.StatusConflict, e.Message)
	default:
		Write(c, http.StatusInternalServerError, "Internal server error")
	}
}

// AuthFailed writes the uniform 401 body used for protected routes.
func AuthFailed(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": reason,
		"code":  CodeAuthenticationFailed,
	})
}
