package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	"github.com/BruksfildServices01/fleet-manager/internal/httperr"
	"github.com/BruksfildServices01/fleet-manager/internal/middleware"
)

// writeError logs internal faults with their cause and request id, then
// writes the response for the error's kind. The cause never reaches the body.
func writeError(c *gin.Context, log *logrus.Logger, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		cause := err.Error()
		var e *apperr.Error
		if errors.As(err, &e) && e.Unwrap() != nil {
			cause = e.Unwrap().Error()
		}

		log.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.ContextRequestID),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"error":      cause,
		}).Error("request failed")
	}

	httperr.From(c, err)
}
