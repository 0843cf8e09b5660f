package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
	"github.com/oksasatya/go-expense-tracker/pkg/messages"
	"github.com/oksasatya/go-expense-tracker/pkg/response"
)

// ErrorHandler renders the last error a handler attached with c.Error and
// turns panics into a generic 500. Internal causes are logged, never sent.
func ErrorHandler(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithFields(logrus.Fields{
					"request_id": c.GetString("request_id"),
					"path":       c.Request.URL.Path,
				}).Error(fmt.Sprintf("panic recovered: %v", rec))
				response.Error(c, http.StatusInternalServerError, messages.GenericError)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		Render(c, logger, c.Errors.Last().Err)
	}
}

// Render writes err the way its kind requires.
func Render(c *gin.Context, logger logrus.FieldLogger, err error) {
	ae := apperror.From(err)
	status := ae.Kind.Status()

	switch ae.Kind {
	case apperror.KindValidation:
		response.Fields(c, status, ae.Fields)
	case apperror.KindBusiness, apperror.KindAuthorization, apperror.KindAuthentication, apperror.KindNotFound:
		response.Message(c, status, ae.Message)
	default:
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"kind":       ae.Kind.String(),
		}).WithError(err).Error("request failed")
		msg := ae.Message
		if ae.Kind == apperror.KindInternal {
			msg = messages.GenericError
		}
		response.Error(c, status, msg)
	}
}
