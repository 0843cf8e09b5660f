package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-expense-tracker/internal/application"
	"github.com/oksasatya/go-expense-tracker/internal/interface/middleware"
	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
	"github.com/oksasatya/go-expense-tracker/pkg/validation"
)

// bindJSON decodes the body into dst. An empty body decodes to the zero payload
// so the rule set reports the missing fields. On failure the error is attached and false returned.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		fail(c, apperror.Validation(validation.ToDetails(err)))
		return false
	}
	return true
}

// fail attaches err for middleware.ErrorHandler and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func actingUser(c *gin.Context) string {
	return c.GetString(middleware.CtxUserIDKey)
}

func updateMode(c *gin.Context) (application.UpdateMode, validation.Presence) {
	if c.Request.Method == http.MethodPut {
		return application.Replace, validation.Required
	}
	return application.Merge, validation.Sometimes
}
