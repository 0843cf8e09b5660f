package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/internal/application"
	"github.com/oksasatya/go-expense-tracker/pkg/response"
	"github.com/oksasatya/go-expense-tracker/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Logger logrus.FieldLogger
}

func NewAuthHandler(auth *application.AuthService, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

// Login POST /api/auth/login
// Returns {token, token_type, expires_in}; credential failures share one message.
func (h *AuthHandler) Login(c *gin.Context) {
	var p validation.AuthPayload
	if !bindJSON(c, &p) {
		return
	}
	if err := validation.ValidateAuth(p).Err(); err != nil {
		fail(c, err)
		return
	}

	token, err := h.Auth.Login(c.Request.Context(), application.AuthDTO{
		Email:    p.Email.Value,
		Password: p.Password.Value,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, 0, token)
}
