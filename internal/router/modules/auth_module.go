package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-expense-tracker/internal/interface/http"
)

// AuthModule wires the public endpoints.
// POST /api/register, POST /api/auth/login
type AuthModule struct {
	Auth  *handlers.AuthHandler
	Users *handlers.UserHandler
	Guard *Guard
}

func NewAuthModule(auth *handlers.AuthHandler, users *handlers.UserHandler, guard *Guard) *AuthModule {
	return &AuthModule{Auth: auth, Users: users, Guard: guard}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := m.Guard.Public()

	rg.POST("/register", limiter, m.Users.Register)
	rg.POST("/auth/login", limiter, m.Auth.Login)
}
