package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-expense-tracker/internal/interface/http"
)

// UserModule wires the account endpoints of the authenticated user.
// GET, PATCH, PUT, DELETE /api/user
type UserModule struct {
	Handler *handlers.UserHandler
	Guard   *Guard
}

func NewUserModule(h *handlers.UserHandler, guard *Guard) *UserModule {
	return &UserModule{Handler: h, Guard: guard}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/user")
	auth.Use(m.Guard.Protected()...)
	{
		auth.GET("", m.Handler.Show)
		auth.PATCH("", m.Handler.Update)
		auth.PUT("", m.Handler.Update)
		auth.DELETE("", m.Handler.Destroy)
	}
}
