package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-expense-tracker/internal/interface/http"
)

// ExpenseModule wires the expense endpoints; every route requires a bearer token.
type ExpenseModule struct {
	Handler *handlers.ExpenseHandler
	Guard   *Guard
}

func NewExpenseModule(h *handlers.ExpenseHandler, guard *Guard) *ExpenseModule {
	return &ExpenseModule{Handler: h, Guard: guard}
}

func (m *ExpenseModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/expense")
	auth.Use(m.Guard.Protected()...)
	{
		auth.POST("", m.Handler.Store)
		auth.GET("/search", m.Handler.Search)
		auth.GET("/:id", m.Handler.Show)
		auth.PATCH("/:id", m.Handler.Update)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Destroy)
	}
}
