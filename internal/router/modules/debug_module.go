package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-expense-tracker/internal/interface/middleware"
)

type DebugModule struct {
	Guard *Guard
}

func NewDebugModule(guard *Guard) *DebugModule { return &DebugModule{Guard: guard} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public expvar endpoint, rate-limited per IP
	rl := middleware.RateLimit(m.Guard.RDB, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
