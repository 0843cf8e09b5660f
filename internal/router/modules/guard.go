package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-expense-tracker/internal/interface/middleware"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
)

// Limits are request budgets per minute.
type Limits struct {
	Auth      int // per IP and route on public auth routes
	Protected int // per IP on protected routes
	PerUser   int // per user on protected routes
}

// Guard builds the middleware chains shared by the feature modules.
type Guard struct {
	JWT      *helpers.JWTManager
	Sessions *helpers.SessionStore
	RDB      *redis.Client
	Limits   Limits
}

func NewGuard(jwt *helpers.JWTManager, sessions *helpers.SessionStore, rdb *redis.Client, limits Limits) *Guard {
	return &Guard{JWT: jwt, Sessions: sessions, RDB: rdb, Limits: limits}
}

// Public limits anonymous callers by IP and route.
func (g *Guard) Public() gin.HandlerFunc {
	return middleware.RateLimit(g.RDB, g.Limits.Auth, time.Minute, middleware.KeyByIPAndPath(), nil)
}

// Protected authenticates the caller, then applies the per-IP and per-user budgets.
func (g *Guard) Protected() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.Auth(g.JWT, g.Sessions),
		middleware.RateLimit(g.RDB, g.Limits.Protected, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(g.RDB, g.Limits.PerUser, time.Minute, middleware.KeyByUserID(), nil),
	}
}
