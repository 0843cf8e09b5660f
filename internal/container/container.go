// Package container carries the infrastructure singletons built in main
// so the router can wire feature modules from them.
package container

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/config"
	pginfra "github.com/oksasatya/go-expense-tracker/internal/infrastructure/postgres"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
)

type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	DB       pginfra.DB
	Redis    *redis.Client
	JWT      *helpers.JWTManager
	Sessions *helpers.SessionStore
	Clock    helpers.Clock

	// Optional: nil disables the expense_created email and search respectively.
	RabbitPub *helpers.RabbitPublisher
	ES        *elasticsearch.Client
}

// Option customizes a Container.
type Option func(*Container)

func WithRabbit(p *helpers.RabbitPublisher) Option { return func(c *Container) { c.RabbitPub = p } }
func WithES(es *elasticsearch.Client) Option       { return func(c *Container) { c.ES = es } }
func WithClock(clock helpers.Clock) Option         { return func(c *Container) { c.Clock = clock } }

func New(cfg *config.Config, logger *logrus.Logger, db pginfra.DB, rdb *redis.Client, opts ...Option) *Container {
	loc, err := cfg.Location()
	if err != nil {
		helpers.LogWarn(logger, "using UTC", err, nil)
		loc = time.UTC
	}
	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  rdb,
		JWT:    helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL(), cfg.JWTIssuer),
		Clock:  helpers.SystemClock{Location: loc},
	}
	if rdb != nil {
		c.Sessions = helpers.NewSessionStore(rdb)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
