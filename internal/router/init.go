package router

import (
	"github.com/oksasatya/go-expense-tracker/internal/application"
	"github.com/oksasatya/go-expense-tracker/internal/container"
	"github.com/oksasatya/go-expense-tracker/internal/infrastructure/events"
	pginfra "github.com/oksasatya/go-expense-tracker/internal/infrastructure/postgres"
	"github.com/oksasatya/go-expense-tracker/internal/infrastructure/search"
	handlers "github.com/oksasatya/go-expense-tracker/internal/interface/http"
	"github.com/oksasatya/go-expense-tracker/internal/router/modules"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
	"github.com/oksasatya/go-expense-tracker/pkg/mailer/templates"
)

// Services are the application services built from a container.
type Services struct {
	Users    *application.UserService
	Expenses *application.ExpenseService
	Auth     *application.AuthService
}

// BuildServices wires repositories and optional side channels into the services.
func BuildServices(c *container.Container) Services {
	tx := pginfra.NewTxManager(c.DB)
	hasher := helpers.NewBcryptHasher(c.Config.BcryptCost)

	var sessions application.SessionStore
	if c.Sessions != nil {
		sessions = c.Sessions
	}

	var pub application.EventPublisher
	if c.RabbitPub != nil && c.Config.MailSendEnabled {
		pub = events.NewExpenseEvents(c.RabbitPub, templates.Brand{
			AppName:     c.Config.AppName,
			CompanyName: c.Config.CompanyName,
			SupportURL:  c.Config.SupportURL,
		})
	}

	var index application.ExpenseIndexer
	if c.ES != nil {
		index = search.NewExpenseIndex(c.ES, c.Config.ESExpensesIndex)
	}

	users := application.NewUserService(pginfra.NewUserRepository(c.DB), tx, hasher, sessions, c.Logger)
	expenses := application.NewExpenseService(pginfra.NewExpenseRepository(c.DB), users, tx, c.Clock, pub, index, c.Logger)
	auth := application.NewAuthService(users, hasher, c.JWT, sessions, c.Logger)

	return Services{Users: users, Expenses: expenses, Auth: auth}
}

// InitModules registers every feature module with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container, svc Services) {
	limits := modules.Limits{
		Auth:      c.Config.RateLimitAuth,
		Protected: c.Config.RateLimitProtected,
		PerUser:   c.Config.RateLimitPerUser,
	}
	guard := modules.NewGuard(c.JWT, c.Sessions, c.Redis, limits)

	r.Add(modules.NewAuthModule(
		handlers.NewAuthHandler(svc.Auth, c.Logger),
		handlers.NewUserHandler(svc.Users, c.Logger),
		guard,
	))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(svc.Users, c.Logger), guard))
	r.Add(modules.NewExpenseModule(handlers.NewExpenseHandler(svc.Expenses, c.Clock, c.Logger), guard))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(guard))
	}
}
