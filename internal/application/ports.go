package application

import (
	"context"
	"time"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
)

// PasswordHasher is satisfied by helpers.BcryptHasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenProvider is satisfied by *helpers.JWTManager.
type TokenProvider interface {
	Issue(userID string) (helpers.IssuedToken, error)
	TTLMinutes() int
}

// SessionStore is satisfied by *helpers.SessionStore.
type SessionStore interface {
	Save(ctx context.Context, userID, sid string, ttl time.Duration) error
	RevokeUser(ctx context.Context, userID string) error
}

// EventPublisher receives domain events after the originating transaction commits.
type EventPublisher interface {
	ExpenseCreated(ctx context.Context, e *entity.Expense) error
}

// ExpenseIndexer is satisfied by *search.ExpenseIndex.
type ExpenseIndexer interface {
	Index(ctx context.Context, e *entity.Expense) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, userID, q string, size int) ([]string, error)
}
