package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindBy matches column = value and selects fields ("*" for all); all=false limits to one row.
	FindBy(ctx context.Context, column string, value any, fields []string, all bool) ([]entity.User, error)
	// EmailTaken reports whether email belongs to a user other than exceptID.
	EmailTaken(ctx context.Context, email, exceptID string) (bool, error)
	Create(ctx context.Context, u *entity.User) error
	// Update applies changes keyed by user column and reports whether a row was touched.
	Update(ctx context.Context, id string, changes map[string]any) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TxManager runs fn inside a single transaction carried by ctx.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
