package repository

import (
	"context"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence.
// Reads return the expense with its owner loaded.
type ExpenseRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Expense, error)
	// FindOwnedByIDs returns the expenses of ownerID among ids, preserving the order of ids.
	FindOwnedByIDs(ctx context.Context, ownerID string, ids []string) ([]entity.Expense, error)
	Create(ctx context.Context, e *entity.Expense) error
	// Update applies changes keyed by expense column and reports whether a row was touched.
	Update(ctx context.Context, id string, changes map[string]any) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
