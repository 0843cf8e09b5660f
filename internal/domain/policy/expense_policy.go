// Package policy holds authorization decisions over domain records.
package policy

import (
	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
)

// ExpensePolicy decides what an acting user may do with an expense.
// Only the owner may view, update or delete it.
type ExpensePolicy struct{}

func (ExpensePolicy) Allows(actorID string, e *entity.Expense) bool {
	return e.OwnedBy(actorID)
}

func (p ExpensePolicy) View(actorID string, e *entity.Expense) error {
	return p.check(actorID, e)
}

func (p ExpensePolicy) Update(actorID string, e *entity.Expense) error {
	return p.check(actorID, e)
}

func (p ExpensePolicy) Delete(actorID string, e *entity.Expense) error {
	return p.check(actorID, e)
}

func (p ExpensePolicy) check(actorID string, e *entity.Expense) error {
	if !p.Allows(actorID, e) {
		return apperror.ErrUnauthorized
	}
	return nil
}
