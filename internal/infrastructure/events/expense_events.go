// Package events turns domain events into queued email jobs.
package events

import (
	"context"
	"errors"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/internal/infrastructure/metrics"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
	"github.com/oksasatya/go-expense-tracker/pkg/mailer"
	"github.com/oksasatya/go-expense-tracker/pkg/mailer/templates"
)

// JSONPublisher is satisfied by *helpers.RabbitPublisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ExpenseEvents publishes an expense_created email job for every new expense.
type ExpenseEvents struct {
	pub   JSONPublisher
	brand templates.Brand
}

func NewExpenseEvents(pub JSONPublisher, brand templates.Brand) *ExpenseEvents {
	return &ExpenseEvents{pub: pub, brand: brand}
}

func (p *ExpenseEvents) ExpenseCreated(ctx context.Context, e *entity.Expense) error {
	if e.User == nil || e.User.Email == "" {
		return errors.New("expense owner is not loaded")
	}
	job := mailer.EmailJob{
		To:       e.User.Email,
		Template: templates.ExpenseCreated,
		Data: templates.NewExpenseCreatedData(p.brand, e.User.Name, e.User.Email,
			templates.WithExpense(
				e.ID,
				e.Description,
				e.Price.StringFixed(2),
				helpers.FormatDateTime(e.Date),
				helpers.FormatDateTime(e.CreatedAt),
			),
		),
	}
	err := p.pub.PublishJSON(ctx, job)
	metrics.RecordEventPublished(templates.ExpenseCreated, err)
	return err
}
