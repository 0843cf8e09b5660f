package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/internal/infrastructure/events"
	"github.com/oksasatya/go-expense-tracker/pkg/mailer"
	"github.com/oksasatya/go-expense-tracker/pkg/mailer/templates"
)

type capture struct {
	bodies []any
	err    error
}

func (c *capture) PublishJSON(_ context.Context, body any) error {
	c.bodies = append(c.bodies, body)
	return c.err
}

func TestExpenseCreatedPublishesEmailJob(t *testing.T) {
	pub := &capture{}
	e := &entity.Expense{
		ID:          "e-1",
		Description: "Lunch",
		Price:       decimal.NewFromInt(10),
		Date:        time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		User:        &entity.User{Name: "Jane", Email: "jane@example.com"},
	}

	require.NoError(t, events.NewExpenseEvents(pub, templates.Brand{AppName: "Ledger"}).ExpenseCreated(context.Background(), e))
	require.Len(t, pub.bodies, 1)

	job, ok := pub.bodies[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", job.To)
	assert.Equal(t, templates.ExpenseCreated, job.Template)
	assert.Equal(t, "10.00", job.Data["Price"])
	assert.Equal(t, "2024-06-01 12:00:00", job.Data["Date"])
	assert.Equal(t, "Ledger", job.Data["AppName"])
}

func TestExpenseCreatedErrors(t *testing.T) {
	boom := errors.New("broker down")
	p := events.NewExpenseEvents(&capture{err: boom}, templates.Brand{})

	err := p.ExpenseCreated(context.Background(), &entity.Expense{User: &entity.User{Email: "a@b.co"}})
	assert.ErrorIs(t, err, boom)

	assert.Error(t, p.ExpenseCreated(context.Background(), &entity.Expense{}))
}
