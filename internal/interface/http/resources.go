package handlers

import (
	"encoding/json"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
)

// UserResource is the public view of a user. The password hash is never rendered.
type UserResource struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewUserResource(u *entity.User) UserResource {
	return UserResource{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: helpers.FormatDateTime(u.CreatedAt),
		UpdatedAt: helpers.FormatDateTime(u.UpdatedAt),
	}
}

type ExpenseOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ExpenseResource struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Price       json.Number   `json:"price"`
	Date        string        `json:"date"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	User        *ExpenseOwner `json:"user"`
}

func NewExpenseResource(e *entity.Expense) ExpenseResource {
	r := ExpenseResource{
		ID:          e.ID,
		Description: e.Description,
		Price:       json.Number(e.Price.StringFixed(2)),
		Date:        helpers.FormatDateTime(e.Date),
		CreatedAt:   helpers.FormatDateTime(e.CreatedAt),
		UpdatedAt:   helpers.FormatDateTime(e.UpdatedAt),
	}
	if e.User != nil {
		r.User = &ExpenseOwner{ID: e.User.ID, Name: e.User.Name, Email: e.User.Email}
	}
	return r
}

func NewExpenseCollection(items []entity.Expense) []ExpenseResource {
	out := make([]ExpenseResource, 0, len(items))
	for i := range items {
		out = append(out, NewExpenseResource(&items[i]))
	}
	return out
}
