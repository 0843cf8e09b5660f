package validation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oksasatya/go-expense-tracker/pkg/messages"
)

// UserPayload is the body of register and user update requests.
type UserPayload struct {
	Name     Field[string] `json:"name"`
	Email    Field[string] `json:"email"`
	Password Field[string] `json:"password"`
}

// AuthPayload is the body of a login request.
type AuthPayload struct {
	Email    Field[string] `json:"email"`
	Password Field[string] `json:"password"`
}

// ExpensePayload is the body of expense create and update requests.
type ExpensePayload struct {
	Description Field[string]          `json:"description"`
	Price       Field[decimal.Decimal] `json:"price"`
	Date        Field[string]          `json:"date"`
}

// EmailChecker answers whether an email belongs to a user other than ignoreUserID.
type EmailChecker interface {
	EmailTaken(ctx context.Context, email, ignoreUserID string) (bool, error)
}

// ValidateUser checks a user payload. The uniqueness rule only runs once the
// address is syntactically valid; a checker failure is returned as err.
func ValidateUser(ctx context.Context, p UserPayload, presence Presence, checker EmailChecker, ignoreUserID string) (Errors, error) {
	errs := Errors{}

	if present(errs, messages.User, "name", p.Name, presence) {
		minLength(errs, messages.User, "name", p.Name.Value, messages.MinNameLength)
		maxLength(errs, messages.User, "name", p.Name.Value, messages.MaxNameLength)
	}

	if present(errs, messages.User, "email", p.Email, presence) && email(errs, messages.User, "email", p.Email.Value) && checker != nil {
		taken, err := checker.EmailTaken(ctx, p.Email.Value, ignoreUserID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("email", messages.EmailAlreadyExists())
		}
	}

	if present(errs, messages.User, "password", p.Password, presence) {
		strongPassword(errs, messages.User, "password", p.Password.Value)
	}

	return errs, nil
}

// ValidateAuth checks login credentials for shape only.
func ValidateAuth(p AuthPayload) Errors {
	errs := Errors{}
	if present(errs, messages.Auth, "email", p.Email, Required) {
		email(errs, messages.Auth, "email", p.Email.Value)
	}
	if present(errs, messages.Auth, "password", p.Password, Required) {
		strongPassword(errs, messages.Auth, "password", p.Password.Value)
	}
	return errs
}

// ValidateExpense checks an expense payload; now anchors the date rule and its location.
func ValidateExpense(p ExpensePayload, presence Presence, now time.Time) Errors {
	errs := Errors{}

	if present(errs, messages.Expense, "description", p.Description, presence) {
		maxLength(errs, messages.Expense, "description", p.Description.Value, messages.MaxDescriptionLength)
	}
	if present(errs, messages.Expense, "price", p.Price, presence) {
		positive(errs, messages.Expense, "price", p.Price.Value)
		atMost(errs, messages.Expense, "price", p.Price.Value, maxPrice)
	}
	if present(errs, messages.Expense, "date", p.Date, presence) {
		beforeTomorrow(errs, messages.Expense, "date", p.Date.Value, now)
	}

	return errs
}
