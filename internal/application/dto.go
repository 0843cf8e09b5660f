package application

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateMode selects PATCH (Merge) or PUT (Replace) semantics.
type UpdateMode int

const (
	Merge UpdateMode = iota
	Replace
)

type StoreUserDTO struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserDTO carries the fields a client sent; nil or empty values are left untouched.
type UpdateUserDTO struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
	Mode     UpdateMode
}

type StoreExpenseDTO struct {
	UserID      string
	Description string
	Price       decimal.Decimal
	Date        time.Time
}

// UpdateExpenseDTO carries the fields a client sent; UserID is the acting user.
type UpdateExpenseDTO struct {
	ID          string
	UserID      string
	Description *string
	Price       *decimal.Decimal
	Date        *time.Time
	Mode        UpdateMode
}

type AuthDTO struct {
	Email    string
	Password string
}

// TokenDTO is the login result.
type TokenDTO struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

func filled(s *string) bool { return s != nil && *s != "" }
