package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record owned by a user.
// Price is kept with two decimal places; storage uses integer cents.
type Expense struct {
	ID          string
	UserID      string
	Description string
	Price       decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// User is the owner, loaded on reads.
	User *User
}

// Expense columns that callers may address by name.
const (
	ExpenseColumnDescription = "description"
	ExpenseColumnPrice       = "price"
	ExpenseColumnDate        = "date"
)

const priceScale = 2

// MaxPrice is the largest accepted price.
var MaxPrice = decimal.New(99_999_999_999_999, -priceScale)

var ErrPriceOutOfRange = errors.New("price out of range")

// RoundPrice rounds half away from zero to cents.
func RoundPrice(d decimal.Decimal) decimal.Decimal {
	return d.Round(priceScale)
}

// PriceToCents converts a price into minor units.
// Values that do not fit in an int64 return ErrPriceOutOfRange.
func PriceToCents(d decimal.Decimal) (int64, error) {
	cents := RoundPrice(d).Shift(priceScale).BigInt()
	if !cents.IsInt64() {
		return 0, ErrPriceOutOfRange
	}
	return cents.Int64(), nil
}

// PriceFromCents converts minor units back into a price.
func PriceFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -priceScale)
}

// OwnedBy reports whether userID owns the expense.
func (e *Expense) OwnedBy(userID string) bool {
	return e != nil && userID != "" && e.UserID == userID
}
