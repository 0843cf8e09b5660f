package validation

import (
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
	"github.com/oksasatya/go-expense-tracker/pkg/messages"
)

// present runs the required and type gates shared by every field.
// It reports whether the field should go through its remaining rules.
func present[T any](errs Errors, entity, field string, f Field[T], p Presence) bool {
	if !f.Present || f.Empty {
		if p == Required {
			errs.Add(field, messages.Get(entity, field, messages.KindRequired))
		}
		return false
	}
	if f.Invalid {
		errs.Add(field, messages.Get(entity, field, messages.KindType))
		return false
	}
	return true
}

func minLength(errs Errors, entity, field, s string, n int) {
	if utf8.RuneCountInString(s) < n {
		errs.Add(field, messages.Get(entity, field, messages.KindMinLength))
	}
}

func maxLength(errs Errors, entity, field, s string, n int) {
	if utf8.RuneCountInString(s) > n {
		errs.Add(field, messages.Get(entity, field, messages.KindMaxLength))
	}
}

// IsEmail reports whether s is a syntactically valid address.
func IsEmail(s string) bool {
	return validate().Var(s, "required,email") == nil
}

func email(errs Errors, entity, field, s string) bool {
	if !IsEmail(s) {
		errs.Add(field, messages.Get(entity, field, messages.KindEmail))
		return false
	}
	return true
}

// strongPassword adds one message per failing rule: length, digit, symbol, mixed case.
func strongPassword(errs Errors, entity, field, s string) {
	minLength(errs, entity, field, s, messages.MinPasswordLength)

	var digit, symbol, upper, lower bool
	for _, r := range s {
		switch {
		case unicode.IsNumber(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.In(r, unicode.P, unicode.S, unicode.Z):
			symbol = true
		}
	}
	if !digit {
		errs.Add(field, messages.Get(entity, field, messages.KindNumbers))
	}
	if !symbol {
		errs.Add(field, messages.Get(entity, field, messages.KindSymbols))
	}
	if !upper || !lower {
		errs.Add(field, messages.Get(entity, field, messages.KindMixedCase))
	}
}

var maxPrice = decimal.RequireFromString(messages.MaxPrice)

func positive(errs Errors, entity, field string, d decimal.Decimal) {
	if !d.IsPositive() {
		errs.Add(field, messages.Get(entity, field, messages.KindInvalid))
	}
}

// atMost compares after rounding to cents, the way prices are stored.
func atMost(errs Errors, entity, field string, d, limit decimal.Decimal) {
	if d.Round(2).GreaterThan(limit) {
		errs.Add(field, messages.Get(entity, field, messages.KindMaxValue))
	}
}

// beforeTomorrow accepts any well formed timestamp earlier than the start of the next day.
func beforeTomorrow(errs Errors, entity, field, s string, now time.Time) {
	t, err := helpers.ParseDateTime(s, now.Location())
	if err != nil || !t.Before(helpers.StartOfTomorrow(now)) {
		errs.Add(field, messages.Get(entity, field, messages.KindInvalid))
	}
}
