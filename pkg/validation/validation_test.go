package validation_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
	"github.com/oksasatya/go-expense-tracker/pkg/messages"
	"github.com/oksasatya/go-expense-tracker/pkg/validation"
)

type stubChecker struct {
	taken   map[string]string // email -> owner id
	err     error
	calls   int
	ignored string
}

func (s *stubChecker) EmailTaken(_ context.Context, email, ignoreUserID string) (bool, error) {
	s.calls++
	s.ignored = ignoreUserID
	if s.err != nil {
		return false, s.err
	}
	owner, ok := s.taken[email]
	return ok && owner != ignoreUserID, nil
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestFieldDecoding(t *testing.T) {
	p := decode[validation.ExpensePayload](t, `{"description":"  ","price":"12.5","date":123}`)

	assert.True(t, p.Description.Present)
	assert.True(t, p.Description.Empty)
	assert.True(t, p.Price.Filled())
	assert.Equal(t, "12.5", p.Price.Value.String())
	assert.True(t, p.Date.Invalid)

	p = decode[validation.ExpensePayload](t, `{"price":null}`)
	assert.False(t, p.Description.Present)
	assert.True(t, p.Price.Empty)
	assert.Nil(t, p.Price.Ptr())

	p = decode[validation.ExpensePayload](t, `{"price":true}`)
	assert.True(t, p.Price.Invalid)
}

func TestValidateUserRegistration(t *testing.T) {
	checker := &stubChecker{taken: map[string]string{"taken@example.com": "u-1"}}

	t.Run("all missing", func(t *testing.T) {
		errs, err := validation.ValidateUser(context.Background(), validation.UserPayload{}, validation.Required, checker, "")
		require.NoError(t, err)
		assert.Equal(t, validation.Errors{
			"name":     {messages.NameRequired()},
			"email":    {messages.EmailRequired()},
			"password": {messages.PasswordRequired()},
		}, errs)
	})

	t.Run("weak password reports every rule", func(t *testing.T) {
		p := decode[validation.UserPayload](t, `{"name":"Jo","email":"not-an-email","password":"abc"}`)
		errs, err := validation.ValidateUser(context.Background(), p, validation.Required, checker, "")
		require.NoError(t, err)
		assert.Equal(t, []string{messages.NameMinLength()}, errs["name"])
		assert.Equal(t, []string{messages.EmailInvalid()}, errs["email"])
		assert.Equal(t, []string{
			messages.PasswordMinLength(),
			messages.PasswordNumbers(),
			messages.PasswordSymbols(),
			messages.PasswordMixedCase(),
		}, errs["password"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		p := decode[validation.UserPayload](t, `{"name":"Jane","email":"taken@example.com","password":"Secret#123"}`)
		errs, err := validation.ValidateUser(context.Background(), p, validation.Required, checker, "")
		require.NoError(t, err)
		assert.Equal(t, validation.Errors{"email": {"email already exists"}}, errs)
	})

	t.Run("valid", func(t *testing.T) {
		p := decode[validation.UserPayload](t, `{"name":"Jane","email":"jane@example.com","password":"Secret#123"}`)
		errs, err := validation.ValidateUser(context.Background(), p, validation.Required, checker, "")
		require.NoError(t, err)
		assert.True(t, errs.Empty())
		assert.NoError(t, errs.Err())
	})
}

func TestValidateUserUpdate(t *testing.T) {
	checker := &stubChecker{taken: map[string]string{"me@example.com": "u-1"}}

	p := decode[validation.UserPayload](t, `{"email":"me@example.com"}`)
	errs, err := validation.ValidateUser(context.Background(), p, validation.Sometimes, checker, "u-1")
	require.NoError(t, err)
	assert.True(t, errs.Empty())
	assert.Equal(t, "u-1", checker.ignored)

	errs, err = validation.ValidateUser(context.Background(), p, validation.Sometimes, checker, "u-2")
	require.NoError(t, err)
	assert.Equal(t, []string{messages.EmailAlreadyExists()}, errs["email"])
}

func TestValidateUserCheckerFailure(t *testing.T) {
	boom := errors.New("db down")
	p := decode[validation.UserPayload](t, `{"email":"jane@example.com"}`)
	_, err := validation.ValidateUser(context.Background(), p, validation.Sometimes, &stubChecker{err: boom}, "")
	assert.ErrorIs(t, err, boom)
}

func TestValidateUserSkipsUniquenessForBadSyntax(t *testing.T) {
	checker := &stubChecker{}
	p := decode[validation.UserPayload](t, `{"email":"nope"}`)
	_, err := validation.ValidateUser(context.Background(), p, validation.Sometimes, checker, "")
	require.NoError(t, err)
	assert.Zero(t, checker.calls)
}

func TestValidateAuth(t *testing.T) {
	errs := validation.ValidateAuth(validation.AuthPayload{})
	assert.Equal(t, validation.Errors{
		"email":    {messages.EmailRequired()},
		"password": {messages.PasswordRequired()},
	}, errs)

	p := decode[validation.AuthPayload](t, `{"email":"jane@example.com","password":"Secret#123"}`)
	assert.True(t, validation.ValidateAuth(p).Empty())

	errs = validation.ValidateAuth(validation.AuthPayload{
		Email:    validation.Set("jane@example.com"),
		Password: validation.Set("short"),
	})
	assert.NotContains(t, errs, "email")
	assert.Len(t, errs["password"], 4)
}

func TestValidateExpense(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("required set", func(t *testing.T) {
		errs := validation.ValidateExpense(validation.ExpensePayload{}, validation.Required, now)
		assert.Equal(t, validation.Errors{
			"description": {messages.DescriptionRequired()},
			"price":       {messages.PriceRequired()},
			"date":        {messages.DateRequired()},
		}, errs)
	})

	t.Run("sometimes ignores absent and empty fields", func(t *testing.T) {
		p := decode[validation.ExpensePayload](t, `{"description":"","price":null}`)
		assert.True(t, validation.ValidateExpense(p, validation.Sometimes, now).Empty())
	})

	t.Run("bad values", func(t *testing.T) {
		p := decode[validation.ExpensePayload](t, `{"description":42,"price":-1,"date":"2024-06-16 00:00:00"}`)
		errs := validation.ValidateExpense(p, validation.Sometimes, now)
		assert.Equal(t, validation.Errors{
			"description": {messages.DescriptionType()},
			"price":       {messages.PriceInvalid()},
			"date":        {messages.DateInvalid()},
		}, errs)
		assert.True(t, apperror.Is(errs.Err(), apperror.KindValidation))
	})

	t.Run("later today is accepted", func(t *testing.T) {
		p := decode[validation.ExpensePayload](t, `{"description":"Lunch","price":"9.99","date":"2024-06-15 23:59:59"}`)
		assert.True(t, validation.ValidateExpense(p, validation.Required, now).Empty())
	})

	t.Run("price ceiling", func(t *testing.T) {
		p := decode[validation.ExpensePayload](t, `{"price":"200000000000000000"}`)
		assert.Equal(t, []string{messages.PriceTooLarge()}, validation.ValidateExpense(p, validation.Sometimes, now)["price"])

		p = decode[validation.ExpensePayload](t, `{"price":"999999999999.994"}`)
		assert.NotContains(t, validation.ValidateExpense(p, validation.Sometimes, now), "price")

		p = decode[validation.ExpensePayload](t, `{"price":"999999999999.995"}`)
		assert.Equal(t, []string{messages.PriceTooLarge()}, validation.ValidateExpense(p, validation.Sometimes, now)["price"])
	})

	t.Run("wrong layout", func(t *testing.T) {
		p := decode[validation.ExpensePayload](t, `{"date":"15/06/2024"}`)
		assert.Equal(t, []string{messages.DateInvalid()}, validation.ValidateExpense(p, validation.Sometimes, now)["date"])
	})
}

func TestToDetails(t *testing.T) {
	var syntax *json.SyntaxError
	err := json.Unmarshal([]byte("{"), &struct{}{})
	require.ErrorAs(t, err, &syntax)
	assert.Equal(t, validation.Errors{"payload": {messages.InvalidPayload}}, validation.ToDetails(err))
	assert.Nil(t, validation.ToDetails(nil))
}
