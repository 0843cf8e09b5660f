package messages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-expense-tracker/pkg/messages"
)

func TestCatalog(t *testing.T) {
	assert.Equal(t, "The name is required", messages.NameRequired())
	assert.Equal(t, "The name field must have a minimum of 3 characters.", messages.NameMinLength())
	assert.Equal(t, "The name field should not exceed 255 characters.", messages.NameMaxLength())
	assert.Equal(t, "The email field must be a valid e-mail.", messages.EmailInvalid())
	assert.Equal(t, "email already exists", messages.EmailAlreadyExists())
	assert.Equal(t, "The password field must have a minimum of 8 characters.", messages.PasswordMinLength())
	assert.Equal(t, "The description field should not exceed 255 characters.", messages.DescriptionMaxLength())
	assert.Equal(t, "The price field must be a valid positive number.", messages.PriceInvalid())
	assert.Equal(t, "The price field must not be greater than 999999999999.99.", messages.PriceTooLarge())
}

func TestGetAuthSharesUserMessages(t *testing.T) {
	assert.Equal(t, messages.EmailRequired(), messages.Get(messages.Auth, "email", messages.KindRequired))
	assert.Equal(t, messages.PasswordSymbols(), messages.Get(messages.Auth, "password", messages.KindSymbols))
}

func TestGetUnknownKey(t *testing.T) {
	assert.Equal(t, "The color field is invalid.", messages.Get(messages.Expense, "color", messages.KindRequired))
}
