// Package messages is the catalog of human readable messages returned to API clients.
// Messages are addressed by (entity, field, kind) so validation rules and services
// surface the same text for the same violation.
package messages

import "fmt"

// Field message templates
const (
	fieldRequired  = "The %s is required"
	fieldMinLength = "The %s field must have a minimum of %d characters."
	fieldMaxLength = "The %s field should not exceed %d characters."
	fieldType      = "The %s field must be a valid %s."
	fieldMaxValue  = "The %s field must not be greater than %s."

	recordAlreadyExists = "%s already exists"
)

// System messages
const (
	ResourceNotFound = "Resource not found"
	InvalidParameter = "Invalid parameter was given"
	GenericError     = "Something went wrong, please try again later"
	InvalidPayload   = "The request body must be valid JSON"
)

// Auth messages
const (
	InvalidCredentials = "Invalid credentials"
	Unauthorized       = "Unauthorized"
)

// Entities
const (
	User    = "user"
	Expense = "expense"
	Auth    = "auth"
)

// Kind identifies the violated rule.
type Kind string

const (
	KindRequired  Kind = "required"
	KindType      Kind = "type"
	KindMinLength Kind = "min"
	KindMaxLength Kind = "max"
	KindEmail     Kind = "email"
	KindUnique    Kind = "unique"
	KindNumbers   Kind = "numbers"
	KindSymbols   Kind = "symbols"
	KindMixedCase Kind = "mixed_case"
	KindInvalid   Kind = "invalid"
	KindMaxValue  Kind = "max_value"
)

// Length bounds shared by rules and messages.
const (
	MinNameLength        = 3
	MaxNameLength        = 255
	MinPasswordLength    = 8
	MaxDescriptionLength = 255
)

// MaxPrice is the largest accepted expense price.
const MaxPrice = "999999999999.99"

type key struct {
	entity string
	field  string
	kind   Kind
}

var catalog = map[key]string{
	{User, "name", KindRequired}:  fmt.Sprintf(fieldRequired, "name"),
	{User, "name", KindType}:      fmt.Sprintf(fieldType, "name", "string"),
	{User, "name", KindMinLength}: fmt.Sprintf(fieldMinLength, "name", MinNameLength),
	{User, "name", KindMaxLength}: fmt.Sprintf(fieldMaxLength, "name", MaxNameLength),

	{User, "email", KindRequired}: fmt.Sprintf(fieldRequired, "email"),
	{User, "email", KindType}:     fmt.Sprintf(fieldType, "email", "string"),
	{User, "email", KindEmail}:    fmt.Sprintf(fieldType, "email", "e-mail"),
	{User, "email", KindUnique}:   fmt.Sprintf(recordAlreadyExists, "email"),

	{User, "password", KindRequired}:  fmt.Sprintf(fieldRequired, "password"),
	{User, "password", KindType}:      fmt.Sprintf(fieldType, "password", "string"),
	{User, "password", KindMinLength}: fmt.Sprintf(fieldMinLength, "password", MinPasswordLength),
	{User, "password", KindNumbers}:   "The password field must contain at least one number.",
	{User, "password", KindSymbols}:   "The password field must contain at least one symbol.",
	{User, "password", KindMixedCase}: "The password field must contain at least one uppercase and one lowercase letter.",

	{Expense, "description", KindRequired}:  fmt.Sprintf(fieldRequired, "description"),
	{Expense, "description", KindType}:      fmt.Sprintf(fieldType, "description", "string"),
	{Expense, "description", KindMaxLength}: fmt.Sprintf(fieldMaxLength, "description", MaxDescriptionLength),

	{Expense, "price", KindRequired}: fmt.Sprintf(fieldRequired, "price"),
	{Expense, "price", KindType}:     fmt.Sprintf(fieldType, "price", "number"),
	{Expense, "price", KindInvalid}:  fmt.Sprintf(fieldType, "price", "positive number"),
	{Expense, "price", KindMaxValue}: fmt.Sprintf(fieldMaxValue, "price", MaxPrice),

	{Expense, "date", KindRequired}: fmt.Sprintf(fieldRequired, "date"),
	{Expense, "date", KindInvalid}:  dateInvalid,
	{Expense, "date", KindType}:     dateInvalid,
}

var dateInvalid = fmt.Sprintf(fieldType, "date", "date in the format YYYY-MM-DD HH:MM:SS and ensure it is not later than today's date")

// Get returns the message registered for (entity, field, kind).
// Auth payloads share the user field messages. Unknown keys fall back to a generic sentence.
func Get(entity, field string, kind Kind) string {
	if entity == Auth {
		entity = User
	}
	if msg, ok := catalog[key{entity, field, kind}]; ok {
		return msg
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}

func NameRequired() string       { return Get(User, "name", KindRequired) }
func NameMinLength() string      { return Get(User, "name", KindMinLength) }
func NameMaxLength() string      { return Get(User, "name", KindMaxLength) }
func EmailRequired() string      { return Get(User, "email", KindRequired) }
func EmailInvalid() string       { return Get(User, "email", KindEmail) }
func EmailAlreadyExists() string { return Get(User, "email", KindUnique) }
func PasswordRequired() string   { return Get(User, "password", KindRequired) }
func PasswordMinLength() string  { return Get(User, "password", KindMinLength) }
func PasswordNumbers() string    { return Get(User, "password", KindNumbers) }
func PasswordSymbols() string    { return Get(User, "password", KindSymbols) }
func PasswordMixedCase() string  { return Get(User, "password", KindMixedCase) }

func DescriptionRequired() string  { return Get(Expense, "description", KindRequired) }
func DescriptionMaxLength() string { return Get(Expense, "description", KindMaxLength) }
func DescriptionType() string      { return Get(Expense, "description", KindType) }
func PriceRequired() string        { return Get(Expense, "price", KindRequired) }
func PriceType() string            { return Get(Expense, "price", KindType) }
func PriceInvalid() string         { return Get(Expense, "price", KindInvalid) }
func PriceTooLarge() string        { return Get(Expense, "price", KindMaxValue) }
func DateRequired() string         { return Get(Expense, "date", KindRequired) }
func DateInvalid() string          { return Get(Expense, "date", KindInvalid) }
