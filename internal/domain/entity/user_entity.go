package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash and is never rendered.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User columns that callers may address by name.
const (
	UserColumnID        = "id"
	UserColumnName      = "name"
	UserColumnEmail     = "email"
	UserColumnPassword  = "password"
	UserColumnCreatedAt = "created_at"
	UserColumnUpdatedAt = "updated_at"
)

// UserFillable lists the columns a client may set and search by.
var UserFillable = []string{UserColumnName, UserColumnEmail, UserColumnPassword}

// UserColumns lists every selectable column.
var UserColumns = []string{
	UserColumnID, UserColumnName, UserColumnEmail, UserColumnPassword,
	UserColumnCreatedAt, UserColumnUpdatedAt,
}

func IsUserFillable(column string) bool {
	for _, c := range UserFillable {
		if c == column {
			return true
		}
	}
	return false
}
