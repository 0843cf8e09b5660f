package validation

import (
	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
)

// Errors maps a field name to its messages, in rule evaluation order.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Empty() bool { return len(e) == 0 }

// Err returns a validation *apperror.Error, or nil when there is nothing to report.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return apperror.Validation(e)
}

// Presence selects between create/replace (Required) and partial update (Sometimes) rule sets.
type Presence int

const (
	Required Presence = iota
	Sometimes
)
