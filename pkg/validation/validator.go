package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/go-expense-tracker/pkg/messages"
)

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// Init configures the validator used by Gin's binding.
// - Uses json/form tag names in errors.
// - Shares the same instance with the rule sets in this package.
func Init() {
	engineOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(tagName)
			engine = v
			return
		}
		engine = validator.New()
		engine.RegisterTagNameFunc(tagName)
	})
}

func validate() *validator.Validate {
	Init()
	return engine
}

func tagName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// ToDetails converts binding errors into a map[field][]message suitable for a validation response.
func ToDetails(err error) Errors {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return Errors{"payload": {messages.InvalidPayload}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(Errors, len(verrs))
		for _, fe := range verrs {
			out.Add(fe.Field(), formatFieldError(fe))
		}
		return out
	}

	return Errors{"payload": {messages.InvalidPayload}}
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "The " + field + " is required"
	case "email":
		return "The " + field + " field must be a valid e-mail."
	case "uuid", "uuid4":
		return "The " + field + " field must be a valid UUID."
	case "numeric", "number":
		return "The " + field + " field must be a valid number."
	case "min":
		if isNumberKind(fe.Kind()) {
			return "The " + field + " field must be at least " + param + "."
		}
		return "The " + field + " field must have a minimum of " + param + " characters."
	case "max":
		if isNumberKind(fe.Kind()) {
			return "The " + field + " field must not be greater than " + param + "."
		}
		return "The " + field + " field should not exceed " + param + " characters."
	case "gt":
		return "The " + field + " field must be greater than " + param + "."
	case "oneof":
		return "The " + field + " field must be one of: " + strings.Join(strings.Fields(param), ", ") + "."
	default:
		return "The " + field + " field is invalid."
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
