package validation

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps validator.Validate for echo.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements the echo.Validator interface.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Messages translates a validation error into one message per violated
// rule. Required and format violations use the caller's per-field message
// table; enum violations report the rejected value.
func Messages(err error, fieldMsgs map[string]string) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch {
		case fe.Tag() == "oneof":
			msgs = append(msgs, fmt.Sprintf("%v is not supported", fe.Value()))
		case fe.Tag() == "email" && fe.Value() != "":
			msgs = append(msgs, "Invalid email format")
		default:
			if m, ok := fieldMsgs[fe.Field()]; ok {
				msgs = append(msgs, m)
			} else {
				msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
			}
		}
	}
	return msgs
}

// Sanitize HTML-escapes a free-text field before it is persisted.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
