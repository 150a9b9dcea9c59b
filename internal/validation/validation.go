package validation

import (
	"net/mail"
	"strings"
)

// Rule is one declarative check on a named body field.
type Rule struct {
	Param   string
	Message string
	Ok      func(value string) bool
}

// FieldError mirrors the wire shape of a failed check.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

func Required(param, message string) Rule {
	return Rule{
		Param:   param,
		Message: message,
		Ok: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
	}
}

func Email(param, message string) Rule {
	return Rule{
		Param:   param,
		Message: message,
		Ok: func(value string) bool {
			_, err := mail.ParseAddress(value)
			return err == nil
		},
	}
}

func MinLength(param string, min int, message string) Rule {
	return Rule{
		Param:   param,
		Message: message,
		Ok: func(value string) bool {
			return len(value) >= min
		},
	}
}

// Apply runs every rule against the field values and returns the failures
// in rule order. A nil result means the body passed.
func Apply(values map[string]string, rules ...Rule) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		if !r.Ok(values[r.Param]) {
			errs = append(errs, FieldError{Msg: r.Message, Param: r.Param})
		}
	}
	return errs
}
