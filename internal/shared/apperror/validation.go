package apperror

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ValidationError aggregates every failing field of a request into a single
// error. Fields preserves the order rules were declared in so repeated runs
// produce identical output.
type ValidationError struct {
	Fields []string            // declaration order
	Errors map[string][]string // field -> one or more messages
}

func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make(map[string][]string),
	}
}

// Add records a failing message for field. The first message for a field also
// registers it in the ordered field list.
func (v *ValidationError) Add(field, message string) {
	if _, seen := v.Errors[field]; !seen {
		v.Fields = append(v.Fields, field)
	}
	v.Errors[field] = append(v.Errors[field], message)
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(v.Fields, ", ")
}

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// InvalidFieldMessage builds the fallback "<Field> is invalid" message for
// rules that carry no dedicated wording.
func InvalidFieldMessage(field string) string {
	return formatFieldName(field) + " is invalid"
}
