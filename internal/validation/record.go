package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// MaxTextLength bounds the free-text description on a record
const MaxTextLength = 4000

// FieldError names a single invalid field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// RecordErrors aggregates every problem found on a record
type RecordErrors []FieldError

func (e RecordErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "invalid record: " + strings.Join(msgs, "; ")
}

// ValidateRecord checks a state record before it is stored or exported.
// It returns nil or a RecordErrors listing every failed field.
func ValidateRecord(rec models.StateRecord) error {
	var errs RecordErrors

	if err := rec.Vector.Validate(); err != nil {
		errs = append(errs, FieldError{Field: "vector", Message: err.Error()})
	}

	if utf8.RuneCountInString(rec.Text) > MaxTextLength {
		errs = append(errs, FieldError{
			Field:   "text",
			Message: fmt.Sprintf("must be at most %d characters", MaxTextLength),
		})
	}

	if rec.Phase != "" && !validPhase(rec.Phase) {
		errs = append(errs, FieldError{
			Field:   "phase",
			Message: fmt.Sprintf("unknown phase %q", rec.Phase),
		})
	}

	if rec.Wellbeing < 0 || rec.Wellbeing > 1 {
		errs = append(errs, FieldError{
			Field:   "wellbeing",
			Message: "must be between 0 and 1",
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validPhase(phase string) bool {
	for _, p := range models.Phases {
		if p == phase {
			return true
		}
	}
	return false
}
