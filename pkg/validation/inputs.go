// Package validation provides boundary validation for solver inputs.
package validation

import (
	"fmt"

	"github.com/homeready/homeready/pkg/constants"
)

// InputError reports an out-of-range or malformed numeric field. The field
// name is preserved so callers can surface the offending input instead of
// silently coercing it.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Message)
}

// NonNegative rejects negative values for fields that represent amounts.
func NonNegative(field string, value float64) error {
	if value < 0 {
		return &InputError{Field: field, Message: fmt.Sprintf("must not be negative, got %.2f", value)}
	}
	return nil
}

// Positive rejects zero and negative values for fields that must carry a
// real amount, such as a candidate property's price.
func Positive(field string, value float64) error {
	if value <= 0 {
		return &InputError{Field: field, Message: fmt.Sprintf("must be positive, got %.2f", value)}
	}
	return nil
}

// InterestRate checks an annual interest rate, in percent, against the
// accepted range.
func InterestRate(rate float64) error {
	if rate < constants.MinInterestRate || rate > constants.MaxInterestRate {
		return &InputError{
			Field: "interestRate",
			Message: fmt.Sprintf("must be between %.1f and %.1f percent, got %.2f",
				constants.MinInterestRate, constants.MaxInterestRate, rate),
		}
	}
	return nil
}

// LoanTerm checks a loan term in years.
func LoanTerm(years int) error {
	if years <= 0 {
		return &InputError{Field: "loanTerm", Message: fmt.Sprintf("must be positive, got %d", years)}
	}
	if years > constants.MaxLoanTermYears {
		return &InputError{
			Field:   "loanTerm",
			Message: fmt.Sprintf("must not exceed %d years, got %d", constants.MaxLoanTermYears, years),
		}
	}
	return nil
}

// Percentage checks a percentage field expected in the (0, 100] range.
func Percentage(field string, value float64) error {
	if value <= 0 || value > 100 {
		return &InputError{
			Field:   field,
			Message: fmt.Sprintf("must be greater than 0 and at most 100, got %.2f", value),
		}
	}
	return nil
}
