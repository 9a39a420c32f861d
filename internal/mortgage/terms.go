// Package mortgage resolves financing choices (term length, interest rate,
// down-payment percentage) from option groups and generates rate options
// around a reference market rate.
package mortgage

import (
	"errors"
	"fmt"
)

// Sentinel errors for unresolvable financing choices. The solver fails
// closed on these rather than proceeding with a silent default.
var (
	ErrUnresolvedRate = errors.New("no active interest rate option")
	ErrUnresolvedTerm = errors.New("no active loan term option")
)

// RateOptionSpread is the offset, in percentage points, of the alternative
// rate options generated around the reference market rate.
const RateOptionSpread = 0.2

// Option is a single financing choice within a group. Value carries the
// numeric meaning of the option (rate in percent, term in years, down
// payment in percent).
type Option struct {
	ID     string
	Label  string
	Value  float64
	Active bool
}

// OptionGroup is a radio-style grouping of financing options. The invariant
// is at most one active option per group; validation reports violations and
// resolution takes the first active option.
type OptionGroup struct {
	ID      string
	Name    string
	Type    string
	Options []Option
}

// ActiveOption returns the first active option in the group, or false when
// none is active.
func (g OptionGroup) ActiveOption() (Option, bool) {
	for _, option := range g.Options {
		if option.Active {
			return option, true
		}
	}
	return Option{}, false
}

// ActiveCount returns the number of active options in the group.
func (g OptionGroup) ActiveCount() int {
	count := 0
	for _, option := range g.Options {
		if option.Active {
			count++
		}
	}
	return count
}

// Terms holds the resolved financing selection.
type Terms struct {
	InterestRate  float64
	LoanTermYears int
}

// ResolveTerms resolves exactly one active term option and one active rate
// option from their groups. Either group unresolvable is fatal to the
// calculation.
func ResolveTerms(termGroup, rateGroup OptionGroup) (Terms, error) {
	termOption, ok := termGroup.ActiveOption()
	if !ok {
		return Terms{}, ErrUnresolvedTerm
	}
	rateOption, ok := rateGroup.ActiveOption()
	if !ok {
		return Terms{}, ErrUnresolvedRate
	}

	return Terms{
		InterestRate:  rateOption.Value,
		LoanTermYears: int(termOption.Value),
	}, nil
}

// RateOptions generates the presented interest-rate choices anchored to a
// reference market rate: the reference itself (active by default) plus
// alternatives 0.2 points below and above. The floor alternative never goes
// negative.
func RateOptions(referenceRate float64) []Option {
	lower := referenceRate - RateOptionSpread
	if lower < 0 {
		lower = 0
	}

	return []Option{
		{
			ID:    "rate-low",
			Label: fmt.Sprintf("%.2f%% (buy down)", lower),
			Value: lower,
		},
		{
			ID:     "rate-market",
			Label:  fmt.Sprintf("%.2f%% (market)", referenceRate),
			Value:  referenceRate,
			Active: true,
		},
		{
			ID:    "rate-high",
			Label: fmt.Sprintf("%.2f%% (lower closing costs)", referenceRate+RateOptionSpread),
			Value: referenceRate + RateOptionSpread,
		},
	}
}
