package mortgage

import (
	"errors"
	"math"
	"testing"
)

func TestResolveTerms(t *testing.T) {
	termGroup := OptionGroup{
		ID:   "term-length",
		Type: "radio",
		Options: []Option{
			{ID: "term-15", Value: 15},
			{ID: "term-30", Value: 30, Active: true},
		},
	}
	rateGroup := OptionGroup{
		ID:      "interest-rate",
		Type:    "radio",
		Options: RateOptions(6.5),
	}

	terms, err := ResolveTerms(termGroup, rateGroup)
	if err != nil {
		t.Fatalf("ResolveTerms() unexpected error = %v", err)
	}
	if terms.LoanTermYears != 30 {
		t.Errorf("LoanTermYears = %d, expected 30", terms.LoanTermYears)
	}
	if math.Abs(terms.InterestRate-6.5) > 0.001 {
		t.Errorf("InterestRate = %v, expected 6.5", terms.InterestRate)
	}
}

func TestResolveTermsFailsClosed(t *testing.T) {
	activeTerm := OptionGroup{Options: []Option{{ID: "term-30", Value: 30, Active: true}}}
	activeRate := OptionGroup{Options: RateOptions(6.5)}
	noActive := OptionGroup{Options: []Option{{ID: "orphan", Value: 7.0}}}

	tests := []struct {
		name      string
		termGroup OptionGroup
		rateGroup OptionGroup
		expected  error
	}{
		{"No active rate option", activeTerm, noActive, ErrUnresolvedRate},
		{"Empty rate group", activeTerm, OptionGroup{}, ErrUnresolvedRate},
		{"No active term option", noActive, activeRate, ErrUnresolvedTerm},
		{"Empty term group", OptionGroup{}, activeRate, ErrUnresolvedTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveTerms(tt.termGroup, tt.rateGroup)
			if !errors.Is(err, tt.expected) {
				t.Errorf("ResolveTerms() error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestRateOptions(t *testing.T) {
	options := RateOptions(6.5)
	if len(options) != 3 {
		t.Fatalf("RateOptions() returned %d options, expected 3", len(options))
	}

	expectedValues := []float64{6.3, 6.5, 6.7}
	for i, expected := range expectedValues {
		if math.Abs(options[i].Value-expected) > 0.001 {
			t.Errorf("option %d value = %v, expected %v", i, options[i].Value, expected)
		}
	}

	// Only the market option is active by default
	group := OptionGroup{Options: options}
	if group.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", group.ActiveCount())
	}
	active, ok := group.ActiveOption()
	if !ok || active.ID != "rate-market" {
		t.Errorf("ActiveOption() = %v, expected rate-market", active.ID)
	}
}

func TestRateOptionsFloorNeverNegative(t *testing.T) {
	options := RateOptions(0.1)
	if options[0].Value < 0 {
		t.Errorf("low option value = %v, expected non-negative", options[0].Value)
	}
}

func TestStaticRateSource(t *testing.T) {
	source := StaticRateSource{Rate: 6.25}
	rate, err := source.ReferenceRate()
	if err != nil {
		t.Fatalf("ReferenceRate() unexpected error = %v", err)
	}
	if math.Abs(rate-6.25) > 0.001 {
		t.Errorf("ReferenceRate() = %v, expected 6.25", rate)
	}

	_, err = StaticRateSource{}.ReferenceRate()
	if !errors.Is(err, ErrUnresolvedRate) {
		t.Errorf("unset rate source error = %v, expected ErrUnresolvedRate", err)
	}
}
