package loans

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name       string
		loanAmount float64
		rate       float64
		termMonths int
		expected   float64
		tolerance  float64
	}{
		{
			name:       "Standard 30-year mortgage at 6.5%",
			loanAmount: 320000,
			rate:       6.5,
			termMonths: 360,
			expected:   2022.62,
			tolerance:  0.5,
		},
		{
			name:       "15-year mortgage at 6.0%",
			loanAmount: 200000,
			rate:       6.0,
			termMonths: 180,
			expected:   1687.71,
			tolerance:  0.5,
		},
		{
			name:       "Zero interest falls back to straight-line",
			loanAmount: 120000,
			rate:       0,
			termMonths: 120,
			expected:   1000.00,
			tolerance:  0.001,
		},
		{
			name:       "Zero loan amount",
			loanAmount: 0,
			rate:       6.5,
			termMonths: 360,
			expected:   0,
			tolerance:  0.001,
		},
		{
			name:       "Non-positive term",
			loanAmount: 100000,
			rate:       6.5,
			termMonths: 0,
			expected:   0,
			tolerance:  0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.loanAmount, tt.rate, tt.termMonths)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("MonthlyPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestFinanceableAmountInvertsMonthlyPayment(t *testing.T) {
	tests := []struct {
		name       string
		loanAmount float64
		rate       float64
		termMonths int
	}{
		{"30-year at 6.5%", 320000, 6.5, 360},
		{"15-year at 4.0%", 250000, 4.0, 180},
		{"Zero rate", 120000, 0, 120},
		{"High rate", 100000, 18.0, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := MonthlyPayment(tt.loanAmount, tt.rate, tt.termMonths)
			recovered := FinanceableAmount(payment, tt.rate, tt.termMonths)
			if math.Abs(recovered-tt.loanAmount) > 0.01 {
				t.Errorf("FinanceableAmount(MonthlyPayment(%v)) = %.2f, expected %.2f",
					tt.loanAmount, recovered, tt.loanAmount)
			}
		})
	}
}

func TestFinanceableAmountEdgeCases(t *testing.T) {
	if got := FinanceableAmount(0, 6.5, 360); got != 0 {
		t.Errorf("FinanceableAmount with zero payment = %v, expected 0", got)
	}
	if got := FinanceableAmount(1500, 6.5, 0); got != 0 {
		t.Errorf("FinanceableAmount with zero term = %v, expected 0", got)
	}
	// Zero rate financeable amount is payment times term
	if got := FinanceableAmount(1000, 0, 120); math.Abs(got-120000) > 0.001 {
		t.Errorf("FinanceableAmount at 0%% = %v, expected 120000", got)
	}
}
