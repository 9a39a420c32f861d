// Package loans provides fixed-rate amortization math.
package loans

import (
	"math"

	"github.com/homeready/homeready/pkg/constants"
)

// MonthlyPayment calculates the monthly principal-and-interest payment for a
// loan using the standard amortization formula.
func MonthlyPayment(loanAmount, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 || loanAmount <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return loanAmount / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return loanAmount * periodicInterestRate / discountFactor
}

// FinanceableAmount inverts MonthlyPayment: it returns the loan amount whose
// monthly principal-and-interest payment equals monthlyPayment.
func FinanceableAmount(monthlyPayment, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 || monthlyPayment <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		return monthlyPayment * float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return monthlyPayment * discountFactor / periodicInterestRate
}
