// Package output provides utilities for formatting and displaying
// affordability results.
package output

import (
	"fmt"
	"strings"

	"github.com/homeready/homeready/internal/engine"
	"github.com/homeready/homeready/pkg/constants"
	"github.com/homeready/homeready/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable summary of a calculation.
func PrettyFormat(calc *engine.Calculation) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Affordability ---\n")
	_, _ = p.Printf("Evaluated price:        %s\n", format.Currency(calc.Price))
	_, _ = p.Printf("Maximum purchase price: %s\n", format.Currency(calc.MaxPurchasePrice))
	_, _ = p.Printf("  from income:          %s\n", format.Currency(calc.MaxPriceFromIncome))
	_, _ = p.Printf("  from down payment:    %s\n", format.Currency(calc.MaxPriceFromDownPayment))
	_, _ = p.Printf("Loan amount:            %s\n", format.Currency(calc.LoanAmount))
	_, _ = p.Printf("Required down payment:  %s (%s, have %s)\n",
		format.Currency(calc.RequiredDownPayment), calc.DownPaymentStatus,
		format.Currency(calc.DownPaymentSources))

	fmt.Printf("\n--- Monthly payment ---\n")
	_, _ = p.Printf("Principal & interest:   %s\n", format.Currency(calc.Payment.PrincipalAndInterest))
	_, _ = p.Printf("Property tax:           %s\n", format.Currency(calc.Payment.PropertyTax))
	_, _ = p.Printf("Insurance:              %s\n", format.Currency(calc.Payment.Insurance))
	if calc.Payment.HOA > 0 {
		_, _ = p.Printf("HOA:                    %s\n", format.Currency(calc.Payment.HOA))
	}
	_, _ = p.Printf("Total:                  %s (budget %s, margin %s)\n",
		format.Currency(calc.Payment.Total), format.Currency(calc.MaxMonthlyPayment),
		format.Currency(calc.MonthlyMargin))
	_, _ = p.Printf("Residual cashflow:      %s\n", format.Currency(calc.ResidualCashflow))

	fmt.Printf("\n--- Verdict ---\n")
	fmt.Printf("Can afford:             %t\n", calc.CanAfford)
	fmt.Printf("Debt-to-income ratio:   %s\n", dtiString(calc))
	if !calc.Converged {
		fmt.Printf("Note: price estimate did not fully converge\n")
	}

	if len(calc.Constraints) > 0 {
		fmt.Printf("\nConstraints:\n")
		for _, constraint := range calc.Constraints {
			fmt.Printf("  - %s\n", constraint)
		}
	}
	if len(calc.Opportunities) > 0 {
		fmt.Printf("\nOpportunities:\n")
		for _, opportunity := range calc.Opportunities {
			fmt.Printf("  - %s\n", opportunity)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(calc *engine.Calculation) {
	fmt.Printf(`"field","value"` + "\n")
	rows := []struct {
		field string
		value string
	}{
		{"price", format.NumericCurrency(calc.Price)},
		{"maxPurchasePrice", format.NumericCurrency(calc.MaxPurchasePrice)},
		{"maxPriceFromIncome", format.NumericCurrency(calc.MaxPriceFromIncome)},
		{"maxPriceFromDownPayment", format.NumericCurrency(calc.MaxPriceFromDownPayment)},
		{"loanAmount", format.NumericCurrency(calc.LoanAmount)},
		{"requiredDownPayment", format.NumericCurrency(calc.RequiredDownPayment)},
		{"downPaymentStatus", string(calc.DownPaymentStatus)},
		{"monthlyPrincipalAndInterest", format.NumericCurrency(calc.Payment.PrincipalAndInterest)},
		{"monthlyPropertyTax", format.NumericCurrency(calc.Payment.PropertyTax)},
		{"monthlyInsurance", format.NumericCurrency(calc.Payment.Insurance)},
		{"monthlyTotal", format.NumericCurrency(calc.Payment.Total)},
		{"monthlyMargin", format.NumericCurrency(calc.MonthlyMargin)},
		{"residualCashflow", format.NumericCurrency(calc.ResidualCashflow)},
		{"dtiRatio", dtiString(calc)},
		{"canAfford", fmt.Sprintf("%t", calc.CanAfford)},
		{"constraints", strings.Join(calc.Constraints, "; ")},
		{"opportunities", strings.Join(calc.Opportunities, "; ")},
	}
	for _, row := range rows {
		fmt.Printf("%q,%q\n", row.field, row.value)
	}
}

func dtiString(calc *engine.Calculation) string {
	if !calc.DTIDefined() {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", calc.DTIRatio*constants.PercentageMultiplier)
}
