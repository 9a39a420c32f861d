package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/homeready/homeready/internal/engine"
)

// CalculationResponse is the JSON-safe projection of a calculation. The
// debt-to-income ratio is a pointer so the zero-income infinity sentinel
// serializes as null instead of failing to encode.
type CalculationResponse struct {
	Price                   float64  `json:"price"`
	MaxPurchasePrice        float64  `json:"maxPurchasePrice"`
	MaxPriceFromIncome      float64  `json:"maxPriceFromIncome"`
	MaxPriceFromDownPayment float64  `json:"maxPriceFromDownPayment"`
	LoanAmount              float64  `json:"loanAmount"`
	RequiredDownPayment     float64  `json:"requiredDownPayment"`
	DownPaymentSources      float64  `json:"downPaymentSources"`
	DownPaymentStatus       string   `json:"downPaymentStatus"`
	ExcessAmount            float64  `json:"excessAmount,omitempty"`
	ShortfallAmount         float64  `json:"shortfallAmount,omitempty"`
	GrossMonthlyIncome      float64  `json:"grossMonthlyIncome"`
	TakeHomeMonthlyIncome   float64  `json:"takeHomeMonthlyIncome"`
	MaxMonthlyPayment       float64  `json:"maxMonthlyPayment"`
	MonthlyPayment          Payment  `json:"monthlyPayment"`
	MonthlyMargin           float64  `json:"monthlyMargin"`
	ResidualCashflow        float64  `json:"residualCashflow"`
	DTIRatio                *float64 `json:"dtiRatio"`
	CanAfford               bool     `json:"canAfford"`
	Converged               bool     `json:"converged"`
	Iterations              int      `json:"iterations"`
	Constraints             []string `json:"constraints,omitempty"`
	Opportunities           []string `json:"opportunities,omitempty"`
}

// Payment is the JSON projection of a monthly payment breakdown.
type Payment struct {
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	PropertyTax          float64 `json:"propertyTax"`
	Insurance            float64 `json:"insurance"`
	HOA                  float64 `json:"hoa,omitempty"`
	Total                float64 `json:"total"`
}

// NewCalculationResponse projects a calculation into its JSON-safe form.
func NewCalculationResponse(calc *engine.Calculation) CalculationResponse {
	response := CalculationResponse{
		Price:                   calc.Price,
		MaxPurchasePrice:        calc.MaxPurchasePrice,
		MaxPriceFromIncome:      calc.MaxPriceFromIncome,
		MaxPriceFromDownPayment: calc.MaxPriceFromDownPayment,
		LoanAmount:              calc.LoanAmount,
		RequiredDownPayment:     calc.RequiredDownPayment,
		DownPaymentSources:      calc.DownPaymentSources,
		DownPaymentStatus:       string(calc.DownPaymentStatus),
		ExcessAmount:            calc.ExcessAmount,
		ShortfallAmount:         calc.ShortfallAmount,
		GrossMonthlyIncome:      calc.GrossMonthlyIncome,
		TakeHomeMonthlyIncome:   calc.TakeHomeMonthlyIncome,
		MaxMonthlyPayment:       calc.MaxMonthlyPayment,
		MonthlyPayment: Payment{
			PrincipalAndInterest: calc.Payment.PrincipalAndInterest,
			PropertyTax:          calc.Payment.PropertyTax,
			Insurance:            calc.Payment.Insurance,
			HOA:                  calc.Payment.HOA,
			Total:                calc.Payment.Total,
		},
		MonthlyMargin:    calc.MonthlyMargin,
		ResidualCashflow: calc.ResidualCashflow,
		CanAfford:        calc.CanAfford,
		Converged:        calc.Converged,
		Iterations:       calc.Iterations,
		Constraints:      calc.Constraints,
		Opportunities:    calc.Opportunities,
	}
	if calc.DTIDefined() {
		ratio := calc.DTIRatio
		response.DTIRatio = &ratio
	}
	return response
}

// JSONFormat writes the calculation to standard output as indented JSON.
func JSONFormat(calc *engine.Calculation) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(NewCalculationResponse(calc)); err != nil {
		return fmt.Errorf("failed to encode calculation: %w", err)
	}
	return nil
}
