package engine

import (
	"fmt"

	"github.com/homeready/homeready/pkg/constants"
	"github.com/homeready/homeready/pkg/format"
	"github.com/homeready/homeready/pkg/mathutil"
)

// PropertyAffordability is the property-scoped simplification of a
// calculation, used when scoring a specific listing rather than solving for
// a price ceiling.
type PropertyAffordability struct {
	CanAfford           bool
	AffordabilityScore  float64
	MonthlyMargin       float64
	DTIRatio            float64
	MonthlyPayment      float64
	RequiredDownPayment float64
	DownPaymentStatus   DownPaymentStatus
	Constraints         []string
	Recommendations     []string
}

// ScoreProperty evaluates a specific property and condenses the result into
// a 0-100 affordability score. The score blends how the asking price sits
// against the affordability ceiling (70 points) with the monthly budget
// headroom at that price (30 points).
func (e *Engine) ScoreProperty(in Inputs, property Property) (*PropertyAffordability, error) {
	calc, err := e.Compute(in, &property)
	if err != nil {
		return nil, err
	}

	result := &PropertyAffordability{
		CanAfford:           calc.CanAfford,
		MonthlyMargin:       calc.MonthlyMargin,
		DTIRatio:            calc.DTIRatio,
		MonthlyPayment:      calc.Payment.Total,
		RequiredDownPayment: calc.RequiredDownPayment,
		DownPaymentStatus:   calc.DownPaymentStatus,
		Constraints:         calc.Constraints,
		Recommendations:     calc.Recommendations(),
	}

	if property.Price <= 0 || calc.TakeHomeMonthlyIncome <= 0 {
		return result, nil
	}

	priceFit := mathutil.Clamp(calc.MaxPurchasePrice/property.Price, 0, 1) * 70
	headroom := 0.0
	if calc.MaxMonthlyPayment > 0 {
		headroom = mathutil.Clamp(calc.MonthlyMargin/calc.MaxMonthlyPayment, 0, 1) * 30
	}
	result.AffordabilityScore = mathutil.Round(priceFit + headroom)

	return result, nil
}

// Recommendations derives actionable suggestions from a calculation's
// opportunity list plus the gap to the binding constraint.
func (c *Calculation) Recommendations() []string {
	recommendations := append([]string(nil), c.Opportunities...)

	if c.DownPaymentStatus == DownPaymentShortfall {
		recommendations = append(recommendations,
			fmt.Sprintf("saving another %s reaches the down-payment target", format.Currency(c.ShortfallAmount)))
	}
	if c.MonthlyMargin < -constants.PaymentComparisonTolerance && c.MaxPurchasePrice > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("listings at or below %s fit the current budget", format.Currency(c.MaxPurchasePrice)))
	}

	return recommendations
}
