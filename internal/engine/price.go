package engine

import (
	"math"

	"github.com/homeready/homeready/pkg/constants"
	"github.com/homeready/homeready/pkg/loans"
	"go.uber.org/zap"
)

// maxPriceFromIncome solves for the highest price whose total monthly cost
// (principal and interest plus estimated tax and insurance) fits the housing
// budget. Because tax and insurance scale with price, the solve is a bounded
// fixed-point iteration: estimate the price, re-derive the carrying costs,
// re-derive the financeable amount, and repeat until the estimate moves less
// than the tolerance. On hitting the iteration cap the last estimate is
// returned with converged false rather than looping or failing.
func (e *Engine) maxPriceFromIncome(budget, annualRate float64, termMonths int, downPaymentPct, carryRatePct float64) (price float64, iterations int, converged bool) {
	if budget <= 0 {
		return 0, 0, true
	}

	// Monthly tax+insurance per dollar of price.
	carryPerDollar := carryRatePct / constants.PercentageMultiplier / constants.MonthsPerYear
	financedShare := 1 - downPaymentPct/constants.PercentageMultiplier

	if financedShare <= 0 {
		// All-cash purchase: only carrying costs draw on the budget.
		if carryPerDollar <= 0 {
			return math.Inf(1), 0, true
		}
		return budget / carryPerDollar, 1, true
	}

	for iterations = 1; iterations <= constants.MaxPriceSearchIterations; iterations++ {
		carryingCosts := price * carryPerDollar
		piBudget := math.Max(0, budget-carryingCosts)
		loanAmount := loans.FinanceableAmount(piBudget, annualRate, termMonths)
		newPrice := loanAmount / financedShare

		if math.Abs(newPrice-price) < constants.PriceSearchTolerance {
			return newPrice, iterations, true
		}
		price = newPrice
	}

	e.logger.Debug("price search exhausted iteration budget",
		zap.String("op", "engine.maxPriceFromIncome"),
		zap.Float64("lastEstimate", price),
		zap.Int("iterations", constants.MaxPriceSearchIterations),
	)
	return price, constants.MaxPriceSearchIterations, false
}
