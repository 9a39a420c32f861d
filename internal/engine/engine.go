// Package engine implements the affordability solver: it turns normalized
// ledger aggregates and financing terms into an affordability verdict. Every
// computation is a pure function over an input snapshot; results are
// recomputed wholesale on every input change, never patched in place.
package engine

import (
	"fmt"
	"math"

	"github.com/homeready/homeready/pkg/constants"
	"github.com/homeready/homeready/pkg/format"
	"github.com/homeready/homeready/pkg/loans"
	"github.com/homeready/homeready/pkg/mathutil"
	"github.com/homeready/homeready/pkg/taxrates"
	"github.com/homeready/homeready/pkg/validation"
	"go.uber.org/zap"
)

// Basis selects which income figure debt-to-income math is measured against.
// The chosen basis is applied uniformly within a calculation.
type Basis string

const (
	BasisGross    Basis = "gross"
	BasisTakeHome Basis = "takeHome"
)

// Inputs is the canonical, normalized input to the solver. Callers are
// responsible for producing it from a validated ledger; the solver assumes
// non-negative numeric fields and rejects out-of-range values up front.
type Inputs struct {
	GrossMonthlyIncome    float64
	TakeHomeMonthlyIncome float64
	MonthlyExpenses       float64
	FixedDebts            float64
	DownPaymentSources    float64
	InterestRate          float64 // annual, percent
	LoanTermYears         int
	CreditScore           int

	HousingPercentage     float64
	DownPaymentPercentage float64
	FutureIncomeMonthly   float64
	FutureExpensesMonthly float64

	// ExcessDownPaymentStrategy records what surplus down-payment funds
	// should go toward (e.g. "reduce-loan", "reserves").
	ExcessDownPaymentStrategy string

	MarketReferenceRate float64

	// InsuranceRatePct estimates the annual homeowner's insurance premium as
	// a percentage of price.
	InsuranceRatePct float64

	// PropertyTaxRatePct is the annual property tax rate used when the
	// property itself carries neither a rate nor a known location.
	PropertyTaxRatePct float64

	DTIBasis            Basis
	DTIWarningThreshold float64
}

// applyDefaults fills unset policy knobs from the package defaults.
func (in *Inputs) applyDefaults() {
	if in.HousingPercentage == 0 {
		in.HousingPercentage = constants.DefaultHousingPercentage
	}
	if in.DownPaymentPercentage == 0 {
		in.DownPaymentPercentage = constants.DefaultDownPaymentPercentage
	}
	if in.InsuranceRatePct == 0 {
		in.InsuranceRatePct = constants.DefaultInsuranceRatePct
	}
	if in.DTIBasis == "" {
		in.DTIBasis = BasisGross
	}
	if in.DTIWarningThreshold == 0 {
		in.DTIWarningThreshold = constants.DefaultDTIWarningThreshold
	}
}

// Validate rejects out-of-range inputs before they reach the amortization
// math. Errors carry the offending field.
func (in Inputs) Validate() error {
	checks := []error{
		validation.NonNegative("grossMonthlyIncome", in.GrossMonthlyIncome),
		validation.NonNegative("takeHomeMonthlyIncome", in.TakeHomeMonthlyIncome),
		validation.NonNegative("monthlyExpenses", in.MonthlyExpenses),
		validation.NonNegative("fixedDebts", in.FixedDebts),
		validation.NonNegative("downPaymentSources", in.DownPaymentSources),
		validation.NonNegative("futureIncomeMonthly", in.FutureIncomeMonthly),
		validation.NonNegative("futureExpensesMonthly", in.FutureExpensesMonthly),
		validation.InterestRate(in.InterestRate),
		validation.LoanTerm(in.LoanTermYears),
		validation.Percentage("housingPercentage", in.HousingPercentage),
		validation.Percentage("downPaymentPercentage", in.DownPaymentPercentage),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Property is a target or candidate home. The solver uses Price and the tax
// rate (direct or via location); the remaining fields feed the payment
// estimate when present.
type Property struct {
	Price              float64
	PropertyTaxRatePct float64
	Location           string
	HOAMonthly         float64
	InsuranceAnnual    float64
}

// DownPaymentStatus classifies available down-payment funds against the
// required amount for a price.
type DownPaymentStatus string

const (
	DownPaymentOnTarget  DownPaymentStatus = "on-target"
	DownPaymentExcess    DownPaymentStatus = "excess"
	DownPaymentShortfall DownPaymentStatus = "shortfall"
)

// PaymentBreakdown splits a monthly housing payment into its components.
type PaymentBreakdown struct {
	PrincipalAndInterest float64
	PropertyTax          float64
	Insurance            float64
	HOA                  float64
	Total                float64
}

// Calculation is the authoritative affordability result. It is recomputed
// from scratch for every input change.
type Calculation struct {
	Price                   float64
	MaxPurchasePrice        float64
	MaxPriceFromIncome      float64
	MaxPriceFromDownPayment float64

	LoanAmount          float64
	RequiredDownPayment float64
	DownPaymentSources  float64
	DownPaymentStatus   DownPaymentStatus
	ExcessAmount        float64
	ShortfallAmount     float64

	GrossMonthlyIncome    float64
	TakeHomeMonthlyIncome float64
	MaxMonthlyPayment     float64
	Payment               PaymentBreakdown
	MonthlyMargin         float64

	// ResidualCashflow is what remains of take-home income each month after
	// living expenses, fixed debts, and the housing payment.
	ResidualCashflow float64

	// DTIRatio is positive infinity when the basis income is zero; use
	// DTIDefined before formatting it.
	DTIRatio  float64
	CanAfford bool

	Converged  bool
	Iterations int

	Constraints   []string
	Opportunities []string
}

// DTIDefined reports whether the debt-to-income ratio is a finite number.
func (c *Calculation) DTIDefined() bool {
	return !math.IsInf(c.DTIRatio, 1) && !math.IsNaN(c.DTIRatio)
}

// Engine computes affordability verdicts. It is stateless apart from its
// collaborators and safe to reuse across calculations.
type Engine struct {
	logger *zap.Logger
	taxes  *taxrates.Source
}

// New creates an Engine. A nil logger is replaced with a no-op logger and a
// nil tax source with the default table.
func New(logger *zap.Logger, taxes *taxrates.Source) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if taxes == nil {
		taxes = taxrates.NewSource()
	}
	return &Engine{logger: logger, taxes: taxes}
}

// Compute produces the affordability calculation for the given inputs. With
// a nil property it solves for the maximum affordable price; with a property
// it evaluates that property's price.
func (e *Engine) Compute(in Inputs, property *Property) (*Calculation, error) {
	in.applyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if property != nil {
		if err := validation.Positive("property.price", property.Price); err != nil {
			return nil, err
		}
	}

	takeHome := math.Max(0, in.TakeHomeMonthlyIncome+in.FutureIncomeMonthly-in.FutureExpensesMonthly)
	gross := in.GrossMonthlyIncome + in.FutureIncomeMonthly

	// The housing budget is capped both by the housing ratio and by what the
	// household actually has left after living expenses and fixed debts.
	residualCapacity := math.Max(0, takeHome-in.MonthlyExpenses-in.FixedDebts)
	maxMonthlyPayment := mathutil.Min(takeHome*in.HousingPercentage/constants.PercentageMultiplier, residualCapacity)

	taxRatePct := e.taxRateFor(in, property)
	carryRatePct := taxRatePct + in.InsuranceRatePct

	termMonths := in.LoanTermYears * constants.MonthsPerYear
	incomePrice, iterations, converged := e.maxPriceFromIncome(
		maxMonthlyPayment, in.InterestRate, termMonths, in.DownPaymentPercentage, carryRatePct)
	downPaymentPrice := in.DownPaymentSources / (in.DownPaymentPercentage / constants.PercentageMultiplier)

	// A fully cash-funded corner case leaves income unconstrained; the down
	// payment alone binds.
	if math.IsInf(incomePrice, 1) {
		incomePrice = downPaymentPrice
	}

	maxPurchasePrice := mathutil.Min(incomePrice, downPaymentPrice)

	price := maxPurchasePrice
	if property != nil {
		price = property.Price
	}

	calc := &Calculation{
		Price:                   mathutil.Round(price),
		MaxPurchasePrice:        mathutil.Round(maxPurchasePrice),
		MaxPriceFromIncome:      mathutil.Round(incomePrice),
		MaxPriceFromDownPayment: mathutil.Round(downPaymentPrice),
		DownPaymentSources:      in.DownPaymentSources,
		GrossMonthlyIncome:      mathutil.Round(gross),
		TakeHomeMonthlyIncome:   mathutil.Round(takeHome),
		MaxMonthlyPayment:       mathutil.Round(maxMonthlyPayment),
		Converged:               converged,
		Iterations:              iterations,
	}

	calc.RequiredDownPayment = mathutil.Round(price * in.DownPaymentPercentage / constants.PercentageMultiplier)
	calc.LoanAmount = mathutil.Round(math.Max(0, price-calc.RequiredDownPayment))

	calc.Payment = e.paymentBreakdown(price, calc.LoanAmount, in, property, taxRatePct)
	calc.MonthlyMargin = mathutil.Round(maxMonthlyPayment - calc.Payment.Total)
	calc.ResidualCashflow = mathutil.Round(takeHome - in.MonthlyExpenses - in.FixedDebts - calc.Payment.Total)

	calc.DTIRatio = dtiRatio(in.FixedDebts, calc.Payment.Total, basisIncome(in.DTIBasis, gross, takeHome))

	e.classifyDownPayment(calc)
	e.applyVerdict(calc, in, takeHome)

	e.logger.Debug("computed affordability",
		zap.String("op", "engine.Compute"),
		zap.Float64("price", calc.Price),
		zap.Float64("maxPurchasePrice", calc.MaxPurchasePrice),
		zap.Bool("canAfford", calc.CanAfford),
		zap.Bool("converged", calc.Converged),
	)

	return calc, nil
}

// taxRateFor resolves the annual property tax rate: the property's own rate
// wins, then its location via the rate table, then the profile-level rate,
// then the table default.
func (e *Engine) taxRateFor(in Inputs, property *Property) float64 {
	if property != nil {
		if property.PropertyTaxRatePct > 0 {
			return property.PropertyTaxRatePct
		}
		if property.Location != "" {
			return e.taxes.Rate(property.Location)
		}
	}
	if in.PropertyTaxRatePct > 0 {
		return in.PropertyTaxRatePct
	}
	return e.taxes.DefaultRate()
}

func (e *Engine) paymentBreakdown(price, loanAmount float64, in Inputs, property *Property, taxRatePct float64) PaymentBreakdown {
	termMonths := in.LoanTermYears * constants.MonthsPerYear

	breakdown := PaymentBreakdown{
		PrincipalAndInterest: mathutil.Round(loans.MonthlyPayment(loanAmount, in.InterestRate, termMonths)),
		PropertyTax:          mathutil.Round(price * taxRatePct / constants.PercentageMultiplier / constants.MonthsPerYear),
	}

	if property != nil && property.InsuranceAnnual > 0 {
		breakdown.Insurance = mathutil.Round(property.InsuranceAnnual / constants.MonthsPerYear)
	} else {
		breakdown.Insurance = mathutil.Round(price * in.InsuranceRatePct / constants.PercentageMultiplier / constants.MonthsPerYear)
	}
	if property != nil {
		breakdown.HOA = mathutil.Round(property.HOAMonthly)
	}

	breakdown.Total = mathutil.Round(breakdown.PrincipalAndInterest + breakdown.PropertyTax + breakdown.Insurance + breakdown.HOA)
	return breakdown
}

// basisIncome picks the income figure the DTI ratio is measured against.
func basisIncome(basis Basis, gross, takeHome float64) float64 {
	if basis == BasisTakeHome {
		return takeHome
	}
	return gross
}

// dtiRatio computes debt-to-income with the zero-income case mapped to
// positive infinity rather than NaN.
func dtiRatio(fixedDebts, housingPayment, income float64) float64 {
	if income <= 0 {
		return math.Inf(1)
	}
	return (fixedDebts + housingPayment) / income
}

func (e *Engine) classifyDownPayment(calc *Calculation) {
	difference := calc.DownPaymentSources - calc.RequiredDownPayment
	switch {
	case mathutil.WithinTolerance(calc.DownPaymentSources, calc.RequiredDownPayment, constants.DownPaymentStatusTolerance):
		calc.DownPaymentStatus = DownPaymentOnTarget
	case difference > 0:
		calc.DownPaymentStatus = DownPaymentExcess
		calc.ExcessAmount = mathutil.Round(difference)
	default:
		calc.DownPaymentStatus = DownPaymentShortfall
		calc.ShortfallAmount = mathutil.Round(-difference)
	}
}

// applyVerdict derives CanAfford and the constraint/opportunity lists from
// which limits bound and by how much.
func (e *Engine) applyVerdict(calc *Calculation, in Inputs, takeHome float64) {
	if takeHome <= 0 {
		calc.CanAfford = false
		calc.Constraints = append(calc.Constraints,
			"no take-home income is available; a purchase cannot be supported")
		return
	}

	if calc.MaxPriceFromIncome <= calc.MaxPriceFromDownPayment {
		calc.Constraints = append(calc.Constraints,
			fmt.Sprintf("income limits the purchase price to %s at %.0f%% of take-home pay",
				format.Currency(calc.MaxPriceFromIncome), in.HousingPercentage))
		calc.Opportunities = append(calc.Opportunities,
			fmt.Sprintf("down-payment funds could support up to %s; additional income would raise the ceiling",
				format.Currency(calc.MaxPriceFromDownPayment)))
	} else {
		calc.Constraints = append(calc.Constraints,
			fmt.Sprintf("down-payment funds limit the purchase price to %s at %.0f%% down",
				format.Currency(calc.MaxPriceFromDownPayment), in.DownPaymentPercentage))
		calc.Opportunities = append(calc.Opportunities,
			fmt.Sprintf("income could support up to %s; additional down-payment funds would raise the ceiling",
				format.Currency(calc.MaxPriceFromIncome)))
	}

	if !calc.Converged {
		calc.Constraints = append(calc.Constraints,
			"maximum price search did not converge within the iteration budget; the estimate is approximate")
	}

	if calc.DTIDefined() && calc.DTIRatio > in.DTIWarningThreshold {
		calc.Constraints = append(calc.Constraints,
			fmt.Sprintf("debt-to-income ratio %.0f%% exceeds the %.0f%% threshold",
				calc.DTIRatio*constants.PercentageMultiplier,
				in.DTIWarningThreshold*constants.PercentageMultiplier))
	}

	affordable := calc.MonthlyMargin >= -constants.PaymentComparisonTolerance

	switch calc.DownPaymentStatus {
	case DownPaymentShortfall:
		affordable = false
		calc.Constraints = append(calc.Constraints,
			fmt.Sprintf("down payment is short by %s for a %s purchase",
				format.Currency(calc.ShortfallAmount), format.Currency(calc.Price)))
	case DownPaymentExcess:
		note := fmt.Sprintf("down-payment funds exceed the requirement by %s", format.Currency(calc.ExcessAmount))
		if in.ExcessDownPaymentStrategy != "" {
			note += fmt.Sprintf(" (strategy: %s)", in.ExcessDownPaymentStrategy)
		}
		calc.Opportunities = append(calc.Opportunities, note)
	}

	if calc.ResidualCashflow < -constants.PaymentComparisonTolerance {
		affordable = false
		calc.Constraints = append(calc.Constraints,
			fmt.Sprintf("household cashflow runs %s short each month after expenses, debts, and the housing payment",
				format.Currency(-calc.ResidualCashflow)))
	}

	if calc.MonthlyMargin < -constants.PaymentComparisonTolerance {
		calc.Constraints = append(calc.Constraints,
			fmt.Sprintf("estimated monthly payment exceeds the housing budget by %s",
				format.Currency(-calc.MonthlyMargin)))
	} else if calc.MonthlyMargin > constants.PaymentComparisonTolerance {
		calc.Opportunities = append(calc.Opportunities,
			fmt.Sprintf("monthly housing budget has %s of headroom", format.Currency(calc.MonthlyMargin)))
	}

	calc.CanAfford = affordable
}
