package config

import (
	"github.com/homeready/homeready/internal/engine"
	"github.com/homeready/homeready/internal/ledger"
	"github.com/homeready/homeready/internal/mortgage"
)

// BuildInputs assembles the canonical solver inputs from the profile: ledger
// aggregates, resolved financing terms, and policy knobs. The rate source
// supplies the reference market rate when the profile lists no explicit rate
// options; financing that cannot be resolved fails closed.
func (conf *Configuration) BuildInputs(rates mortgage.RateSource) (engine.Inputs, error) {
	var incomeCats, expenseCats, debtCats, futureIncomeCats, futureExpenseCats []ledger.Category
	for _, category := range conf.Categories {
		converted := category.toLedger()
		switch category.Kind {
		case KindIncome:
			incomeCats = append(incomeCats, converted)
		case KindFixedDebts:
			debtCats = append(debtCats, converted)
		case KindFutureIncome:
			futureIncomeCats = append(futureIncomeCats, converted)
		case KindFutureExpenses:
			futureExpenseCats = append(futureExpenseCats, converted)
		case KindHome:
			// prospective-home items are informational; the solver estimates
			// carrying costs from the property itself
		default:
			expenseCats = append(expenseCats, converted)
		}
	}

	income := ledger.SummarizeIncome(incomeCats...)

	referenceRate := conf.Mortgage.ReferenceRate
	rateGroup := conf.Mortgage.RateOptions.toMortgage()
	if len(rateGroup.Options) == 0 {
		if referenceRate == 0 && rates != nil {
			fetched, err := rates.ReferenceRate()
			if err != nil {
				return engine.Inputs{}, err
			}
			referenceRate = fetched
		}
		if referenceRate == 0 {
			return engine.Inputs{}, mortgage.ErrUnresolvedRate
		}
		rateGroup.Options = mortgage.RateOptions(referenceRate)
	}

	terms, err := mortgage.ResolveTerms(conf.Mortgage.TermOptions.toMortgage(), rateGroup)
	if err != nil {
		return engine.Inputs{}, err
	}

	downPaymentPct := conf.Policy.DownPaymentPercentage
	if option, ok := conf.Mortgage.DownPaymentPercentage.toMortgage().ActiveOption(); ok {
		downPaymentPct = option.Value
	}

	return engine.Inputs{
		GrossMonthlyIncome:        income.GrossMonthly,
		TakeHomeMonthlyIncome:     income.TakeHomeMonthly,
		MonthlyExpenses:           ledger.MonthlyTotal(expenseCats...),
		FixedDebts:                ledger.MonthlyTotal(debtCats...),
		DownPaymentSources:        ledger.DownPaymentTotal(conf.Mortgage.DownPaymentSources.toLedger()),
		InterestRate:              terms.InterestRate,
		LoanTermYears:             terms.LoanTermYears,
		CreditScore:               conf.Mortgage.CreditScore,
		HousingPercentage:         conf.Policy.HousingPercentage,
		DownPaymentPercentage:     downPaymentPct,
		FutureIncomeMonthly:       ledger.MonthlyTotal(futureIncomeCats...),
		FutureExpensesMonthly:     ledger.MonthlyTotal(futureExpenseCats...),
		ExcessDownPaymentStrategy: conf.Policy.ExcessDownPaymentStrategy,
		MarketReferenceRate:       referenceRate,
		InsuranceRatePct:          conf.Policy.InsuranceRatePct,
		PropertyTaxRatePct:        conf.Policy.PropertyTaxRatePct,
		DTIBasis:                  engine.Basis(conf.Policy.DTIBasis),
		DTIWarningThreshold:       conf.Policy.DTIWarningThreshold,
	}, nil
}

// EngineProperty converts the profile's property section, if any.
func (conf *Configuration) EngineProperty() *engine.Property {
	if conf.Property == nil {
		return nil
	}
	return &engine.Property{
		Price:              conf.Property.Price,
		PropertyTaxRatePct: conf.Property.PropertyTaxRatePct,
		Location:           conf.Property.Location,
		HOAMonthly:         conf.Property.HOAMonthly,
		InsuranceAnnual:    conf.Property.InsuranceAnnual,
	}
}

func (c Category) toLedger() ledger.Category {
	items := make([]ledger.Item, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ledger.Item{
			ID:                       item.ID,
			Label:                    item.Label,
			Amount:                   item.Amount,
			Type:                     ledger.ItemType(item.Type),
			Frequency:                ledger.Frequency(item.Frequency),
			Active:                   item.Active,
			Editable:                 item.Editable,
			IncomeEntry:              ledger.IncomeEntry(item.IncomeEntry),
			WithholdingTaxPct:        item.WithholdingTaxPct,
			Withholding401kPct:       item.Withholding401kPct,
			WithholdingHealthcarePct: item.WithholdingHealthcarePct,
			WithholdingHSAPct:        item.WithholdingHSAPct,
			WithholdingOtherPct:      item.WithholdingOtherPct,
		})
	}
	return ledger.Category{ID: c.ID, Name: c.Name, Type: c.Type, Items: items}
}

func (g OptionGroup) toMortgage() mortgage.OptionGroup {
	options := make([]mortgage.Option, 0, len(g.Options))
	for _, option := range g.Options {
		options = append(options, mortgage.Option{
			ID:     option.ID,
			Label:  option.Label,
			Value:  option.Value,
			Active: option.Active,
		})
	}
	return mortgage.OptionGroup{ID: g.ID, Name: g.Name, Type: g.Type, Options: options}
}
