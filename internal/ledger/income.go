package ledger

import "github.com/homeready/homeready/pkg/constants"

// IncomeSummary holds the normalized monthly income figures derived from the
// active income items of a ledger.
type IncomeSummary struct {
	GrossMonthly    float64
	TakeHomeMonthly float64
}

// SummarizeIncome computes gross and take-home monthly income from the active
// income items in the given categories. Gross-entry items are reduced by
// their clamped withholding sum; net-entry (or unset) items pass through
// unchanged. An all-inactive ledger yields zero for both figures, which is a
// valid state rather than an error.
func SummarizeIncome(categories ...Category) IncomeSummary {
	var summary IncomeSummary
	for _, category := range categories {
		for _, item := range category.Items {
			if !item.Active || item.Type != ItemIncome {
				continue
			}
			monthly := MonthlyAmount(item)
			summary.GrossMonthly += monthly
			if item.IncomeEntry == IncomeEntryGross {
				monthly *= 1 - WithholdingSum(item)/constants.PercentageMultiplier
			}
			summary.TakeHomeMonthly += monthly
		}
	}
	return summary
}
