package config

// DefaultCategories returns the category set a fresh profile starts from.
// Every item is editable; users toggle and reprice them from there.
func DefaultCategories() []Category {
	return []Category{
		{
			ID:   "income",
			Name: "Income",
			Type: "input",
			Kind: KindIncome,
			Items: []Item{
				{
					ID: "salary", Label: "Salary", Amount: 0, Type: "income",
					Frequency: "annual", Active: true, Editable: true, IncomeEntry: "gross",
					WithholdingTaxPct: 22, Withholding401kPct: 6, WithholdingHealthcarePct: 2,
				},
				{
					ID: "partner-salary", Label: "Partner salary", Amount: 0, Type: "income",
					Frequency: "annual", Active: false, Editable: true, IncomeEntry: "gross",
					WithholdingTaxPct: 22, Withholding401kPct: 6, WithholdingHealthcarePct: 2,
				},
				{
					ID: "other-income", Label: "Other income", Amount: 0, Type: "income",
					Frequency: "monthly", Active: false, Editable: true, IncomeEntry: "net",
				},
			},
		},
		{
			ID:   "monthly-expenses",
			Name: "Monthly Expenses",
			Type: "input",
			Kind: KindExpenses,
			Items: []Item{
				{ID: "rent", Label: "Rent", Type: "expense", Frequency: "monthly", Active: true, Editable: true},
				{ID: "utilities", Label: "Utilities", Type: "expense", Frequency: "monthly", Active: true, Editable: true},
				{ID: "groceries", Label: "Groceries", Type: "expense", Frequency: "monthly", Active: true, Editable: true},
				{ID: "transportation", Label: "Transportation", Type: "expense", Frequency: "monthly", Active: true, Editable: true},
			},
		},
		{
			ID:   "annual-expenses",
			Name: "Annual Expenses",
			Type: "input",
			Kind: KindExpenses,
			Items: []Item{
				{ID: "car-insurance", Label: "Car insurance", Type: "expense", Frequency: "annual", Active: true, Editable: true},
				{ID: "vacation", Label: "Vacation", Type: "expense", Frequency: "annual", Active: false, Editable: true},
			},
		},
		{
			ID:   "fixed-debts",
			Name: "Fixed Debts",
			Type: "input",
			Kind: KindFixedDebts,
			Items: []Item{
				{ID: "car-payment", Label: "Car payment", Type: "expense", Frequency: "monthly", Active: false, Editable: true},
				{ID: "student-loans", Label: "Student loans", Type: "expense", Frequency: "monthly", Active: false, Editable: true},
				{ID: "credit-cards", Label: "Credit card minimums", Type: "expense", Frequency: "monthly", Active: false, Editable: true},
			},
		},
		{
			ID:   "future-income",
			Name: "Future Income",
			Type: "input",
			Kind: KindFutureIncome,
			Items: []Item{
				{ID: "expected-raise", Label: "Expected raise", Type: "income", Frequency: "annual", Active: false, Editable: true, IncomeEntry: "net"},
			},
		},
		{
			ID:   "home-expenses",
			Name: "Home-related Expenses",
			Type: "default",
			Kind: KindHome,
			Items: []Item{
				{ID: "maintenance", Label: "Maintenance reserve", Type: "info", Frequency: "monthly", Active: true, Editable: true},
				{ID: "hoa-estimate", Label: "HOA estimate", Type: "info", Frequency: "monthly", Active: false, Editable: true},
			},
		},
	}
}

// DefaultDownPaymentSources seeds the lump-sum funds available at closing.
func DefaultDownPaymentSources() Category {
	return Category{
		ID:   "down-payment-sources",
		Name: "Down Payment Sources",
		Type: "input",
		Items: []Item{
			{ID: "savings", Label: "Savings", Type: "income", Frequency: "one-time", Active: true, Editable: true},
			{ID: "investments", Label: "Investments to liquidate", Type: "income", Frequency: "one-time", Active: false, Editable: true},
			{ID: "gift", Label: "Family gift", Type: "income", Frequency: "one-time", Active: false, Editable: true},
		},
	}
}

// DefaultDownPaymentPercentages seeds the down-payment target choices.
func DefaultDownPaymentPercentages() OptionGroup {
	return OptionGroup{
		ID:   "down-payment-percentage",
		Name: "Down Payment Percentage",
		Type: "radio",
		Options: []Option{
			{ID: "dp-10", Label: "10%", Value: 10},
			{ID: "dp-15", Label: "15%", Value: 15},
			{ID: "dp-20", Label: "20%", Value: 20, Active: true},
		},
	}
}

// DefaultTermOptions seeds the loan term choices.
func DefaultTermOptions() OptionGroup {
	return OptionGroup{
		ID:   "term-length",
		Name: "Term Length",
		Type: "radio",
		Options: []Option{
			{ID: "term-15", Label: "15 years", Value: 15},
			{ID: "term-30", Label: "30 years", Value: 30, Active: true},
		},
	}
}
