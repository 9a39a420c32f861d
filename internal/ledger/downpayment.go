package ledger

// DownPaymentTotal sums the amounts of active one-time items in the given
// down-payment-source categories. Down-payment capital is inherently a lump
// sum, so active items with any other frequency are skipped here; they are
// reported as configuration warnings, not errors.
func DownPaymentTotal(categories ...Category) float64 {
	total := 0.0
	for _, category := range categories {
		for _, item := range category.Items {
			if !item.Active || item.Frequency != FrequencyOneTime {
				continue
			}
			total += item.Amount
		}
	}
	return total
}

// MisconfiguredDownPaymentItems returns the labels of active items in
// down-payment-source categories whose frequency is not one-time.
func MisconfiguredDownPaymentItems(categories ...Category) []string {
	var labels []string
	for _, category := range categories {
		for _, item := range category.Items {
			if item.Active && item.Frequency != FrequencyOneTime {
				labels = append(labels, item.Label)
			}
		}
	}
	return labels
}
