package pricing

// WithProfit returns the item price marked up by its own profit
// percentage. A missing percentage means no markup.
func WithProfit(item LineItem) float64 {
	var pct float64
	if item.ProfitPercentage != nil {
		pct = *item.ProfitPercentage
	}
	return item.Price * (1 + pct/100)
}

// TotalWithProfit sums per-item marked-up prices. Each booking carries
// its own percentage; there is no trip-wide percentage applied to the
// subtotal.
func TotalWithProfit(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += WithProfit(item)
	}
	return total
}

// PricePerHead splits a total across travelers. A head count of zero
// leaves the total untouched rather than dividing by zero.
func PricePerHead(total float64, headCount int) float64 {
	if headCount <= 0 {
		return total
	}
	return total / float64(headCount)
}

// ValidProfitPercentage bounds staff-entered markups to [0, 100].
func ValidProfitPercentage(pct float64) bool {
	return pct >= 0 && pct <= 100
}

// MarkedUp applies a percentage markup to an arbitrary amount; used for
// trip-level rollups where the percentage lives on the trip row.
func MarkedUp(amount float64, pct *float64) float64 {
	if pct == nil {
		return amount
	}
	return amount * (1 + *pct/100)
}
