package response

// SummaryItemResponse is one priced booking line. Profit fields are
// only present on staff views.
type SummaryItemResponse struct {
	BookingID        string   `json:"booking_id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Price            float64  `json:"price"`
	ProfitPercentage *float64 `json:"profit_percentage,omitempty"`
	PriceWithProfit  *float64 `json:"price_with_profit,omitempty"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
}

// SummaryResponse is recomputed in full on every read; nothing here is
// ever persisted. For non-staff callers TotalWithProfit equals Subtotal.
type SummaryResponse struct {
	Items           []SummaryItemResponse `json:"items"`
	Subtotal        float64               `json:"subtotal"`
	TotalWithProfit float64               `json:"total_with_profit"`
}
