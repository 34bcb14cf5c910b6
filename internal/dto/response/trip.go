package response

import (
	"travel-backoffice/internal/data/entity"
)

type TripResponse struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      *string           `json:"description,omitempty"`
	StartDate        string            `json:"start_date"`
	EndDate          string            `json:"end_date"`
	Status           entity.TripStatus `json:"status"`
	ProfitPercentage *float64          `json:"profit_percentage,omitempty"`
}

type TripAdditionalResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	PricePerUnit float64 `json:"price_per_unit"`
	Units        int     `json:"units"`
	LineTotal    float64 `json:"line_total"`
}

// TripRollupResponse aggregates a trip's additional items. The
// profit-adjusted total applies the trip-level percentage and is only
// present for staff.
type TripRollupResponse struct {
	Trip            TripResponse             `json:"trip"`
	Additionals     []TripAdditionalResponse `json:"additionals"`
	Subtotal        float64                  `json:"subtotal"`
	TotalWithProfit *float64                 `json:"total_with_profit,omitempty"`
}

// TripToResponse hides the profit percentage from non-staff callers.
func TripToResponse(trip *entity.Trip, includeProfit bool) TripResponse {
	resp := TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Description: trip.Description,
		StartDate:   trip.StartDate.Format("2006-01-02"),
		EndDate:     trip.EndDate.Format("2006-01-02"),
		Status:      trip.Status,
	}
	if includeProfit {
		resp.ProfitPercentage = trip.ProfitPercentage
	}
	return resp
}
