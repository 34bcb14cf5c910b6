package response

import (
	"time"

	"travel-backoffice/internal/data/entity"
)

type BookingResponse struct {
	ID               string               `json:"id"`
	ClientID         string               `json:"client_id"`
	StartDate        string               `json:"start_date"`
	EndDate          string               `json:"end_date"`
	NumberOfPeople   int                  `json:"number_of_people"`
	Status           entity.BookingStatus `json:"status"`
	ServiceKind      entity.ServiceKind   `json:"service_kind,omitempty"`
	ServiceName      string               `json:"service_name,omitempty"`
	ProfitPercentage *float64             `json:"profit_percentage,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

// BookingToResponse flattens the joined offering row into display
// fields. includeProfit is false for client-facing views.
func BookingToResponse(booking *entity.Booking, includeProfit bool) BookingResponse {
	resp := BookingResponse{
		ID:             booking.ID.String(),
		ClientID:       booking.ClientID.String(),
		StartDate:      booking.StartDate.Format("2006-01-02"),
		EndDate:        booking.EndDate.Format("2006-01-02"),
		NumberOfPeople: booking.NumberOfPeople,
		Status:         booking.Status,
		CreatedAt:      booking.CreatedAt,
	}

	switch {
	case booking.Accommodation != nil:
		resp.ServiceKind = entity.KindAccommodation
		resp.ServiceName = booking.Accommodation.Name
	case booking.Transportation != nil:
		resp.ServiceKind = entity.KindTransportation
		resp.ServiceName = booking.Transportation.Type
	case booking.Attraction != nil:
		resp.ServiceKind = entity.KindAttraction
		resp.ServiceName = booking.Attraction.Name
	case booking.Meal != nil:
		resp.ServiceKind = entity.KindMeal
		resp.ServiceName = booking.Meal.Name
	}

	if includeProfit {
		resp.ProfitPercentage = booking.ProfitPercentage
	}

	return resp
}
