package request

// CreateBookingRequest carries exactly one service reference; the
// usecase rejects zero or multiple references.
type CreateBookingRequest struct {
	StartDate        string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate          string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	NumberOfPeople   int     `json:"number_of_people" validate:"required,min=1"`
	AccommodationID  *string `json:"accommodation_id,omitempty" validate:"omitempty,uuid4"`
	TransportationID *string `json:"transportation_id,omitempty" validate:"omitempty,uuid4"`
	AttractionID     *string `json:"attraction_id,omitempty" validate:"omitempty,uuid4"`
	MealID           *string `json:"meal_id,omitempty" validate:"omitempty,uuid4"`
}

type UpdateProfitRequest struct {
	ProfitPercentage float64 `json:"profit_percentage"`
}
