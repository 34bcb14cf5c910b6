package request

type CreateTripRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=150"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type AddTripAdditionalRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Description  *string `json:"description,omitempty"`
	PricePerUnit float64 `json:"price_per_unit" validate:"required,gt=0"`
	Units        int     `json:"units" validate:"required,min=1"`
}

type UpdateTripProfitRequest struct {
	ProfitPercentage float64 `json:"profit_percentage"`
}
