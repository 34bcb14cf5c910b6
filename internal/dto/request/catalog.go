package request

type CreateAccommodationRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Location      string  `json:"location" validate:"required,min=2,max=100"`
	Description   *string `json:"description,omitempty"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
}

type UpdateAccommodationRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Location      string  `json:"location" validate:"required,min=2,max=100"`
	Description   *string `json:"description,omitempty"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
}

type CreateTransportationRequest struct {
	Type           string  `json:"type" validate:"required,min=2,max=100"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person" validate:"required,gt=0"`
}

type UpdateTransportationRequest struct {
	Type           string  `json:"type" validate:"required,min=2,max=100"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person" validate:"required,gt=0"`
}

type CreateAttractionRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Location       string  `json:"location" validate:"required,min=2,max=100"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person" validate:"required,gt=0"`
}

type UpdateAttractionRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Location       string  `json:"location" validate:"required,min=2,max=100"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person" validate:"required,gt=0"`
}

type CreateMealRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person" validate:"required,gt=0"`
}

type UpdateMealRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person" validate:"required,gt=0"`
}
