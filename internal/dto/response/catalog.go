package response

import (
	"travel-backoffice/internal/data/entity"
)

type AccommodationResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Description   *string `json:"description,omitempty"`
	PricePerNight float64 `json:"price_per_night"`
}

type TransportationResponse struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
}

type AttractionResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
}

type MealResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
}

func AccommodationToResponse(a *entity.Accommodation) AccommodationResponse {
	return AccommodationResponse{
		ID:            a.ID.String(),
		Name:          a.Name,
		Location:      a.Location,
		Description:   a.Description,
		PricePerNight: a.PricePerNight,
	}
}

func TransportationToResponse(t *entity.Transportation) TransportationResponse {
	return TransportationResponse{
		ID:             t.ID.String(),
		Type:           t.Type,
		Description:    t.Description,
		PricePerPerson: t.PricePerPerson,
	}
}

func AttractionToResponse(a *entity.Attraction) AttractionResponse {
	return AttractionResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		Location:       a.Location,
		Description:    a.Description,
		PricePerPerson: a.PricePerPerson,
	}
}

func MealToResponse(m *entity.Meal) MealResponse {
	return MealResponse{
		ID:             m.ID.String(),
		Name:           m.Name,
		Description:    m.Description,
		PricePerPerson: m.PricePerPerson,
	}
}
