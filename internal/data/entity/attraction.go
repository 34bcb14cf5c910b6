package entity

import (
	"github.com/google/uuid"
)

type Attraction struct {
	Base
	Name           string     `db:"name"`
	Location       string     `db:"location"`
	Description    *string    `db:"description"`
	PricePerPerson float64    `db:"price_per_person"`
	CreatedBy      *uuid.UUID `db:"created_by"`
}
