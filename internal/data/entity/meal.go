package entity

import (
	"github.com/google/uuid"
)

type Meal struct {
	Base
	Name           string     `db:"name"`
	Description    *string    `db:"description"`
	PricePerPerson float64    `db:"price_per_person"`
	CreatedBy      *uuid.UUID `db:"created_by"`
}
