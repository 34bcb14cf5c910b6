package entity

import (
	"github.com/google/uuid"
)

// Transportation has no name column; the type field ("Bus", "Private car",
// "Domestic flight", ...) doubles as the display name.
type Transportation struct {
	Base
	Type           string     `db:"type"`
	Description    *string    `db:"description"`
	PricePerPerson float64    `db:"price_per_person"`
	CreatedBy      *uuid.UUID `db:"created_by"`
}
