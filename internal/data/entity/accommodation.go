package entity

import (
	"github.com/google/uuid"
)

type Accommodation struct {
	Base
	Name          string     `db:"name"`
	Location      string     `db:"location"`
	Description   *string    `db:"description"`
	PricePerNight float64    `db:"price_per_night"`
	CreatedBy     *uuid.UUID `db:"created_by"`
}
