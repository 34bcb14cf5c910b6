package entity

import (
	"github.com/google/uuid"
)

// TripAdditional is a per-unit extra billed against a trip.
// Line total is always PricePerUnit * Units, never stored.
type TripAdditional struct {
	Base
	TripID       uuid.UUID `db:"trip_id"`
	Name         string    `db:"name"`
	Description  *string   `db:"description"`
	PricePerUnit float64   `db:"price_per_unit"`
	Units        int       `db:"units"`
}
