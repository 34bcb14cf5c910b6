package entity

import (
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusConfirmed TripStatus = "confirmed"
	TripStatusCompleted TripStatus = "completed"
)

// Trip groups additional per-unit items (guide fees, permits, gifts, ...)
// that are sold outside the four catalog service kinds.
type Trip struct {
	Base
	CreatedBy        uuid.UUID  `db:"created_by"`
	Title            string     `db:"title"`
	Description      *string    `db:"description"`
	StartDate        time.Time  `db:"start_date"`
	EndDate          time.Time  `db:"end_date"`
	Status           TripStatus `db:"status"`
	ProfitPercentage *float64   `db:"profit_percentage"`
}
