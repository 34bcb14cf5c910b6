package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a client's reservation against exactly one service offering.
// At most one of the four foreign keys is set; a booking whose referenced
// offering has been deleted simply produces no line item in summaries.
type Booking struct {
	BaseNoDelete
	ClientID         uuid.UUID     `db:"client_id"`
	StartDate        time.Time     `db:"start_date"`
	EndDate          time.Time     `db:"end_date"`
	NumberOfPeople   int           `db:"number_of_people"`
	Status           BookingStatus `db:"status"`
	ProfitPercentage *float64      `db:"profit_percentage"`

	AccommodationID  *uuid.UUID `db:"accommodation_id"`
	TransportationID *uuid.UUID `db:"transportation_id"`
	AttractionID     *uuid.UUID `db:"attraction_id"`
	MealID           *uuid.UUID `db:"meal_id"`

	// Joined offering rows, populated by the booking repository.
	// Nil when the reference is unset or the offering row is gone.
	Accommodation  *Accommodation  `db:"-"`
	Transportation *Transportation `db:"-"`
	Attraction     *Attraction     `db:"-"`
	Meal           *Meal           `db:"-"`
}
