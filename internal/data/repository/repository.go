package repository

import (
	"travel-backoffice/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Session        SessionRepository
	Accommodation  AccommodationRepository
	Transportation TransportationRepository
	Attraction     AttractionRepository
	Meal           MealRepository
	Booking        BookingRepository
	Trip           TripRepository
	TripAdditional TripAdditionalRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Session:        NewSessionRepository(db, log),
		Accommodation:  NewAccommodationRepository(db, log),
		Transportation: NewTransportationRepository(db, log),
		Attraction:     NewAttractionRepository(db, log),
		Meal:           NewMealRepository(db, log),
		Booking:        NewBookingRepository(db, log),
		Trip:           NewTripRepository(db, log),
		TripAdditional: NewTripAdditionalRepository(db, log),
	}
}
