package wire

import (
	"travel-backoffice/internal/adaptor"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/pkg/middleware"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Create new booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/mine - Own booking history
		r.Get("/api/bookings/mine", bookingHandler.GetMyBookings)

		// GET /api/bookings/{id} - Single booking (clients only see
		// their own; service enforces this)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(repo.User, log))

		// GET /api/bookings - All bookings across clients
		r.Get("/api/bookings", bookingHandler.GetAllBookings)

		// PATCH /api/bookings/{id}/status - Update booking status
		r.Patch("/api/bookings/{id}/status", bookingHandler.UpdateStatus)
	})
}
