package wire

import (
	"travel-backoffice/internal/adaptor"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/pkg/middleware"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSummary(
	r chi.Router,
	summaryHandler *adaptor.SummaryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// GET /api/summary - Priced booking summary. The service scopes
	// non-staff callers to their own bookings and strips profit fields.
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Get("/api/summary", summaryHandler.GetSummary)

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(repo.User, log))

		// PATCH /api/bookings/{id}/profit - Set per-booking profit
		r.Patch("/api/bookings/{id}/profit", summaryHandler.UpdateProfit)

		// DELETE /api/bookings/{id} - Remove a booking
		r.Delete("/api/bookings/{id}", summaryHandler.DeleteBooking)
	})
}
