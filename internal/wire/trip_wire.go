package wire

import (
	"travel-backoffice/internal/adaptor"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/pkg/middleware"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTrip(
	r chi.Router,
	tripHandler *adaptor.TripHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	// Trips are an internal planning surface, staff only.
	r.Route("/api/trips", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(repo.User, log))

		r.Post("/", tripHandler.CreateTrip)
		r.Get("/", tripHandler.GetTrips)
		r.Get("/{id}", tripHandler.GetTripRollup)
		r.Patch("/{id}/status", tripHandler.UpdateTripStatus)
		r.Patch("/{id}/profit", tripHandler.UpdateTripProfit)
		r.Post("/{id}/additionals", tripHandler.AddAdditional)
		r.Delete("/additionals/{id}", tripHandler.RemoveAdditional)
	})
}
