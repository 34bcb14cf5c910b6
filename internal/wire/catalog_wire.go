package wire

import (
	"travel-backoffice/internal/adaptor"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/pkg/middleware"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Catalog listings are readable by any authenticated user; prices
	// shown here are base rates, never profit-adjusted.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/accommodations", catalogHandler.GetAccommodations)
		r.Get("/api/transportations", catalogHandler.GetTransportations)
		r.Get("/api/attractions", catalogHandler.GetAttractions)
		r.Get("/api/meals", catalogHandler.GetMeals)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(repo.User, log))

		r.Post("/api/accommodations", catalogHandler.CreateAccommodation)
		r.Put("/api/accommodations/{id}", catalogHandler.UpdateAccommodation)
		r.Delete("/api/accommodations/{id}", catalogHandler.DeleteAccommodation)

		r.Post("/api/transportations", catalogHandler.CreateTransportation)
		r.Put("/api/transportations/{id}", catalogHandler.UpdateTransportation)
		r.Delete("/api/transportations/{id}", catalogHandler.DeleteTransportation)

		r.Post("/api/attractions", catalogHandler.CreateAttraction)
		r.Put("/api/attractions/{id}", catalogHandler.UpdateAttraction)
		r.Delete("/api/attractions/{id}", catalogHandler.DeleteAttraction)

		r.Post("/api/meals", catalogHandler.CreateMeal)
		r.Put("/api/meals/{id}", catalogHandler.UpdateMeal)
		r.Delete("/api/meals/{id}", catalogHandler.DeleteMeal)
	})
}
