package wire

import (
	"travel-backoffice/internal/adaptor"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/pkg/middleware"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Get("/api/user/profile", userHandler.GetProfile)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(repo.User, log))

		r.Patch("/{id}/role", userHandler.UpdateRole)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
