package wire

import (
	"travel-backoffice/internal/adaptor"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/pkg/middleware"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Public routes (tanpa auth middleware)
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/auth/logout", authHandler.Logout)
		r.Post("/api/auth/logout-all", authHandler.LogoutAll)
	})
}
