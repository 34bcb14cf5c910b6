package usecase

import (
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Catalog CatalogService
	Booking BookingService
	Summary SummaryService
	Trip    TripService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Catalog: NewCatalogService(repo, log),
		Booking: NewBookingService(repo, log),
		Summary: NewSummaryService(repo.Booking, log),
		Trip:    NewTripService(repo, log),
	}
}
