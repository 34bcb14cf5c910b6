package adaptor

import (
	"context"
	"errors"
	"net/http"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/usecase"
	"travel-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
	Summary *SummaryHandler
	Trip    *TripHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
		Summary: NewSummaryHandler(service.Summary, log),
		Trip:    NewTripHandler(service.Trip, log),
	}
}

// callerFromContext rebuilds the usecase caller from what the auth
// middleware stored. Second return is false when the request never
// passed authentication.
func callerFromContext(ctx context.Context) (usecase.Caller, bool) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return usecase.Caller{}, false
	}

	role, _ := utils.GetRoleFromContext(ctx)
	user := entity.User{Role: entity.UserRole(role)}

	return usecase.Caller{
		ID:      userID,
		IsStaff: user.IsStaff(),
	}, true
}

// handleServiceError maps the service error taxonomy onto HTTP status
// codes. Anything unrecognized is treated as internal.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		log.Warn(operation+" failed - unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Staff access required")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Resource not found")

	case errors.Is(err, usecase.ErrInvalidProfitPercentage),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidServiceReference):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		var storageErr *usecase.StorageError
		if errors.As(err, &storageErr) {
			log.Error("Failed to "+operation,
				zap.Error(err),
				zap.String("storage_op", storageErr.Op))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}

		// Validation and parse errors from the services.
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
	}
}
