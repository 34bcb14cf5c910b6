package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/internal/dto/request"
	"travel-backoffice/internal/dto/response"
	"travel-backoffice/internal/pricing"
	"travel-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TripService manages planned trips and their per-unit additional
// items. All operations are staff only; trips are an internal
// planning tool, not a client surface.
type TripService interface {
	CreateTrip(ctx context.Context, caller Caller, req *request.CreateTripRequest) (*response.TripResponse, error)
	GetTrips(ctx context.Context, caller Caller) ([]response.TripResponse, error)
	GetTripRollup(ctx context.Context, caller Caller, tripID uuid.UUID) (*response.TripRollupResponse, error)
	UpdateTripStatus(ctx context.Context, caller Caller, tripID uuid.UUID, status entity.TripStatus) error
	UpdateTripProfit(ctx context.Context, caller Caller, tripID uuid.UUID, pct float64) (*response.TripRollupResponse, error)

	AddAdditional(ctx context.Context, caller Caller, tripID uuid.UUID, req *request.AddTripAdditionalRequest) (*response.TripAdditionalResponse, error)
	RemoveAdditional(ctx context.Context, caller Caller, additionalID uuid.UUID) error
}

type tripService struct {
	repo *repository.Repository // grouping trip + tripAdditional repos
	log  *zap.Logger
}

func NewTripService(repo *repository.Repository, log *zap.Logger) TripService {
	return &tripService{
		repo: repo,
		log:  log.With(zap.String("service", "trip")),
	}
}

func (s *tripService) staffGate(caller Caller) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}
	if !caller.IsStaff {
		return ErrForbidden
	}
	return nil
}

func (s *tripService) CreateTrip(ctx context.Context, caller Caller, req *request.CreateTripRequest) (*response.TripResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create trip validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	now := time.Now()
	trip := &entity.Trip{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CreatedBy:   caller.ID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      entity.TripStatusDraft,
	}

	if err := s.repo.Trip.Create(ctx, trip); err != nil {
		s.log.Error("Failed to create trip", zap.Error(err), zap.String("title", req.Title))
		return nil, storageErr("create trip", err)
	}

	s.log.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.String("title", trip.Title),
		zap.String("created_by", caller.ID.String()))

	resp := response.TripToResponse(trip, true)
	return &resp, nil
}

func (s *tripService) GetTrips(ctx context.Context, caller Caller) ([]response.TripResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}

	trips, err := s.repo.Trip.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list trips", zap.Error(err))
		return nil, storageErr("find trips", err)
	}

	responses := make([]response.TripResponse, len(trips))
	for i, trip := range trips {
		responses[i] = response.TripToResponse(trip, true)
	}
	return responses, nil
}

func (s *tripService) GetTripRollup(ctx context.Context, caller Caller, tripID uuid.UUID) (*response.TripRollupResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}

	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		s.log.Error("Failed to find trip", zap.Error(err), zap.String("trip_id", tripID.String()))
		return nil, storageErr("find trip", err)
	}
	if trip == nil {
		return nil, ErrNotFound
	}

	return s.buildRollup(ctx, trip)
}

func (s *tripService) UpdateTripStatus(ctx context.Context, caller Caller, tripID uuid.UUID, status entity.TripStatus) error {
	if err := s.staffGate(caller); err != nil {
		return err
	}

	switch status {
	case entity.TripStatusDraft, entity.TripStatusConfirmed, entity.TripStatusCompleted:
	default:
		return fmt.Errorf("invalid trip status %q", status)
	}

	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		return storageErr("find trip", err)
	}
	if trip == nil {
		return ErrNotFound
	}

	trip.Status = status
	trip.UpdatedAt = time.Now()

	if err := s.repo.Trip.Update(ctx, trip); err != nil {
		s.log.Error("Failed to update trip status",
			zap.Error(err), zap.String("trip_id", tripID.String()))
		return storageErr("update trip", err)
	}

	s.log.Info("Trip status updated",
		zap.String("trip_id", tripID.String()),
		zap.String("status", string(status)))
	return nil
}

func (s *tripService) UpdateTripProfit(ctx context.Context, caller Caller, tripID uuid.UUID, pct float64) (*response.TripRollupResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if !pricing.ValidProfitPercentage(pct) {
		s.log.Warn("Rejected trip profit percentage",
			zap.String("trip_id", tripID.String()),
			zap.Float64("pct", pct))
		return nil, ErrInvalidProfitPercentage
	}

	updated, err := s.repo.Trip.UpdateProfitPercentage(ctx, tripID, pct)
	if err != nil {
		s.log.Error("Failed to update trip profit",
			zap.Error(err), zap.String("trip_id", tripID.String()))
		return nil, storageErr("update trip profit percentage", err)
	}
	if !updated {
		return nil, ErrNotFound
	}

	s.log.Info("Trip profit percentage updated",
		zap.String("trip_id", tripID.String()),
		zap.Float64("profit_percentage", pct),
		zap.String("updated_by", caller.ID.String()))

	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		return nil, storageErr("find trip", err)
	}
	if trip == nil {
		return nil, ErrNotFound
	}

	return s.buildRollup(ctx, trip)
}

func (s *tripService) AddAdditional(ctx context.Context, caller Caller, tripID uuid.UUID, req *request.AddTripAdditionalRequest) (*response.TripAdditionalResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add trip additional validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		return nil, storageErr("find trip", err)
	}
	if trip == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	additional := &entity.TripAdditional{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TripID:       tripID,
		Name:         req.Name,
		Description:  req.Description,
		PricePerUnit: req.PricePerUnit,
		Units:        req.Units,
	}

	if err := s.repo.TripAdditional.Create(ctx, additional); err != nil {
		s.log.Error("Failed to add trip additional",
			zap.Error(err), zap.String("trip_id", tripID.String()))
		return nil, storageErr("create trip additional", err)
	}

	s.log.Info("Trip additional added",
		zap.String("trip_id", tripID.String()),
		zap.String("additional_id", additional.ID.String()),
		zap.String("name", additional.Name))

	resp := s.convertAdditional(additional)
	return &resp, nil
}

func (s *tripService) RemoveAdditional(ctx context.Context, caller Caller, additionalID uuid.UUID) error {
	if err := s.staffGate(caller); err != nil {
		return err
	}

	deleted, err := s.repo.TripAdditional.Delete(ctx, additionalID)
	if err != nil {
		s.log.Error("Failed to remove trip additional",
			zap.Error(err), zap.String("additional_id", additionalID.String()))
		return storageErr("delete trip additional", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info("Trip additional removed", zap.String("additional_id", additionalID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *tripService) buildRollup(ctx context.Context, trip *entity.Trip) (*response.TripRollupResponse, error) {
	additionals, err := s.repo.TripAdditional.FindByTripID(ctx, trip.ID)
	if err != nil {
		s.log.Error("Failed to load trip additionals",
			zap.Error(err), zap.String("trip_id", trip.ID.String()))
		return nil, storageErr("find trip additionals", err)
	}

	additionalResponses := make([]response.TripAdditionalResponse, len(additionals))
	var subtotal float64
	for i, additional := range additionals {
		resp := s.convertAdditional(additional)
		subtotal += resp.LineTotal
		additionalResponses[i] = resp
	}

	total := pricing.MarkedUp(subtotal, trip.ProfitPercentage)

	return &response.TripRollupResponse{
		Trip:            response.TripToResponse(trip, true),
		Additionals:     additionalResponses,
		Subtotal:        subtotal,
		TotalWithProfit: &total,
	}, nil
}

func (s *tripService) convertAdditional(additional *entity.TripAdditional) response.TripAdditionalResponse {
	return response.TripAdditionalResponse{
		ID:           additional.ID.String(),
		Name:         additional.Name,
		Description:  additional.Description,
		PricePerUnit: additional.PricePerUnit,
		Units:        additional.Units,
		LineTotal:    pricing.AdditionalPrice(additional.PricePerUnit, additional.Units),
	}
}
