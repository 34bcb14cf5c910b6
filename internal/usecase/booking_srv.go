package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/internal/dto/request"
	"travel-backoffice/internal/dto/response"
	"travel-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Client endpoints (butuh auth)
	CreateBooking(ctx context.Context, caller Caller, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetMyBookings(ctx context.Context, caller Caller) ([]response.BookingResponse, error)

	// Staff endpoints
	GetAllBookings(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, caller Caller, bookingID uuid.UUID) (*response.BookingResponse, error)
	UpdateStatus(ctx context.Context, caller Caller, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingService struct {
	repo *repository.Repository // grouping booking + catalog repos
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, caller Caller, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse dates
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

	// Resolve the single service reference
	refs := 0
	for _, ref := range []*string{req.AccommodationID, req.TransportationID, req.AttractionID, req.MealID} {
		if ref != nil {
			refs++
		}
	}
	if refs != 1 {
		return nil, ErrInvalidServiceReference
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ClientID:       caller.ID,
		StartDate:      startDate,
		EndDate:        endDate,
		NumberOfPeople: req.NumberOfPeople,
		Status:         entity.BookingStatusPending,
	}

	// Check the referenced offering masih ada
	switch {
	case req.AccommodationID != nil:
		id, err := utils.ParseUUID(*req.AccommodationID)
		if err != nil {
			return nil, fmt.Errorf("invalid accommodation ID format %s: %w", *req.AccommodationID, err)
		}
		offering, err := s.repo.Accommodation.FindByID(ctx, id)
		if err != nil {
			return nil, storageErr("find accommodation", err)
		}
		if offering == nil {
			return nil, ErrNotFound
		}
		booking.AccommodationID = &id
		booking.Accommodation = offering

	case req.TransportationID != nil:
		id, err := utils.ParseUUID(*req.TransportationID)
		if err != nil {
			return nil, fmt.Errorf("invalid transportation ID format %s: %w", *req.TransportationID, err)
		}
		offering, err := s.repo.Transportation.FindByID(ctx, id)
		if err != nil {
			return nil, storageErr("find transportation", err)
		}
		if offering == nil {
			return nil, ErrNotFound
		}
		booking.TransportationID = &id
		booking.Transportation = offering

	case req.AttractionID != nil:
		id, err := utils.ParseUUID(*req.AttractionID)
		if err != nil {
			return nil, fmt.Errorf("invalid attraction ID format %s: %w", *req.AttractionID, err)
		}
		offering, err := s.repo.Attraction.FindByID(ctx, id)
		if err != nil {
			return nil, storageErr("find attraction", err)
		}
		if offering == nil {
			return nil, ErrNotFound
		}
		booking.AttractionID = &id
		booking.Attraction = offering

	case req.MealID != nil:
		id, err := utils.ParseUUID(*req.MealID)
		if err != nil {
			return nil, fmt.Errorf("invalid meal ID format %s: %w", *req.MealID, err)
		}
		offering, err := s.repo.Meal.FindByID(ctx, id)
		if err != nil {
			return nil, storageErr("find meal", err)
		}
		if offering == nil {
			return nil, ErrNotFound
		}
		booking.MealID = &id
		booking.Meal = offering
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("client_id", caller.ID.String()),
		)
		return nil, storageErr("create booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("client_id", caller.ID.String()),
		zap.Int("number_of_people", booking.NumberOfPeople),
	)

	resp := response.BookingToResponse(booking, caller.IsStaff)
	return &resp, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, caller Caller) ([]response.BookingResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	bookings, err := s.repo.Booking.FindByClientID(ctx, caller.ID)
	if err != nil {
		s.log.Error("Failed to get client bookings",
			zap.Error(err), zap.String("client_id", caller.ID.String()))
		return nil, storageErr("find bookings by client", err)
	}

	return s.convertBookings(bookings, caller.IsStaff), nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !caller.IsStaff {
		return nil, ErrForbidden
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}

	bookings, err := s.repo.Booking.FindPage(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, storageErr("find booking page", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, storageErr("count bookings", err)
	}

	return response.NewPaginatedResponse(s.convertBookings(bookings, true), req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, caller Caller, bookingID uuid.UUID) (*response.BookingResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to get booking",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, storageErr("find booking", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	// Clients hanya boleh lihat booking milik sendiri.
	if !caller.IsStaff && booking.ClientID != caller.ID {
		return nil, ErrForbidden
	}

	resp := response.BookingToResponse(booking, caller.IsStaff)
	return &resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, caller Caller, bookingID uuid.UUID, status entity.BookingStatus) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}
	if !caller.IsStaff {
		return ErrForbidden
	}

	switch status {
	case entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusCancelled:
	default:
		return fmt.Errorf("invalid booking status %q", status)
	}

	updated, err := s.repo.Booking.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
		return storageErr("update booking status", err)
	}
	if !updated {
		return ErrNotFound
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", string(status)),
		zap.String("updated_by", caller.ID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) convertBookings(bookings []*entity.Booking, includeProfit bool) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking, includeProfit)
	}
	return responses
}
