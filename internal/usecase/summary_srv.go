package usecase

import (
	"context"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/internal/dto/response"
	"travel-backoffice/internal/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SummaryService computes priced booking summaries on demand. Totals
// are never persisted; every call reprices from the stored bookings,
// so the result is idempotent for unchanged data.
type SummaryService interface {
	// GetSummary prices the visible bookings. Staff callers may scope
	// by clientID or pass nil for all bookings; non-staff callers
	// always get their own bookings, profit fields stripped.
	GetSummary(ctx context.Context, caller Caller, clientID *uuid.UUID) (*response.SummaryResponse, error)

	// UpdateProfit sets one booking's profit percentage and returns
	// the recomputed summary for that booking's client. Staff only.
	UpdateProfit(ctx context.Context, caller Caller, bookingID uuid.UUID, pct float64) (*response.SummaryResponse, error)

	// DeleteBooking removes one booking and returns the recomputed
	// summary for its client. Staff only.
	DeleteBooking(ctx context.Context, caller Caller, bookingID uuid.UUID) (*response.SummaryResponse, error)
}

type summaryService struct {
	bookingRepo repository.BookingRepository
	log         *zap.Logger
}

func NewSummaryService(bookingRepo repository.BookingRepository, log *zap.Logger) SummaryService {
	return &summaryService{
		bookingRepo: bookingRepo,
		log:         log.With(zap.String("service", "summary")),
	}
}

func (s *summaryService) GetSummary(ctx context.Context, caller Caller, clientID *uuid.UUID) (*response.SummaryResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}

	// Non-staff hanya boleh lihat booking milik sendiri.
	if !caller.IsStaff {
		own := caller.ID
		clientID = &own
	}

	bookings, err := s.fetchBookings(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return s.buildSummary(bookings, caller.IsStaff), nil
}

func (s *summaryService) UpdateProfit(ctx context.Context, caller Caller, bookingID uuid.UUID, pct float64) (*response.SummaryResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !caller.IsStaff {
		return nil, ErrForbidden
	}
	if !pricing.ValidProfitPercentage(pct) {
		s.log.Warn("Rejected profit percentage",
			zap.String("booking_id", bookingID.String()),
			zap.Float64("pct", pct))
		return nil, ErrInvalidProfitPercentage
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking for profit update",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, storageErr("find booking", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	updated, err := s.bookingRepo.UpdateProfitPercentage(ctx, bookingID, pct)
	if err != nil {
		s.log.Error("Failed to update profit percentage",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, storageErr("update profit percentage", err)
	}
	if !updated {
		// Booking hilang di antara find dan update.
		return nil, ErrNotFound
	}

	s.log.Info("Profit percentage updated",
		zap.String("booking_id", bookingID.String()),
		zap.Float64("profit_percentage", pct),
		zap.String("updated_by", caller.ID.String()))

	return s.GetSummary(ctx, caller, &booking.ClientID)
}

func (s *summaryService) DeleteBooking(ctx context.Context, caller Caller, bookingID uuid.UUID) (*response.SummaryResponse, error) {
	if !caller.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !caller.IsStaff {
		return nil, ErrForbidden
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking for delete",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, storageErr("find booking", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	deleted, err := s.bookingRepo.Delete(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to delete booking",
			zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, storageErr("delete booking", err)
	}
	if !deleted {
		return nil, ErrNotFound
	}

	s.log.Info("Booking deleted",
		zap.String("booking_id", bookingID.String()),
		zap.String("client_id", booking.ClientID.String()),
		zap.String("deleted_by", caller.ID.String()))

	return s.GetSummary(ctx, caller, &booking.ClientID)
}

// ==================== HELPER METHODS ====================

func (s *summaryService) fetchBookings(ctx context.Context, clientID *uuid.UUID) ([]*entity.Booking, error) {
	if clientID != nil {
		bookings, err := s.bookingRepo.FindByClientID(ctx, *clientID)
		if err != nil {
			s.log.Error("Failed to load client bookings",
				zap.Error(err), zap.String("client_id", clientID.String()))
			return nil, storageErr("find bookings by client", err)
		}
		return bookings, nil
	}

	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load bookings", zap.Error(err))
		return nil, storageErr("find all bookings", err)
	}
	return bookings, nil
}

func (s *summaryService) buildSummary(bookings []*entity.Booking, staff bool) *response.SummaryResponse {
	items := pricing.ToLineItems(bookings)
	subtotal := pricing.Subtotal(items)

	total := subtotal
	if staff {
		total = pricing.TotalWithProfit(items)
	}

	itemResponses := make([]response.SummaryItemResponse, len(items))
	for i, item := range items {
		itemResp := response.SummaryItemResponse{
			BookingID: item.BookingID.String(),
			Name:      item.Name,
			Type:      string(item.Kind),
			Price:     item.Price,
			StartDate: item.StartDate.Format("2006-01-02"),
			EndDate:   item.EndDate.Format("2006-01-02"),
		}
		if staff {
			itemResp.ProfitPercentage = item.ProfitPercentage
			withProfit := pricing.WithProfit(item)
			itemResp.PriceWithProfit = &withProfit
		}
		itemResponses[i] = itemResp
	}

	return &response.SummaryResponse{
		Items:           itemResponses,
		Subtotal:        subtotal,
		TotalWithProfit: total,
	}
}
