package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-backoffice/internal/dto/request"
	"travel-backoffice/internal/pricing"
	"travel-backoffice/internal/usecase"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	service usecase.SummaryService
	log     *zap.Logger
}

func NewSummaryHandler(service usecase.SummaryService, log *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		service: service,
		log:     log.With(zap.String("handler", "summary")),
	}
}

// GetSummary handles GET /api/summary (protected)
// Staff may scope with ?client_id= and request a per-head figure with
// ?head_count=; both are ignored for non-staff callers.
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var clientID *uuid.UUID
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		id, err := utils.ParseUUID(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid client ID", nil)
			return
		}
		clientID = &id
	}

	summary, err := h.service.GetSummary(r.Context(), caller, clientID)
	if err != nil {
		handleServiceError(w, h.log, err, "get summary")
		return
	}

	// Per-head split is a staff display over a staff-entered head
	// count, not a stored figure.
	if caller.IsStaff {
		if headCount := utils.ParseInt(r.URL.Query().Get("head_count"), 0); headCount > 0 {
			perHead := pricing.PricePerHead(summary.TotalWithProfit, headCount)
			utils.ResponseSuccess(w, "success", map[string]any{
				"summary":        summary,
				"head_count":     headCount,
				"price_per_head": perHead,
			})
			return
		}
	}

	utils.ResponseSuccess(w, "success", summary)
}

// UpdateProfit handles PATCH /api/bookings/{id}/profit (staff)
func (h *SummaryHandler) UpdateProfit(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	var req request.UpdateProfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	summary, err := h.service.UpdateProfit(r.Context(), caller, bookingID, req.ProfitPercentage)
	if err != nil {
		handleServiceError(w, h.log, err, "update profit")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// DeleteBooking handles DELETE /api/bookings/{id} (staff)
func (h *SummaryHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	summary, err := h.service.DeleteBooking(r.Context(), caller, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}
