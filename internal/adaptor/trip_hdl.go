package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/dto/request"
	"travel-backoffice/internal/usecase"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TripHandler struct {
	service usecase.TripService
	log     *zap.Logger
}

func NewTripHandler(service usecase.TripService, log *zap.Logger) *TripHandler {
	return &TripHandler{
		service: service,
		log:     log.With(zap.String("handler", "trip")),
	}
}

// CreateTrip handles POST /api/trips (staff)
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	trip, err := h.service.CreateTrip(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create trip")
		return
	}

	utils.ResponseCreated(w, "success", trip)
}

// GetTrips handles GET /api/trips (staff)
func (h *TripHandler) GetTrips(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	trips, err := h.service.GetTrips(r.Context(), caller)
	if err != nil {
		handleServiceError(w, h.log, err, "list trips")
		return
	}

	utils.ResponseSuccess(w, "success", trips)
}

// GetTripRollup handles GET /api/trips/{id} (staff)
func (h *TripHandler) GetTripRollup(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tripID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid trip ID", nil)
		return
	}

	rollup, err := h.service.GetTripRollup(r.Context(), caller, tripID)
	if err != nil {
		handleServiceError(w, h.log, err, "get trip rollup")
		return
	}

	utils.ResponseSuccess(w, "success", rollup)
}

// UpdateTripStatus handles PATCH /api/trips/{id}/status (staff)
func (h *TripHandler) UpdateTripStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tripID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid trip ID", nil)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateTripStatus(r.Context(), caller, tripID, entity.TripStatus(req.Status)); err != nil {
		handleServiceError(w, h.log, err, "update trip status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// UpdateTripProfit handles PATCH /api/trips/{id}/profit (staff)
func (h *TripHandler) UpdateTripProfit(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tripID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid trip ID", nil)
		return
	}

	var req request.UpdateTripProfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rollup, err := h.service.UpdateTripProfit(r.Context(), caller, tripID, req.ProfitPercentage)
	if err != nil {
		handleServiceError(w, h.log, err, "update trip profit")
		return
	}

	utils.ResponseSuccess(w, "success", rollup)
}

// AddAdditional handles POST /api/trips/{id}/additionals (staff)
func (h *TripHandler) AddAdditional(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tripID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid trip ID", nil)
		return
	}

	var req request.AddTripAdditionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	additional, err := h.service.AddAdditional(r.Context(), caller, tripID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add trip additional")
		return
	}

	utils.ResponseCreated(w, "success", additional)
}

// RemoveAdditional handles DELETE /api/trips/additionals/{id} (staff)
func (h *TripHandler) RemoveAdditional(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	additionalID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid additional ID", nil)
		return
	}

	if err := h.service.RemoveAdditional(r.Context(), caller, additionalID); err != nil {
		handleServiceError(w, h.log, err, "remove trip additional")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
