package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-backoffice/internal/dto/request"
	"travel-backoffice/internal/usecase"
	"travel-backoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

func (h *CatalogHandler) callerAndID(w http.ResponseWriter, r *http.Request) (usecase.Caller, uuid.UUID, bool) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return usecase.Caller{}, uuid.Nil, false
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
		return usecase.Caller{}, uuid.Nil, false
	}

	return caller, id, true
}

// ==================== ACCOMMODATION ====================

// CreateAccommodation handles POST /api/accommodations (staff)
func (h *CatalogHandler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	accommodation, err := h.service.CreateAccommodation(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create accommodation")
		return
	}

	utils.ResponseCreated(w, "success", accommodation)
}

// GetAccommodations handles GET /api/accommodations (protected)
func (h *CatalogHandler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	accommodations, err := h.service.GetAccommodations(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list accommodations")
		return
	}

	utils.ResponseSuccess(w, "success", accommodations)
}

// UpdateAccommodation handles PUT /api/accommodations/{id} (staff)
func (h *CatalogHandler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	var req request.UpdateAccommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	accommodation, err := h.service.UpdateAccommodation(r.Context(), caller, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update accommodation")
		return
	}

	utils.ResponseSuccess(w, "success", accommodation)
}

// DeleteAccommodation handles DELETE /api/accommodations/{id} (staff)
func (h *CatalogHandler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAccommodation(r.Context(), caller, id); err != nil {
		handleServiceError(w, h.log, err, "delete accommodation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== TRANSPORTATION ====================

// CreateTransportation handles POST /api/transportations (staff)
func (h *CatalogHandler) CreateTransportation(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTransportationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	transportation, err := h.service.CreateTransportation(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create transportation")
		return
	}

	utils.ResponseCreated(w, "success", transportation)
}

// GetTransportations handles GET /api/transportations (protected)
func (h *CatalogHandler) GetTransportations(w http.ResponseWriter, r *http.Request) {
	transportations, err := h.service.GetTransportations(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list transportations")
		return
	}

	utils.ResponseSuccess(w, "success", transportations)
}

// UpdateTransportation handles PUT /api/transportations/{id} (staff)
func (h *CatalogHandler) UpdateTransportation(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	var req request.UpdateTransportationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	transportation, err := h.service.UpdateTransportation(r.Context(), caller, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update transportation")
		return
	}

	utils.ResponseSuccess(w, "success", transportation)
}

// DeleteTransportation handles DELETE /api/transportations/{id} (staff)
func (h *CatalogHandler) DeleteTransportation(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTransportation(r.Context(), caller, id); err != nil {
		handleServiceError(w, h.log, err, "delete transportation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ATTRACTION ====================

// CreateAttraction handles POST /api/attractions (staff)
func (h *CatalogHandler) CreateAttraction(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateAttractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	attraction, err := h.service.CreateAttraction(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create attraction")
		return
	}

	utils.ResponseCreated(w, "success", attraction)
}

// GetAttractions handles GET /api/attractions (protected)
func (h *CatalogHandler) GetAttractions(w http.ResponseWriter, r *http.Request) {
	attractions, err := h.service.GetAttractions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list attractions")
		return
	}

	utils.ResponseSuccess(w, "success", attractions)
}

// UpdateAttraction handles PUT /api/attractions/{id} (staff)
func (h *CatalogHandler) UpdateAttraction(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	var req request.UpdateAttractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	attraction, err := h.service.UpdateAttraction(r.Context(), caller, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update attraction")
		return
	}

	utils.ResponseSuccess(w, "success", attraction)
}

// DeleteAttraction handles DELETE /api/attractions/{id} (staff)
func (h *CatalogHandler) DeleteAttraction(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAttraction(r.Context(), caller, id); err != nil {
		handleServiceError(w, h.log, err, "delete attraction")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== MEAL ====================

// CreateMeal handles POST /api/meals (staff)
func (h *CatalogHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	meal, err := h.service.CreateMeal(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create meal")
		return
	}

	utils.ResponseCreated(w, "success", meal)
}

// GetMeals handles GET /api/meals (protected)
func (h *CatalogHandler) GetMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.service.GetMeals(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list meals")
		return
	}

	utils.ResponseSuccess(w, "success", meals)
}

// UpdateMeal handles PUT /api/meals/{id} (staff)
func (h *CatalogHandler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	var req request.UpdateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	meal, err := h.service.UpdateMeal(r.Context(), caller, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update meal")
		return
	}

	utils.ResponseSuccess(w, "success", meal)
}

// DeleteMeal handles DELETE /api/meals/{id} (staff)
func (h *CatalogHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteMeal(r.Context(), caller, id); err != nil {
		handleServiceError(w, h.log, err, "delete meal")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
