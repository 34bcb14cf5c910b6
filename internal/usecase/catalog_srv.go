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

// CatalogService manages the four bookable service kinds. Reads are
// open to any authenticated user; mutations are staff only.
type CatalogService interface {
	CreateAccommodation(ctx context.Context, caller Caller, req *request.CreateAccommodationRequest) (*response.AccommodationResponse, error)
	GetAccommodations(ctx context.Context) ([]response.AccommodationResponse, error)
	UpdateAccommodation(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateAccommodationRequest) (*response.AccommodationResponse, error)
	DeleteAccommodation(ctx context.Context, caller Caller, id uuid.UUID) error

	CreateTransportation(ctx context.Context, caller Caller, req *request.CreateTransportationRequest) (*response.TransportationResponse, error)
	GetTransportations(ctx context.Context) ([]response.TransportationResponse, error)
	UpdateTransportation(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateTransportationRequest) (*response.TransportationResponse, error)
	DeleteTransportation(ctx context.Context, caller Caller, id uuid.UUID) error

	CreateAttraction(ctx context.Context, caller Caller, req *request.CreateAttractionRequest) (*response.AttractionResponse, error)
	GetAttractions(ctx context.Context) ([]response.AttractionResponse, error)
	UpdateAttraction(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateAttractionRequest) (*response.AttractionResponse, error)
	DeleteAttraction(ctx context.Context, caller Caller, id uuid.UUID) error

	CreateMeal(ctx context.Context, caller Caller, req *request.CreateMealRequest) (*response.MealResponse, error)
	GetMeals(ctx context.Context) ([]response.MealResponse, error)
	UpdateMeal(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateMealRequest) (*response.MealResponse, error)
	DeleteMeal(ctx context.Context, caller Caller, id uuid.UUID) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) staffGate(caller Caller) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}
	if !caller.IsStaff {
		return ErrForbidden
	}
	return nil
}

func (s *catalogService) validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Catalog validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	return nil
}

// ==================== ACCOMMODATION ====================

func (s *catalogService) CreateAccommodation(ctx context.Context, caller Caller, req *request.CreateAccommodationRequest) (*response.AccommodationResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	accommodation := &entity.Accommodation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Location:      req.Location,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		CreatedBy:     &caller.ID,
	}

	if err := s.repo.Accommodation.Create(ctx, accommodation); err != nil {
		s.log.Error("Failed to create accommodation", zap.Error(err), zap.String("name", req.Name))
		return nil, storageErr("create accommodation", err)
	}

	s.log.Info("Accommodation created",
		zap.String("id", accommodation.ID.String()),
		zap.String("name", accommodation.Name))

	resp := response.AccommodationToResponse(accommodation)
	return &resp, nil
}

func (s *catalogService) GetAccommodations(ctx context.Context) ([]response.AccommodationResponse, error) {
	accommodations, err := s.repo.Accommodation.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list accommodations", zap.Error(err))
		return nil, storageErr("find accommodations", err)
	}

	responses := make([]response.AccommodationResponse, len(accommodations))
	for i, a := range accommodations {
		responses[i] = response.AccommodationToResponse(a)
	}
	return responses, nil
}

func (s *catalogService) UpdateAccommodation(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateAccommodationRequest) (*response.AccommodationResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	accommodation, err := s.repo.Accommodation.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find accommodation", zap.Error(err), zap.String("id", id.String()))
		return nil, storageErr("find accommodation", err)
	}
	if accommodation == nil {
		return nil, ErrNotFound
	}

	accommodation.Name = req.Name
	accommodation.Location = req.Location
	accommodation.Description = req.Description
	accommodation.PricePerNight = req.PricePerNight
	accommodation.UpdatedAt = time.Now()

	if err := s.repo.Accommodation.Update(ctx, accommodation); err != nil {
		s.log.Error("Failed to update accommodation", zap.Error(err), zap.String("id", id.String()))
		return nil, storageErr("update accommodation", err)
	}

	resp := response.AccommodationToResponse(accommodation)
	return &resp, nil
}

func (s *catalogService) DeleteAccommodation(ctx context.Context, caller Caller, id uuid.UUID) error {
	if err := s.staffGate(caller); err != nil {
		return err
	}

	accommodation, err := s.repo.Accommodation.FindByID(ctx, id)
	if err != nil {
		return storageErr("find accommodation", err)
	}
	if accommodation == nil {
		return ErrNotFound
	}

	// Soft delete; existing bookings keep their reference and simply
	// drop out of future summaries.
	if err := s.repo.Accommodation.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete accommodation", zap.Error(err), zap.String("id", id.String()))
		return storageErr("delete accommodation", err)
	}

	s.log.Info("Accommodation deleted", zap.String("id", id.String()))
	return nil
}

// ==================== TRANSPORTATION ====================

func (s *catalogService) CreateTransportation(ctx context.Context, caller Caller, req *request.CreateTransportationRequest) (*response.TransportationResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	transportation := &entity.Transportation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:           req.Type,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		CreatedBy:      &caller.ID,
	}

	if err := s.repo.Transportation.Create(ctx, transportation); err != nil {
		s.log.Error("Failed to create transportation", zap.Error(err), zap.String("type", req.Type))
		return nil, storageErr("create transportation", err)
	}

	s.log.Info("Transportation created",
		zap.String("id", transportation.ID.String()),
		zap.String("type", transportation.Type))

	resp := response.TransportationToResponse(transportation)
	return &resp, nil
}

func (s *catalogService) GetTransportations(ctx context.Context) ([]response.TransportationResponse, error) {
	transportations, err := s.repo.Transportation.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list transportations", zap.Error(err))
		return nil, storageErr("find transportations", err)
	}

	responses := make([]response.TransportationResponse, len(transportations))
	for i, t := range transportations {
		responses[i] = response.TransportationToResponse(t)
	}
	return responses, nil
}

func (s *catalogService) UpdateTransportation(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateTransportationRequest) (*response.TransportationResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	transportation, err := s.repo.Transportation.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("find transportation", err)
	}
	if transportation == nil {
		return nil, ErrNotFound
	}

	transportation.Type = req.Type
	transportation.Description = req.Description
	transportation.PricePerPerson = req.PricePerPerson
	transportation.UpdatedAt = time.Now()

	if err := s.repo.Transportation.Update(ctx, transportation); err != nil {
		s.log.Error("Failed to update transportation", zap.Error(err), zap.String("id", id.String()))
		return nil, storageErr("update transportation", err)
	}

	resp := response.TransportationToResponse(transportation)
	return &resp, nil
}

func (s *catalogService) DeleteTransportation(ctx context.Context, caller Caller, id uuid.UUID) error {
	if err := s.staffGate(caller); err != nil {
		return err
	}

	transportation, err := s.repo.Transportation.FindByID(ctx, id)
	if err != nil {
		return storageErr("find transportation", err)
	}
	if transportation == nil {
		return ErrNotFound
	}

	if err := s.repo.Transportation.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete transportation", zap.Error(err), zap.String("id", id.String()))
		return storageErr("delete transportation", err)
	}

	s.log.Info("Transportation deleted", zap.String("id", id.String()))
	return nil
}

// ==================== ATTRACTION ====================

func (s *catalogService) CreateAttraction(ctx context.Context, caller Caller, req *request.CreateAttractionRequest) (*response.AttractionResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	attraction := &entity.Attraction{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Location:       req.Location,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		CreatedBy:      &caller.ID,
	}

	if err := s.repo.Attraction.Create(ctx, attraction); err != nil {
		s.log.Error("Failed to create attraction", zap.Error(err), zap.String("name", req.Name))
		return nil, storageErr("create attraction", err)
	}

	s.log.Info("Attraction created",
		zap.String("id", attraction.ID.String()),
		zap.String("name", attraction.Name))

	resp := response.AttractionToResponse(attraction)
	return &resp, nil
}

func (s *catalogService) GetAttractions(ctx context.Context) ([]response.AttractionResponse, error) {
	attractions, err := s.repo.Attraction.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list attractions", zap.Error(err))
		return nil, storageErr("find attractions", err)
	}

	responses := make([]response.AttractionResponse, len(attractions))
	for i, a := range attractions {
		responses[i] = response.AttractionToResponse(a)
	}
	return responses, nil
}

func (s *catalogService) UpdateAttraction(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateAttractionRequest) (*response.AttractionResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	attraction, err := s.repo.Attraction.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("find attraction", err)
	}
	if attraction == nil {
		return nil, ErrNotFound
	}

	attraction.Name = req.Name
	attraction.Location = req.Location
	attraction.Description = req.Description
	attraction.PricePerPerson = req.PricePerPerson
	attraction.UpdatedAt = time.Now()

	if err := s.repo.Attraction.Update(ctx, attraction); err != nil {
		s.log.Error("Failed to update attraction", zap.Error(err), zap.String("id", id.String()))
		return nil, storageErr("update attraction", err)
	}

	resp := response.AttractionToResponse(attraction)
	return &resp, nil
}

func (s *catalogService) DeleteAttraction(ctx context.Context, caller Caller, id uuid.UUID) error {
	if err := s.staffGate(caller); err != nil {
		return err
	}

	attraction, err := s.repo.Attraction.FindByID(ctx, id)
	if err != nil {
		return storageErr("find attraction", err)
	}
	if attraction == nil {
		return ErrNotFound
	}

	if err := s.repo.Attraction.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete attraction", zap.Error(err), zap.String("id", id.String()))
		return storageErr("delete attraction", err)
	}

	s.log.Info("Attraction deleted", zap.String("id", id.String()))
	return nil
}

// ==================== MEAL ====================

func (s *catalogService) CreateMeal(ctx context.Context, caller Caller, req *request.CreateMealRequest) (*response.MealResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	meal := &entity.Meal{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		CreatedBy:      &caller.ID,
	}

	if err := s.repo.Meal.Create(ctx, meal); err != nil {
		s.log.Error("Failed to create meal", zap.Error(err), zap.String("name", req.Name))
		return nil, storageErr("create meal", err)
	}

	s.log.Info("Meal created",
		zap.String("id", meal.ID.String()),
		zap.String("name", meal.Name))

	resp := response.MealToResponse(meal)
	return &resp, nil
}

func (s *catalogService) GetMeals(ctx context.Context) ([]response.MealResponse, error) {
	meals, err := s.repo.Meal.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list meals", zap.Error(err))
		return nil, storageErr("find meals", err)
	}

	responses := make([]response.MealResponse, len(meals))
	for i, m := range meals {
		responses[i] = response.MealToResponse(m)
	}
	return responses, nil
}

func (s *catalogService) UpdateMeal(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateMealRequest) (*response.MealResponse, error) {
	if err := s.staffGate(caller); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	meal, err := s.repo.Meal.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("find meal", err)
	}
	if meal == nil {
		return nil, ErrNotFound
	}

	meal.Name = req.Name
	meal.Description = req.Description
	meal.PricePerPerson = req.PricePerPerson
	meal.UpdatedAt = time.Now()

	if err := s.repo.Meal.Update(ctx, meal); err != nil {
		s.log.Error("Failed to update meal", zap.Error(err), zap.String("id", id.String()))
		return nil, storageErr("update meal", err)
	}

	resp := response.MealToResponse(meal)
	return &resp, nil
}

func (s *catalogService) DeleteMeal(ctx context.Context, caller Caller, id uuid.UUID) error {
	if err := s.staffGate(caller); err != nil {
		return err
	}

	meal, err := s.repo.Meal.FindByID(ctx, id)
	if err != nil {
		return storageErr("find meal", err)
	}
	if meal == nil {
		return ErrNotFound
	}

	if err := s.repo.Meal.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete meal", zap.Error(err), zap.String("id", id.String()))
		return storageErr("delete meal", err)
	}

	s.log.Info("Meal deleted", zap.String("id", id.String()))
	return nil
}
