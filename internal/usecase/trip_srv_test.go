package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeTripRepo struct {
	trips []*entity.Trip
}

func (f *fakeTripRepo) Create(_ context.Context, trip *entity.Trip) error {
	f.trips = append(f.trips, trip)
	return nil
}

func (f *fakeTripRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Trip, error) {
	for _, t := range f.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTripRepo) FindAll(_ context.Context) ([]*entity.Trip, error) {
	return f.trips, nil
}

func (f *fakeTripRepo) Update(_ context.Context, trip *entity.Trip) error {
	for i, t := range f.trips {
		if t.ID == trip.ID {
			f.trips[i] = trip
			return nil
		}
	}
	return nil
}

func (f *fakeTripRepo) UpdateProfitPercentage(_ context.Context, id uuid.UUID, pct float64) (bool, error) {
	for _, t := range f.trips {
		if t.ID == id {
			t.ProfitPercentage = &pct
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTripRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeTripAdditionalRepo struct {
	additionals []*entity.TripAdditional
}

func (f *fakeTripAdditionalRepo) Create(_ context.Context, additional *entity.TripAdditional) error {
	f.additionals = append(f.additionals, additional)
	return nil
}

func (f *fakeTripAdditionalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TripAdditional, error) {
	for _, a := range f.additionals {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeTripAdditionalRepo) FindByTripID(_ context.Context, tripID uuid.UUID) ([]*entity.TripAdditional, error) {
	var out []*entity.TripAdditional
	for _, a := range f.additionals {
		if a.TripID == tripID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeTripAdditionalRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i, a := range f.additionals {
		if a.ID == id {
			f.additionals = append(f.additionals[:i], f.additionals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newTripService(tripRepo *fakeTripRepo, additionalRepo *fakeTripAdditionalRepo) TripService {
	repo := &repository.Repository{
		Trip:           tripRepo,
		TripAdditional: additionalRepo,
	}
	return NewTripService(repo, zap.NewNop())
}

func draftTrip() *entity.Trip {
	return &entity.Trip{
		Base:      entity.Base{ID: uuid.New()},
		CreatedBy: uuid.New(),
		Title:     "Komodo Expedition",
		StartDate: testDate(2026, time.June, 10),
		EndDate:   testDate(2026, time.June, 15),
		Status:    entity.TripStatusDraft,
	}
}

func TestTripRollup(t *testing.T) {
	trip := draftTrip()
	trip.ProfitPercentage = pctPtr(10)
	tripRepo := &fakeTripRepo{trips: []*entity.Trip{trip}}
	additionalRepo := &fakeTripAdditionalRepo{additionals: []*entity.TripAdditional{
		{
			Base:         entity.Base{ID: uuid.New()},
			TripID:       trip.ID,
			Name:         "Park permit",
			PricePerUnit: 30,
			Units:        5,
		},
		{
			Base:         entity.Base{ID: uuid.New()},
			TripID:       trip.ID,
			Name:         "Local guide",
			PricePerUnit: 50,
			Units:        1,
		},
	}}
	svc := newTripService(tripRepo, additionalRepo)
	staff := Caller{ID: uuid.New(), IsStaff: true}

	rollup, err := svc.GetTripRollup(context.Background(), staff, trip.ID)
	if err != nil {
		t.Fatalf("GetTripRollup() error = %v", err)
	}

	if len(rollup.Additionals) != 2 {
		t.Fatalf("additionals = %d, want 2", len(rollup.Additionals))
	}
	if !closeEnough(rollup.Additionals[0].LineTotal, 150) {
		t.Errorf("first line total = %v, want 150", rollup.Additionals[0].LineTotal)
	}
	if !closeEnough(rollup.Subtotal, 200) {
		t.Errorf("subtotal = %v, want 200", rollup.Subtotal)
	}
	if rollup.TotalWithProfit == nil || !closeEnough(*rollup.TotalWithProfit, 220) {
		t.Errorf("total with profit = %v, want 220", rollup.TotalWithProfit)
	}
}

func TestTripRollupNoProfitSet(t *testing.T) {
	trip := draftTrip()
	tripRepo := &fakeTripRepo{trips: []*entity.Trip{trip}}
	additionalRepo := &fakeTripAdditionalRepo{additionals: []*entity.TripAdditional{
		{
			Base:         entity.Base{ID: uuid.New()},
			TripID:       trip.ID,
			Name:         "Park permit",
			PricePerUnit: 30,
			Units:        5,
		},
	}}
	svc := newTripService(tripRepo, additionalRepo)

	rollup, err := svc.GetTripRollup(context.Background(), Caller{ID: uuid.New(), IsStaff: true}, trip.ID)
	if err != nil {
		t.Fatalf("GetTripRollup() error = %v", err)
	}
	if rollup.TotalWithProfit == nil || !closeEnough(*rollup.TotalWithProfit, rollup.Subtotal) {
		t.Errorf("unset profit must leave total at subtotal, got %v", rollup.TotalWithProfit)
	}
}

func TestUpdateTripProfitBounds(t *testing.T) {
	trip := draftTrip()
	svc := newTripService(&fakeTripRepo{trips: []*entity.Trip{trip}}, &fakeTripAdditionalRepo{})
	staff := Caller{ID: uuid.New(), IsStaff: true}

	for _, pct := range []float64{-5, 101} {
		_, err := svc.UpdateTripProfit(context.Background(), staff, trip.ID, pct)
		if !errors.Is(err, ErrInvalidProfitPercentage) {
			t.Errorf("UpdateTripProfit(%v) error = %v, want ErrInvalidProfitPercentage", pct, err)
		}
	}
	if trip.ProfitPercentage != nil {
		t.Errorf("rejected update must not set profit, got %v", *trip.ProfitPercentage)
	}

	rollup, err := svc.UpdateTripProfit(context.Background(), staff, trip.ID, 25)
	if err != nil {
		t.Fatalf("UpdateTripProfit(25) error = %v", err)
	}
	if rollup.Trip.ProfitPercentage == nil || *rollup.Trip.ProfitPercentage != 25 {
		t.Errorf("trip profit = %v, want 25", rollup.Trip.ProfitPercentage)
	}
}

func TestTripStaffOnly(t *testing.T) {
	trip := draftTrip()
	svc := newTripService(&fakeTripRepo{trips: []*entity.Trip{trip}}, &fakeTripAdditionalRepo{})
	client := Caller{ID: uuid.New(), IsStaff: false}

	if _, err := svc.GetTrips(context.Background(), client); !errors.Is(err, ErrForbidden) {
		t.Errorf("GetTrips client error = %v, want ErrForbidden", err)
	}
	if _, err := svc.GetTripRollup(context.Background(), client, trip.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("GetTripRollup client error = %v, want ErrForbidden", err)
	}

	req := &request.AddTripAdditionalRequest{Name: "Permit", PricePerUnit: 10, Units: 1}
	if _, err := svc.AddAdditional(context.Background(), client, trip.ID, req); !errors.Is(err, ErrForbidden) {
		t.Errorf("AddAdditional client error = %v, want ErrForbidden", err)
	}
}

func TestAddAndRemoveAdditional(t *testing.T) {
	trip := draftTrip()
	additionalRepo := &fakeTripAdditionalRepo{}
	svc := newTripService(&fakeTripRepo{trips: []*entity.Trip{trip}}, additionalRepo)
	staff := Caller{ID: uuid.New(), IsStaff: true}

	added, err := svc.AddAdditional(context.Background(), staff, trip.ID, &request.AddTripAdditionalRequest{
		Name:         "Souvenir pack",
		PricePerUnit: 12.5,
		Units:        4,
	})
	if err != nil {
		t.Fatalf("AddAdditional() error = %v", err)
	}
	if !closeEnough(added.LineTotal, 50) {
		t.Errorf("line total = %v, want 50", added.LineTotal)
	}

	id, err := uuid.Parse(added.ID)
	if err != nil {
		t.Fatalf("invalid additional ID %q", added.ID)
	}
	if err := svc.RemoveAdditional(context.Background(), staff, id); err != nil {
		t.Fatalf("RemoveAdditional() error = %v", err)
	}
	if err := svc.RemoveAdditional(context.Background(), staff, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove error = %v, want ErrNotFound", err)
	}
}
