package usecase

import (
	"context"
	"errors"
	"testing"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeMealRepo struct {
	meals []*entity.Meal
}

func (f *fakeMealRepo) Create(_ context.Context, meal *entity.Meal) error {
	f.meals = append(f.meals, meal)
	return nil
}

func (f *fakeMealRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Meal, error) {
	for _, m := range f.meals {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMealRepo) FindAll(_ context.Context) ([]*entity.Meal, error) {
	return f.meals, nil
}

func (f *fakeMealRepo) Update(_ context.Context, _ *entity.Meal) error { return nil }

func (f *fakeMealRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func newBookingService(bookingRepo *fakeBookingRepo, mealRepo *fakeMealRepo) BookingService {
	repo := &repository.Repository{
		Booking: bookingRepo,
		Meal:    mealRepo,
	}
	return NewBookingService(repo, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestCreateBooking(t *testing.T) {
	meal := &entity.Meal{
		Base:           entity.Base{ID: uuid.New()},
		Name:           "Seafood Dinner",
		PricePerPerson: 25,
	}
	mealID := meal.ID.String()
	clientID := uuid.New()

	bookingRepo := &fakeBookingRepo{}
	svc := newBookingService(bookingRepo, &fakeMealRepo{meals: []*entity.Meal{meal}})
	client := Caller{ID: clientID}

	resp, err := svc.CreateBooking(context.Background(), client, &request.CreateBookingRequest{
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-01",
		NumberOfPeople: 4,
		MealID:         &mealID,
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if resp.ServiceName != "Seafood Dinner" {
		t.Errorf("service name = %q, want Seafood Dinner", resp.ServiceName)
	}
	if resp.Status != entity.BookingStatusPending {
		t.Errorf("status = %q, want pending", resp.Status)
	}
	if len(bookingRepo.bookings) != 1 {
		t.Fatalf("stored bookings = %d, want 1", len(bookingRepo.bookings))
	}
	if bookingRepo.bookings[0].ProfitPercentage != nil {
		t.Error("new booking must not carry a profit percentage")
	}
}

func TestCreateBookingRejectsInvertedDates(t *testing.T) {
	meal := &entity.Meal{
		Base:           entity.Base{ID: uuid.New()},
		Name:           "Seafood Dinner",
		PricePerPerson: 25,
	}
	mealID := meal.ID.String()
	svc := newBookingService(&fakeBookingRepo{}, &fakeMealRepo{meals: []*entity.Meal{meal}})

	_, err := svc.CreateBooking(context.Background(), Caller{ID: uuid.New()}, &request.CreateBookingRequest{
		StartDate:      "2026-03-05",
		EndDate:        "2026-03-01",
		NumberOfPeople: 2,
		MealID:         &mealID,
	})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("error = %v, want ErrInvalidDateRange", err)
	}
}

func TestCreateBookingRequiresSingleReference(t *testing.T) {
	meal := &entity.Meal{
		Base:           entity.Base{ID: uuid.New()},
		Name:           "Seafood Dinner",
		PricePerPerson: 25,
	}
	mealID := meal.ID.String()
	svc := newBookingService(&fakeBookingRepo{}, &fakeMealRepo{meals: []*entity.Meal{meal}})
	client := Caller{ID: uuid.New()}

	// No reference at all.
	_, err := svc.CreateBooking(context.Background(), client, &request.CreateBookingRequest{
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-02",
		NumberOfPeople: 2,
	})
	if !errors.Is(err, ErrInvalidServiceReference) {
		t.Errorf("no reference error = %v, want ErrInvalidServiceReference", err)
	}

	// Two references.
	_, err = svc.CreateBooking(context.Background(), client, &request.CreateBookingRequest{
		StartDate:       "2026-03-01",
		EndDate:         "2026-03-02",
		NumberOfPeople:  2,
		MealID:          &mealID,
		AccommodationID: strPtr(uuid.NewString()),
	})
	if !errors.Is(err, ErrInvalidServiceReference) {
		t.Errorf("two references error = %v, want ErrInvalidServiceReference", err)
	}
}

func TestCreateBookingMissingOffering(t *testing.T) {
	svc := newBookingService(&fakeBookingRepo{}, &fakeMealRepo{})

	missing := uuid.NewString()
	_, err := svc.CreateBooking(context.Background(), Caller{ID: uuid.New()}, &request.CreateBookingRequest{
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-02",
		NumberOfPeople: 2,
		MealID:         &missing,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetBookingByIDAccess(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	booking := cateringBooking(owner, 25, 4, pctPtr(10))
	svc := newBookingService(&fakeBookingRepo{bookings: []*entity.Booking{booking}}, &fakeMealRepo{})

	// Owner sees it, without profit fields.
	resp, err := svc.GetBookingByID(context.Background(), Caller{ID: owner}, booking.ID)
	if err != nil {
		t.Fatalf("owner GetBookingByID() error = %v", err)
	}
	if resp.ProfitPercentage != nil {
		t.Error("client view must not carry profit percentage")
	}

	// Staff sees profit.
	resp, err = svc.GetBookingByID(context.Background(), Caller{ID: uuid.New(), IsStaff: true}, booking.ID)
	if err != nil {
		t.Fatalf("staff GetBookingByID() error = %v", err)
	}
	if resp.ProfitPercentage == nil || *resp.ProfitPercentage != 10 {
		t.Errorf("staff profit = %v, want 10", resp.ProfitPercentage)
	}

	// Another client is rejected.
	_, err = svc.GetBookingByID(context.Background(), Caller{ID: stranger}, booking.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger error = %v, want ErrForbidden", err)
	}
}
