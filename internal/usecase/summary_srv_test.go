package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"travel-backoffice/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	bookings []*entity.Booking
	failWith error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByClientID(_ context.Context, clientID uuid.UUID) ([]*entity.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.bookings, nil
}

func (f *fakeBookingRepo) FindPage(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if offset >= len(f.bookings) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.bookings) {
		end = len(f.bookings)
	}
	return f.bookings[offset:end], nil
}

func (f *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) UpdateProfitPercentage(_ context.Context, id uuid.UUID, pct float64) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, b := range f.bookings {
		if b.ID == id {
			b.ProfitPercentage = &pct
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pctPtr(f float64) *float64 { return &f }

func stayBooking(clientID uuid.UUID, perNight float64, start, end time.Time, pct *float64) *entity.Booking {
	return &entity.Booking{
		BaseNoDelete:     entity.BaseNoDelete{ID: uuid.New()},
		ClientID:         clientID,
		StartDate:        start,
		EndDate:          end,
		NumberOfPeople:   2,
		Status:           entity.BookingStatusConfirmed,
		ProfitPercentage: pct,
		Accommodation: &entity.Accommodation{
			Name:          "Hillside Lodge",
			PricePerNight: perNight,
		},
	}
}

func cateringBooking(clientID uuid.UUID, perPerson float64, people int, pct *float64) *entity.Booking {
	return &entity.Booking{
		BaseNoDelete:     entity.BaseNoDelete{ID: uuid.New()},
		ClientID:         clientID,
		StartDate:        testDate(2026, time.March, 1),
		EndDate:          testDate(2026, time.March, 1),
		NumberOfPeople:   people,
		Status:           entity.BookingStatusConfirmed,
		ProfitPercentage: pct,
		Meal: &entity.Meal{
			Name:           "Seafood Dinner",
			PricePerPerson: perPerson,
		},
	}
}

func newSummaryService(repo *fakeBookingRepo) SummaryService {
	return NewSummaryService(repo, zap.NewNop())
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGetSummaryStaff(t *testing.T) {
	clientID := uuid.New()
	repo := &fakeBookingRepo{bookings: []*entity.Booking{
		// 100/night, Jan 1 -> Jan 4 = 3 nights = 300, 10% profit
		stayBooking(clientID, 100, testDate(2026, time.January, 1), testDate(2026, time.January, 4), pctPtr(10)),
		// 25/person x 4 = 100, no profit set
		cateringBooking(clientID, 25, 4, nil),
	}}
	svc := newSummaryService(repo)
	staff := Caller{ID: uuid.New(), IsStaff: true}

	summary, err := svc.GetSummary(context.Background(), staff, nil)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	if len(summary.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(summary.Items))
	}
	if !closeEnough(summary.Subtotal, 400) {
		t.Errorf("subtotal = %v, want 400", summary.Subtotal)
	}
	if !closeEnough(summary.TotalWithProfit, 430) {
		t.Errorf("total with profit = %v, want 430", summary.TotalWithProfit)
	}

	first := summary.Items[0]
	if first.ProfitPercentage == nil || *first.ProfitPercentage != 10 {
		t.Errorf("staff view should carry profit percentage, got %v", first.ProfitPercentage)
	}
	if first.PriceWithProfit == nil || !closeEnough(*first.PriceWithProfit, 330) {
		t.Errorf("price with profit = %v, want 330", first.PriceWithProfit)
	}
}

func TestGetSummaryClientHidesProfit(t *testing.T) {
	clientID := uuid.New()
	otherClient := uuid.New()
	repo := &fakeBookingRepo{bookings: []*entity.Booking{
		stayBooking(clientID, 100, testDate(2026, time.January, 1), testDate(2026, time.January, 4), pctPtr(10)),
		cateringBooking(otherClient, 50, 2, pctPtr(20)),
	}}
	svc := newSummaryService(repo)
	client := Caller{ID: clientID, IsStaff: false}

	// Scoping by another client is ignored for non-staff callers.
	summary, err := svc.GetSummary(context.Background(), client, &otherClient)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	if len(summary.Items) != 1 {
		t.Fatalf("client must only see own bookings, got %d items", len(summary.Items))
	}
	item := summary.Items[0]
	if item.ProfitPercentage != nil || item.PriceWithProfit != nil {
		t.Errorf("client view must not carry profit fields: %+v", item)
	}
	if !closeEnough(summary.TotalWithProfit, summary.Subtotal) {
		t.Errorf("client total %v must equal subtotal %v", summary.TotalWithProfit, summary.Subtotal)
	}
}

func TestGetSummarySkipsOrphanedBooking(t *testing.T) {
	clientID := uuid.New()
	orphan := &entity.Booking{
		BaseNoDelete:   entity.BaseNoDelete{ID: uuid.New()},
		ClientID:       clientID,
		StartDate:      testDate(2026, time.January, 1),
		EndDate:        testDate(2026, time.January, 2),
		NumberOfPeople: 2,
	}
	repo := &fakeBookingRepo{bookings: []*entity.Booking{
		orphan,
		cateringBooking(clientID, 25, 4, nil),
	}}
	svc := newSummaryService(repo)

	summary, err := svc.GetSummary(context.Background(), Caller{ID: uuid.New(), IsStaff: true}, &clientID)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("orphaned booking must be skipped, got %d items", len(summary.Items))
	}
	if !closeEnough(summary.Subtotal, 100) {
		t.Errorf("subtotal = %v, want 100", summary.Subtotal)
	}
}

func TestGetSummaryEmpty(t *testing.T) {
	svc := newSummaryService(&fakeBookingRepo{})

	summary, err := svc.GetSummary(context.Background(), Caller{ID: uuid.New(), IsStaff: true}, nil)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.Items == nil {
		t.Error("items must be an empty slice, not nil")
	}
	if len(summary.Items) != 0 || summary.Subtotal != 0 || summary.TotalWithProfit != 0 {
		t.Errorf("empty summary = %+v, want zero totals", summary)
	}
}

func TestGetSummaryIdempotent(t *testing.T) {
	clientID := uuid.New()
	repo := &fakeBookingRepo{bookings: []*entity.Booking{
		stayBooking(clientID, 100, testDate(2026, time.January, 1), testDate(2026, time.January, 4), pctPtr(10)),
	}}
	svc := newSummaryService(repo)
	staff := Caller{ID: uuid.New(), IsStaff: true}

	first, err := svc.GetSummary(context.Background(), staff, nil)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	second, err := svc.GetSummary(context.Background(), staff, nil)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if first.Subtotal != second.Subtotal || first.TotalWithProfit != second.TotalWithProfit {
		t.Errorf("repeated reads differ: %+v vs %+v", first, second)
	}
}

func TestGetSummaryAuth(t *testing.T) {
	svc := newSummaryService(&fakeBookingRepo{})

	_, err := svc.GetSummary(context.Background(), Caller{}, nil)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("anonymous caller error = %v, want ErrUnauthenticated", err)
	}
}

func TestGetSummaryStorageError(t *testing.T) {
	repo := &fakeBookingRepo{failWith: errors.New("connection refused")}
	svc := newSummaryService(repo)

	_, err := svc.GetSummary(context.Background(), Caller{ID: uuid.New(), IsStaff: true}, nil)
	var stErr *StorageError
	if !errors.As(err, &stErr) {
		t.Fatalf("error = %v, want *StorageError", err)
	}
}

func TestUpdateProfit(t *testing.T) {
	clientID := uuid.New()
	booking := stayBooking(clientID, 100, testDate(2026, time.January, 1), testDate(2026, time.January, 4), nil)
	repo := &fakeBookingRepo{bookings: []*entity.Booking{booking}}
	svc := newSummaryService(repo)
	staff := Caller{ID: uuid.New(), IsStaff: true}

	summary, err := svc.UpdateProfit(context.Background(), staff, booking.ID, 15)
	if err != nil {
		t.Fatalf("UpdateProfit() error = %v", err)
	}

	if booking.ProfitPercentage == nil || *booking.ProfitPercentage != 15 {
		t.Errorf("stored profit = %v, want 15", booking.ProfitPercentage)
	}
	if !closeEnough(summary.TotalWithProfit, 345) {
		t.Errorf("recomputed total = %v, want 345", summary.TotalWithProfit)
	}
}

func TestUpdateProfitBounds(t *testing.T) {
	clientID := uuid.New()
	booking := stayBooking(clientID, 100, testDate(2026, time.January, 1), testDate(2026, time.January, 4), pctPtr(10))
	repo := &fakeBookingRepo{bookings: []*entity.Booking{booking}}
	svc := newSummaryService(repo)
	staff := Caller{ID: uuid.New(), IsStaff: true}

	for _, pct := range []float64{-1, 100.5, math.NaN()} {
		_, err := svc.UpdateProfit(context.Background(), staff, booking.ID, pct)
		if !errors.Is(err, ErrInvalidProfitPercentage) {
			t.Errorf("UpdateProfit(%v) error = %v, want ErrInvalidProfitPercentage", pct, err)
		}
	}

	// Rejected update must leave the stored value untouched.
	if booking.ProfitPercentage == nil || *booking.ProfitPercentage != 10 {
		t.Errorf("stored profit = %v, want unchanged 10", booking.ProfitPercentage)
	}

	// Boundary values are accepted.
	for _, pct := range []float64{0, 100} {
		if _, err := svc.UpdateProfit(context.Background(), staff, booking.ID, pct); err != nil {
			t.Errorf("UpdateProfit(%v) error = %v, want nil", pct, err)
		}
	}
}

func TestUpdateProfitAccess(t *testing.T) {
	clientID := uuid.New()
	booking := stayBooking(clientID, 100, testDate(2026, time.January, 1), testDate(2026, time.January, 4), nil)
	repo := &fakeBookingRepo{bookings: []*entity.Booking{booking}}
	svc := newSummaryService(repo)

	_, err := svc.UpdateProfit(context.Background(), Caller{}, booking.ID, 10)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("anonymous error = %v, want ErrUnauthenticated", err)
	}

	_, err = svc.UpdateProfit(context.Background(), Caller{ID: clientID, IsStaff: false}, booking.ID, 10)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("client error = %v, want ErrForbidden", err)
	}
	if booking.ProfitPercentage != nil {
		t.Errorf("forbidden update must not change stored profit, got %v", *booking.ProfitPercentage)
	}
}

func TestUpdateProfitNotFound(t *testing.T) {
	svc := newSummaryService(&fakeBookingRepo{})

	_, err := svc.UpdateProfit(context.Background(), Caller{ID: uuid.New(), IsStaff: true}, uuid.New(), 10)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteBooking(t *testing.T) {
	clientID := uuid.New()
	keep := cateringBooking(clientID, 25, 4, nil)
	remove := stayBooking(clientID, 100, testDate(2026, time.January, 1), testDate(2026, time.January, 4), pctPtr(10))
	repo := &fakeBookingRepo{bookings: []*entity.Booking{keep, remove}}
	svc := newSummaryService(repo)
	staff := Caller{ID: uuid.New(), IsStaff: true}

	summary, err := svc.DeleteBooking(context.Background(), staff, remove.ID)
	if err != nil {
		t.Fatalf("DeleteBooking() error = %v", err)
	}

	if len(summary.Items) != 1 {
		t.Fatalf("summary after delete has %d items, want 1", len(summary.Items))
	}
	if summary.Items[0].BookingID != keep.ID.String() {
		t.Errorf("wrong booking removed, remaining = %s", summary.Items[0].BookingID)
	}
	if !closeEnough(summary.Subtotal, 100) {
		t.Errorf("subtotal after delete = %v, want 100", summary.Subtotal)
	}

	_, err = svc.DeleteBooking(context.Background(), staff, remove.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteBookingAccess(t *testing.T) {
	clientID := uuid.New()
	booking := cateringBooking(clientID, 25, 4, nil)
	repo := &fakeBookingRepo{bookings: []*entity.Booking{booking}}
	svc := newSummaryService(repo)

	_, err := svc.DeleteBooking(context.Background(), Caller{ID: clientID, IsStaff: false}, booking.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("client error = %v, want ErrForbidden", err)
	}
	if len(repo.bookings) != 1 {
		t.Error("forbidden delete must not remove the booking")
	}
}
