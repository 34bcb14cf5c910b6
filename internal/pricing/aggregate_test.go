package pricing

import (
	"testing"
	"time"

	"travel-backoffice/internal/data/entity"

	"github.com/google/uuid"
)

func floatPtr(f float64) *float64 { return &f }

func accommodationBooking(rate float64, start, end time.Time, pct *float64) *entity.Booking {
	return &entity.Booking{
		BaseNoDelete:     entity.BaseNoDelete{ID: uuid.New()},
		ClientID:         uuid.New(),
		StartDate:        start,
		EndDate:          end,
		NumberOfPeople:   2,
		ProfitPercentage: pct,
		Accommodation:    &entity.Accommodation{Name: "Seaview Hotel", PricePerNight: rate},
	}
}

func mealBooking(rate float64, people int, pct *float64) *entity.Booking {
	return &entity.Booking{
		BaseNoDelete:     entity.BaseNoDelete{ID: uuid.New()},
		ClientID:         uuid.New(),
		StartDate:        date(2024, 1, 1),
		EndDate:          date(2024, 1, 2),
		NumberOfPeople:   people,
		ProfitPercentage: pct,
		Meal:             &entity.Meal{Name: "Welcome dinner", PricePerPerson: rate},
	}
}

func TestToLineItems(t *testing.T) {
	t.Run("accommodation priced per night", func(t *testing.T) {
		b := accommodationBooking(100, date(2024, 1, 1), date(2024, 1, 4), floatPtr(10))

		items := ToLineItems([]*entity.Booking{b})
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Price != 300 {
			t.Errorf("price = %v, want 300", items[0].Price)
		}
		if items[0].Kind != entity.KindAccommodation {
			t.Errorf("kind = %q, want %q", items[0].Kind, entity.KindAccommodation)
		}
		if items[0].Name != "Seaview Hotel" {
			t.Errorf("name = %q, want %q", items[0].Name, "Seaview Hotel")
		}
		if items[0].BookingID != b.ID {
			t.Errorf("booking ID not carried through")
		}
	})

	t.Run("per person services priced by head count", func(t *testing.T) {
		bookings := []*entity.Booking{
			{
				BaseNoDelete:   entity.BaseNoDelete{ID: uuid.New()},
				NumberOfPeople: 3,
				Transportation: &entity.Transportation{Type: "Airport shuttle", PricePerPerson: 20},
			},
			{
				BaseNoDelete:   entity.BaseNoDelete{ID: uuid.New()},
				NumberOfPeople: 2,
				Attraction:     &entity.Attraction{Name: "City museum", PricePerPerson: 15},
			},
			mealBooking(25, 4, nil),
		}

		items := ToLineItems(bookings)
		if len(items) != 3 {
			t.Fatalf("got %d items, want 3", len(items))
		}

		expect := []struct {
			name  string
			kind  entity.ServiceKind
			price float64
		}{
			{"Airport shuttle", entity.KindTransportation, 60},
			{"City museum", entity.KindAttraction, 30},
			{"Welcome dinner", entity.KindMeal, 100},
		}
		for i, e := range expect {
			if items[i].Name != e.name || items[i].Kind != e.kind || !almostEqual(items[i].Price, e.price) {
				t.Errorf("item %d = {%q %q %v}, want {%q %q %v}",
					i, items[i].Name, items[i].Kind, items[i].Price, e.name, e.kind, e.price)
			}
		}
	})

	t.Run("accommodation wins when several rows are joined", func(t *testing.T) {
		b := accommodationBooking(100, date(2024, 1, 1), date(2024, 1, 2), nil)
		b.Meal = &entity.Meal{Name: "Breakfast", PricePerPerson: 10}

		items := ToLineItems([]*entity.Booking{b})
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Kind != entity.KindAccommodation {
			t.Errorf("kind = %q, want accommodation to take precedence", items[0].Kind)
		}
	})

	t.Run("booking without a resolvable offering is skipped", func(t *testing.T) {
		orphan := &entity.Booking{
			BaseNoDelete:   entity.BaseNoDelete{ID: uuid.New()},
			NumberOfPeople: 2,
		}
		items := ToLineItems([]*entity.Booking{orphan, mealBooking(25, 4, nil)})
		if len(items) != 1 {
			t.Fatalf("got %d items, want orphan skipped", len(items))
		}
		if Subtotal(items) != 100 {
			t.Errorf("subtotal = %v, want 100 (orphan contributes nothing)", Subtotal(items))
		}
	})

	t.Run("output order follows input order", func(t *testing.T) {
		a := mealBooking(10, 1, nil)
		b := mealBooking(20, 1, nil)
		c := mealBooking(30, 1, nil)

		items := ToLineItems([]*entity.Booking{c, a, b})
		got := []float64{items[0].Price, items[1].Price, items[2].Price}
		want := []float64{30, 10, 20}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("item %d price = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		items := ToLineItems(nil)
		if items == nil || len(items) != 0 {
			t.Errorf("ToLineItems(nil) = %v, want empty slice", items)
		}
	})
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single item", []float64{300}, 300},
		{"mixed items", []float64{300, 100, 42.5}, 442.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]LineItem, len(tt.prices))
			for i, p := range tt.prices {
				items[i] = LineItem{Price: p}
			}
			got := Subtotal(items)
			if !almostEqual(got, tt.expect) {
				t.Errorf("Subtotal = %v, want %v", got, tt.expect)
			}
		})
	}
}
