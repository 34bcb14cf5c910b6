package pricing

import (
	"testing"

	"travel-backoffice/internal/data/entity"
)

func TestWithProfit(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		pct    *float64
		expect float64
	}{
		{"ten percent markup", 300, floatPtr(10), 330},
		{"zero percent is identity", 100, floatPtr(0), 100},
		{"missing percentage is identity", 100, nil, 100},
		{"full markup doubles", 250, floatPtr(100), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithProfit(LineItem{Price: tt.price, ProfitPercentage: tt.pct})
			if !almostEqual(got, tt.expect) {
				t.Errorf("WithProfit(price=%v, pct=%v) = %v, want %v",
					tt.price, tt.pct, got, tt.expect)
			}
		})
	}
}

func TestTotalWithProfit(t *testing.T) {
	t.Run("mixed markups sum per item", func(t *testing.T) {
		// Booking A: accommodation 100/night over three nights at 10%,
		// booking B: meal 25/person for four people at 0%.
		bookings := []*entity.Booking{
			accommodationBooking(100, date(2024, 1, 1), date(2024, 1, 4), floatPtr(10)),
			mealBooking(25, 4, floatPtr(0)),
		}
		items := ToLineItems(bookings)

		if sub := Subtotal(items); !almostEqual(sub, 400) {
			t.Errorf("Subtotal = %v, want 400", sub)
		}
		if total := TotalWithProfit(items); !almostEqual(total, 430) {
			t.Errorf("TotalWithProfit = %v, want 430", total)
		}
	})

	t.Run("all zero percentages equal the subtotal", func(t *testing.T) {
		items := []LineItem{
			{Price: 120, ProfitPercentage: floatPtr(0)},
			{Price: 80},
		}
		if got, want := TotalWithProfit(items), Subtotal(items); !almostEqual(got, want) {
			t.Errorf("TotalWithProfit = %v, want subtotal %v", got, want)
		}
	})

	t.Run("empty list totals zero", func(t *testing.T) {
		if got := TotalWithProfit(nil); got != 0 {
			t.Errorf("TotalWithProfit(nil) = %v, want 0", got)
		}
	})
}

func TestPricePerHead(t *testing.T) {
	tests := []struct {
		name      string
		total     float64
		headCount int
		expect    float64
	}{
		{"even split", 400, 4, 100},
		{"single traveler", 400, 1, 400},
		{"zero heads leaves total", 400, 0, 400},
		{"negative heads leaves total", 400, -1, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PricePerHead(tt.total, tt.headCount)
			if !almostEqual(got, tt.expect) {
				t.Errorf("PricePerHead(%v, %d) = %v, want %v",
					tt.total, tt.headCount, got, tt.expect)
			}
		})
	}
}

func TestValidProfitPercentage(t *testing.T) {
	tests := []struct {
		pct    float64
		expect bool
	}{
		{-1, false},
		{0, true},
		{12.5, true},
		{100, true},
		{101, false},
	}

	for _, tt := range tests {
		if got := ValidProfitPercentage(tt.pct); got != tt.expect {
			t.Errorf("ValidProfitPercentage(%v) = %v, want %v", tt.pct, got, tt.expect)
		}
	}
}

func TestMarkedUp(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		pct    *float64
		expect float64
	}{
		{"nil percentage", 200, nil, 200},
		{"fifteen percent", 200, floatPtr(15), 230},
		{"zero percent", 200, floatPtr(0), 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkedUp(tt.amount, tt.pct)
			if !almostEqual(got, tt.expect) {
				t.Errorf("MarkedUp(%v, %v) = %v, want %v", tt.amount, tt.pct, got, tt.expect)
			}
		})
	}
}
