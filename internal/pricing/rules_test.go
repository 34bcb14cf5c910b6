package pricing

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNights(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		expect int
	}{
		{"three nights", date(2024, 1, 1), date(2024, 1, 4), 3},
		{"single night", date(2024, 1, 1), date(2024, 1, 2), 1},
		{"same day clamps to one", date(2024, 1, 1), date(2024, 1, 1), 1},
		{"inverted range clamps to one", date(2024, 1, 4), date(2024, 1, 1), 1},
		{"partial day rounds up", date(2024, 1, 1), time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Nights(tt.start, tt.end)
			if got != tt.expect {
				t.Errorf("Nights(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.expect)
			}
		})
	}
}

func TestAccommodationPrice(t *testing.T) {
	tests := []struct {
		name     string
		perNight float64
		start    time.Time
		end      time.Time
		expect   float64
	}{
		{"100 per night for 3 nights", 100, date(2024, 1, 1), date(2024, 1, 4), 300},
		{"single night", 250, date(2024, 1, 1), date(2024, 1, 2), 250},
		{"same day still charges one night", 80, date(2024, 1, 1), date(2024, 1, 1), 80},
		{"zero rate", 0, date(2024, 1, 1), date(2024, 1, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccommodationPrice(tt.perNight, tt.start, tt.end)
			if !almostEqual(got, tt.expect) {
				t.Errorf("AccommodationPrice(%v, %v, %v) = %v, want %v",
					tt.perNight, tt.start, tt.end, got, tt.expect)
			}
		})
	}
}

func TestPerPersonPrice(t *testing.T) {
	tests := []struct {
		name      string
		perPerson float64
		people    int
		expect    float64
	}{
		{"four people", 25, 4, 100},
		{"one person", 25, 1, 25},
		{"zero people defaults to one", 25, 0, 25},
		{"negative people defaults to one", 25, -3, 25},
		{"decimal rate", 12.5, 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerPersonPrice(tt.perPerson, tt.people)
			if !almostEqual(got, tt.expect) {
				t.Errorf("PerPersonPrice(%v, %d) = %v, want %v",
					tt.perPerson, tt.people, got, tt.expect)
			}
		})
	}
}

func TestAdditionalPrice(t *testing.T) {
	tests := []struct {
		name    string
		perUnit float64
		units   int
		expect  float64
	}{
		{"three units", 15, 3, 45},
		{"single unit", 15, 1, 15},
		{"zero units bills nothing", 15, 0, 0},
		{"negative units bills nothing", 15, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdditionalPrice(tt.perUnit, tt.units)
			if !almostEqual(got, tt.expect) {
				t.Errorf("AdditionalPrice(%v, %d) = %v, want %v",
					tt.perUnit, tt.units, got, tt.expect)
			}
		})
	}
}
