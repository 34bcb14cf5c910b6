// Package pricing holds the booking price aggregation and profit math.
// Everything here is pure: no storage, no clock, no logger.
package pricing

import (
	"math"
	"time"
)

// Nights returns the number of chargeable nights between start and end,
// counting a started day as a full night. A range that is empty or
// inverted still charges one night; inverted ranges are rejected at
// booking creation, so by the time data reaches here clamping is the
// safe interpretation.
func Nights(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// AccommodationPrice prices a stay: nightly rate times chargeable nights.
func AccommodationPrice(perNight float64, start, end time.Time) float64 {
	return perNight * float64(Nights(start, end))
}

// PerPersonPrice prices transportation, attractions and meals.
// A head count below 1 is treated as a single traveler, matching the
// booking form's default.
func PerPersonPrice(perPerson float64, people int) float64 {
	if people < 1 {
		people = 1
	}
	return perPerson * float64(people)
}

// AdditionalPrice prices a per-unit trip extra. Zero or negative units
// bill nothing.
func AdditionalPrice(perUnit float64, units int) float64 {
	if units < 1 {
		return 0
	}
	return perUnit * float64(units)
}
