package pricing

import (
	"time"

	"travel-backoffice/internal/data/entity"

	"github.com/google/uuid"
)

// LineItem is the priced, display-ready form of one booking. It is
// recomputed on every read and never persisted.
type LineItem struct {
	BookingID        uuid.UUID
	Name             string
	Kind             entity.ServiceKind
	Price            float64
	ProfitPercentage *float64
	StartDate        time.Time
	EndDate          time.Time
}

// ToLineItems prices a list of bookings. Dispatch order is
// accommodation, transportation, attraction, meal; first joined row
// wins. Bookings with no resolvable offering are skipped, which is
// the normal case for a booking whose offering was deleted. Output
// order follows input order.
func ToLineItems(bookings []*entity.Booking) []LineItem {
	items := make([]LineItem, 0, len(bookings))
	for _, b := range bookings {
		item, ok := priceBooking(b)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

func priceBooking(b *entity.Booking) (LineItem, bool) {
	item := LineItem{
		BookingID:        b.ID,
		ProfitPercentage: b.ProfitPercentage,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
	}

	switch {
	case b.Accommodation != nil:
		item.Name = b.Accommodation.Name
		item.Kind = entity.KindAccommodation
		item.Price = AccommodationPrice(b.Accommodation.PricePerNight, b.StartDate, b.EndDate)
	case b.Transportation != nil:
		item.Name = b.Transportation.Type
		item.Kind = entity.KindTransportation
		item.Price = PerPersonPrice(b.Transportation.PricePerPerson, b.NumberOfPeople)
	case b.Attraction != nil:
		item.Name = b.Attraction.Name
		item.Kind = entity.KindAttraction
		item.Price = PerPersonPrice(b.Attraction.PricePerPerson, b.NumberOfPeople)
	case b.Meal != nil:
		item.Name = b.Meal.Name
		item.Kind = entity.KindMeal
		item.Price = PerPersonPrice(b.Meal.PricePerPerson, b.NumberOfPeople)
	default:
		return LineItem{}, false
	}

	return item, true
}

// Subtotal sums base prices. Empty input totals zero.
func Subtotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}
