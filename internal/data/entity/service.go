package entity

// ServiceKind tags the four bookable service offering variants.
// Dispatch is always on this tag, never on which price field happens
// to be present.
type ServiceKind string

const (
	KindAccommodation  ServiceKind = "accommodation"
	KindTransportation ServiceKind = "transportation"
	KindAttraction     ServiceKind = "attraction"
	KindMeal           ServiceKind = "meal"
)

func (k ServiceKind) Valid() bool {
	switch k {
	case KindAccommodation, KindTransportation, KindAttraction, KindMeal:
		return true
	}
	return false
}
