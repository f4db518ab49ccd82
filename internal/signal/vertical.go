// Package signal maps a business's stored attributes to a discrete
// signal set, selects a matching canned offer from per-vertical lookup
// tables, and renders multi-channel outreach copy. Pure functions, no
// network I/O.
package signal

import "strings"

// Vertical keys indexing the offer and psychology tables.
const (
	VerticalRestaurant   = "restaurant"
	VerticalCafe         = "cafe"
	VerticalHostel       = "hostel"
	VerticalHotel        = "hotel"
	VerticalVillaRental  = "villa_rental"
	VerticalTourOperator = "tour_operator"
	VerticalBoatCharter  = "boat_charter"
	VerticalSpa          = "spa"
	VerticalNightclub    = "nightclub"
)

// categoryMatchers map free-text category substrings to vertical keys.
// Order matters: the first match wins, and more specific markers come
// before the generic ones ("hostel" before "hotel").
var categoryMatchers = []struct {
	substr   string
	vertical string
}{
	{"hostel", VerticalHostel},
	{"hostal", VerticalHostel},
	{"hotel", VerticalHotel},
	{"villa", VerticalVillaRental},
	{"apartamento", VerticalVillaRental},
	{"rental", VerticalVillaRental},
	{"boat", VerticalBoatCharter},
	{"yate", VerticalBoatCharter},
	{"velero", VerticalBoatCharter},
	{"charter", VerticalBoatCharter},
	{"tour", VerticalTourOperator},
	{"excursion", VerticalTourOperator},
	{"spa", VerticalSpa},
	{"masaje", VerticalSpa},
	{"wellness", VerticalSpa},
	{"club", VerticalNightclub},
	{"disco", VerticalNightclub},
	{"bar", VerticalNightclub},
	{"café", VerticalCafe},
	{"cafe", VerticalCafe},
	{"coffee", VerticalCafe},
	{"restaurant", VerticalRestaurant},
	{"comida", VerticalRestaurant},
}

// CategoryKey normalizes a free-text category into one of the nine
// vertical keys. Unrecognized categories default to restaurant.
func CategoryKey(category string) string {
	lower := strings.ToLower(category)
	for _, m := range categoryMatchers {
		if strings.Contains(lower, m.substr) {
			return m.vertical
		}
	}
	return VerticalRestaurant
}

// otaDependentVerticals are the verticals whose bookings typically flow
// through online travel agencies.
var otaDependentVerticals = map[string]bool{
	VerticalHotel:        true,
	VerticalHostel:       true,
	VerticalVillaRental:  true,
	VerticalTourOperator: true,
	VerticalBoatCharter:  true,
}
