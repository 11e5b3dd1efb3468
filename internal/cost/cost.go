// Package cost computes a room's effective hourly cost.
package cost

import (
	"bookit-web/internal/model"
	"bookit-web/internal/sample"
)

// RoomCost returns base plus the credit cost of every named amenity found in
// the sample catalog. Unknown names add nothing.
func RoomCost(base int, amenityNames []string) int {
	return Calculate(base, amenityNames, sample.Amenities())
}

// Calculate is RoomCost over an explicit catalog. Each catalog entry is
// counted once if its name is listed, regardless of duplicates in the list.
func Calculate(base int, amenityNames []string, catalog []model.Amenity) int {
	if len(amenityNames) == 0 {
		return base
	}
	wanted := make(map[string]struct{}, len(amenityNames))
	for _, name := range amenityNames {
		wanted[name] = struct{}{}
	}

	total := base
	for _, a := range catalog {
		if _, ok := wanted[a.AmenityName]; ok {
			total += a.CreditCost
		}
	}
	return total
}
