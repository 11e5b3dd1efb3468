package store

import (
	"errors"
	"fmt"
	"strings"

	"bookit-web/internal/model"
	"bookit-web/internal/parse"
)

var (
	// ErrNotFound means no row has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the write would duplicate a unique value.
	ErrConflict = errors.New("already exists")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// validateRoom checks a room payload against the amenity names in catalog.
func validateRoom(in model.RoomInput, catalog map[string]model.Amenity) error {
	if strings.TrimSpace(in.RoomName) == "" {
		return invalid("roomName", "is required")
	}
	if !in.RoomType.Valid() {
		return invalid("roomType", fmt.Sprintf("must be one of %v", model.RoomTypes))
	}
	if in.SeatingCapacity <= 0 {
		return invalid("seatingCapacity", "must be positive")
	}
	if in.PerHourCost < 0 {
		return invalid("perHourCost", "must not be negative")
	}
	for _, name := range in.Amenities {
		if _, ok := catalog[name]; !ok {
			return invalid("amenities", fmt.Sprintf("unknown amenity %q", name))
		}
	}
	return nil
}

// normalizeAmenity validates an amenity payload and returns its stored name.
func normalizeAmenity(in model.AmenityInput) (string, error) {
	name, err := parse.AmenityToken(in.AmenityName)
	if err != nil {
		return "", invalid("amenityName", "is required")
	}
	if in.CreditCost < 0 {
		return "", invalid("creditCost", "must not be negative")
	}
	return name, nil
}
