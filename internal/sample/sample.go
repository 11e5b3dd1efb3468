// Package sample holds the bundled Bookit catalog served when the backend is
// disabled or unreachable.
package sample

import "bookit-web/internal/model"

var amenities = []model.Amenity{
	{AmenityID: "a1e4f8c2-1234-4567-89ab-cdef12345671", AmenityName: "PROJECTOR", CreditCost: 5, IsActive: true},
	{AmenityID: "a1e4f8c2-1234-4567-89ab-cdef12345672", AmenityName: "WIFI", CreditCost: 10, IsActive: true},
	{AmenityID: "a1e4f8c2-1234-4567-89ab-cdef12345673", AmenityName: "CONFERENCE_CALL", CreditCost: 15, IsActive: true},
	{AmenityID: "a1e4f8c2-1234-4567-89ab-cdef12345674", AmenityName: "WHITEBOARD", CreditCost: 5, IsActive: true},
	{AmenityID: "a1e4f8c2-1234-4567-89ab-cdef12345675", AmenityName: "WATER_DISPENSER", CreditCost: 5, IsActive: true},
	{AmenityID: "a1e4f8c2-1234-4567-89ab-cdef12345676", AmenityName: "TV", CreditCost: 10, IsActive: true},
	{AmenityID: "a1e4f8c2-1234-4567-89ab-cdef12345677", AmenityName: "COFFEE_MACHINE", CreditCost: 10, IsActive: true},
}

// RoomCost values are perHourCost plus the amenity credits above.
var rooms = []model.Room{
	{
		RoomID:          "649cc30f-622b-462d-8ff4-e3dafb2b9195",
		RoomName:        "Bhimtal",
		RoomType:        model.RoomTypeHuddle,
		SeatingCapacity: 20,
		PerHourCost:     100,
		Amenities:       []string{"COFFEE_MACHINE", "WIFI"},
		RoomCost:        120,
		IsActive:        true,
	},
	{
		RoomID:          "749cc30f-622b-462d-8ff4-e3dafb2b9196",
		RoomName:        "Nainital",
		RoomType:        model.RoomTypeConference,
		SeatingCapacity: 50,
		PerHourCost:     200,
		Amenities:       []string{"PROJECTOR", "WIFI", "WHITEBOARD", "CONFERENCE_CALL"},
		RoomCost:        235,
		IsActive:        true,
	},
	{
		RoomID:          "849cc30f-622b-462d-8ff4-e3dafb2b9197",
		RoomName:        "Ranikhet",
		RoomType:        model.RoomTypeMeeting,
		SeatingCapacity: 30,
		PerHourCost:     150,
		Amenities:       []string{"TV", "WIFI", "WATER_DISPENSER"},
		RoomCost:        175,
		IsActive:        true,
	},
	{
		RoomID:          "949cc30f-622b-462d-8ff4-e3dafb2b9198",
		RoomName:        "Mussoorie",
		RoomType:        model.RoomTypeBoardRoom,
		SeatingCapacity: 100,
		PerHourCost:     300,
		Amenities:       []string{"PROJECTOR", "CONFERENCE_CALL", "TV", "WIFI", "COFFEE_MACHINE"},
		RoomCost:        350,
		IsActive:        true,
	},
	{
		RoomID:          "a49cc30f-622b-462d-8ff4-e3dafb2b9199",
		RoomName:        "Dehradun",
		RoomType:        model.RoomTypeHuddle,
		SeatingCapacity: 15,
		PerHourCost:     80,
		Amenities:       []string{"WHITEBOARD", "WIFI"},
		RoomCost:        95,
		IsActive:        true,
	},
}

var profile = model.ManagerProfile{
	UserID:           "123e4567-e89b-12d3-a456-426614174000",
	Name:             "John Doe",
	Email:            "manager@example.com",
	Role:             "MANAGER",
	AvailableCredits: 10,
}

// Rooms returns a copy of the sample rooms.
func Rooms() []model.Room {
	out := make([]model.Room, len(rooms))
	for i, r := range rooms {
		out[i] = copyRoom(r)
	}
	return out
}

// Amenities returns a copy of the sample amenity catalog.
func Amenities() []model.Amenity {
	out := make([]model.Amenity, len(amenities))
	copy(out, amenities)
	return out
}

// Profile returns the fallback manager profile.
func Profile() model.ManagerProfile {
	return profile
}

// AmenityByName looks an amenity up by its token, e.g. "WIFI".
func AmenityByName(name string) (model.Amenity, bool) {
	for _, a := range amenities {
		if a.AmenityName == name {
			return a, true
		}
	}
	return model.Amenity{}, false
}

// AmenityByID looks an amenity up by id.
func AmenityByID(id string) (model.Amenity, bool) {
	for _, a := range amenities {
		if a.AmenityID == id {
			return a, true
		}
	}
	return model.Amenity{}, false
}

// RoomByID looks a room up by id.
func RoomByID(id string) (model.Room, bool) {
	for _, r := range rooms {
		if r.RoomID == id {
			return copyRoom(r), true
		}
	}
	return model.Room{}, false
}

func copyRoom(r model.Room) model.Room {
	r.Amenities = append([]string(nil), r.Amenities...)
	return r
}
