package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	assert.Len(t, Rooms(), 5)
	assert.Len(t, Amenities(), 7)
	assert.Equal(t, "John Doe", Profile().Name)
	assert.Equal(t, 10, Profile().AvailableCredits)
}

func TestRooms_ReturnsCopies(t *testing.T) {
	first := Rooms()
	first[0].RoomName = "Changed"
	first[0].Amenities[0] = "SAUNA"

	second := Rooms()
	assert.Equal(t, "Bhimtal", second[0].RoomName)
	assert.Equal(t, "COFFEE_MACHINE", second[0].Amenities[0])
}

func TestAmenities_ReturnsCopies(t *testing.T) {
	first := Amenities()
	first[0].CreditCost = 999
	assert.Equal(t, 5, Amenities()[0].CreditCost)
}

func TestLookups(t *testing.T) {
	wifi, ok := AmenityByName("WIFI")
	require.True(t, ok)
	assert.Equal(t, 10, wifi.CreditCost)

	byID, ok := AmenityByID(wifi.AmenityID)
	require.True(t, ok)
	assert.Equal(t, "WIFI", byID.AmenityName)

	_, ok = AmenityByName("JACUZZI")
	assert.False(t, ok)

	room, ok := RoomByID("849cc30f-622b-462d-8ff4-e3dafb2b9197")
	require.True(t, ok)
	assert.Equal(t, "Ranikhet", room.RoomName)

	_, ok = RoomByID("missing")
	assert.False(t, ok)
}

func TestRooms_AmenitiesExistInCatalog(t *testing.T) {
	for _, room := range Rooms() {
		for _, name := range room.Amenities {
			_, ok := AmenityByName(name)
			assert.True(t, ok, "room %s lists unknown amenity %s", room.RoomName, name)
		}
	}
}
