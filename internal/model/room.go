package model

import "time"

// RoomType is the category a meeting room is booked as.
type RoomType string

const (
	RoomTypeHuddle     RoomType = "Huddle"
	RoomTypeConference RoomType = "Conference"
	RoomTypeMeeting    RoomType = "Meeting"
	RoomTypeBoardRoom  RoomType = "Board Room"
)

// RoomTypes lists every room type in display order.
var RoomTypes = []RoomType{RoomTypeHuddle, RoomTypeConference, RoomTypeMeeting, RoomTypeBoardRoom}

// Valid reports whether t is one of the known room types.
func (t RoomType) Valid() bool {
	for _, known := range RoomTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Room is a bookable meeting room. RoomCost is PerHourCost plus the credit
// cost of every listed amenity, computed when the room is written.
type Room struct {
	RoomID          string    `json:"roomId" gorm:"primaryKey;size:36"`
	RoomName        string    `json:"roomName" gorm:"size:128;not null"`
	RoomType        RoomType  `json:"roomType" gorm:"size:32;not null"`
	SeatingCapacity int       `json:"seatingCapacity" gorm:"not null"`
	PerHourCost     int       `json:"perHourCost" gorm:"not null"`
	Amenities       []string  `json:"amenities" gorm:"serializer:json;type:text"`
	RoomCost        int       `json:"roomCost" gorm:"not null"`
	IsActive        bool      `json:"isActive" gorm:"not null"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// RoomInput is the payload for creating or updating a room. RoomID is only
// read on update.
type RoomInput struct {
	RoomID          string   `json:"roomId,omitempty"`
	RoomName        string   `json:"roomName"`
	RoomType        RoomType `json:"roomType"`
	SeatingCapacity int      `json:"seatingCapacity"`
	PerHourCost     int      `json:"perHourCost"`
	Amenities       []string `json:"amenities"`
	IsActive        *bool    `json:"isActive,omitempty"`
}
