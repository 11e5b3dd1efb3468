package model

import "time"

// Booking reserves a room for a time window.
type Booking struct {
	BookingID   string    `json:"bookingId"`
	RoomID      string    `json:"roomId"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Attendees   int       `json:"attendees,omitempty"`
	CreditsUsed int       `json:"creditsUsed,omitempty"`
	Status      string    `json:"status,omitempty"`
}

// BookingInput is the payload for creating or updating a booking.
type BookingInput struct {
	RoomID    string    `json:"roomId"`
	UserID    string    `json:"userId,omitempty"`
	Title     string    `json:"title,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Attendees int       `json:"attendees,omitempty"`
}

// AvailabilityFilter narrows /rooms/available. Zero fields are not sent.
type AvailabilityFilter struct {
	StartTime       time.Time
	EndTime         time.Time
	SeatingCapacity int
	RoomType        RoomType
	Amenities       []string
}
