package apiclient

import (
	"context"

	"bookit-web/internal/model"
)

func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return mutate[[]model.Booking](ctx, c, request{op: OpListBookings})
}

func (c *Client) GetBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	return mutate[model.Booking](ctx, c, request{op: OpGetBooking, params: idParam(bookingID)})
}

func (c *Client) CreateBooking(ctx context.Context, in model.BookingInput) (model.Booking, error) {
	return mutate[model.Booking](ctx, c, request{op: OpCreateBooking, body: in})
}

func (c *Client) UpdateBooking(ctx context.Context, bookingID string, in model.BookingInput) (model.Booking, error) {
	return mutate[model.Booking](ctx, c, request{op: OpUpdateBooking, params: idParam(bookingID), body: in})
}

func (c *Client) DeleteBooking(ctx context.Context, bookingID string) (string, error) {
	return c.mutateText(ctx, request{op: OpDeleteBooking, params: idParam(bookingID)})
}

// BookingsByUser lists the bookings made by one user.
func (c *Client) BookingsByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	return mutate[[]model.Booking](ctx, c, request{op: OpBookingsByUser, params: map[string]string{"userId": userID}})
}

// BookingsByRoom lists the bookings held on one room.
func (c *Client) BookingsByRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	return mutate[[]model.Booking](ctx, c, request{op: OpBookingsByRoom, params: map[string]string{"roomId": roomID}})
}
