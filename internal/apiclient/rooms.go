package apiclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookit-web/internal/model"
	"bookit-web/internal/sample"
)

// ListRooms returns every room. Backend failures fall back to the sample rooms.
func (c *Client) ListRooms(ctx context.Context, opts ...ReadOption) (Result[[]model.Room], error) {
	return readSoft(ctx, c, request{op: OpListRooms}, opts, sample.Rooms)
}

// GetRoom returns one room by id.
func (c *Client) GetRoom(ctx context.Context, roomID string, opts ...ReadOption) (Result[model.Room], error) {
	return readOne(ctx, c, request{op: OpGetRoom, params: idParam(roomID)}, roomID, opts, sample.RoomByID)
}

// CreateRoom creates a room and returns it as stored by the backend.
func (c *Client) CreateRoom(ctx context.Context, in model.RoomInput) (model.Room, error) {
	return mutate[model.Room](ctx, c, request{op: OpCreateRoom, body: in})
}

// UpdateRoom replaces the room identified by roomID.
func (c *Client) UpdateRoom(ctx context.Context, roomID string, in model.RoomInput) (model.Room, error) {
	in.RoomID = roomID
	return mutate[model.Room](ctx, c, request{op: OpUpdateRoom, params: idParam(roomID), body: in})
}

// DeleteRoom deletes a room and returns the backend's confirmation text.
func (c *Client) DeleteRoom(ctx context.Context, roomID string) (string, error) {
	return c.mutateText(ctx, request{op: OpDeleteRoom, params: idParam(roomID)})
}

// AvailableRooms lists rooms free for the filter's window.
func (c *Client) AvailableRooms(ctx context.Context, f model.AvailabilityFilter) ([]model.Room, error) {
	return mutate[[]model.Room](ctx, c, request{op: OpAvailableRooms, query: availabilityQuery(f)})
}

func availabilityQuery(f model.AvailabilityFilter) url.Values {
	q := url.Values{}
	if !f.StartTime.IsZero() {
		q.Set("startTime", f.StartTime.Format(time.RFC3339))
	}
	if !f.EndTime.IsZero() {
		q.Set("endTime", f.EndTime.Format(time.RFC3339))
	}
	if f.SeatingCapacity > 0 {
		q.Set("seatingCapacity", strconv.Itoa(f.SeatingCapacity))
	}
	if f.RoomType != "" {
		q.Set("roomType", string(f.RoomType))
	}
	if len(f.Amenities) > 0 {
		q.Set("amenities", strings.Join(f.Amenities, ","))
	}
	return q
}
