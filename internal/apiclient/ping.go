package apiclient

import "context"

// Ping asks the backend for the room list and discards it. Unlike the list
// reads it never falls back, so it reports whether the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.callText(ctx, request{op: OpListRooms})
	return err
}
