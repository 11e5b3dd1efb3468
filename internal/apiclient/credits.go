package apiclient

import (
	"context"

	"bookit-web/internal/model"
)

// UserCredits returns a user's credit balance.
func (c *Client) UserCredits(ctx context.Context, userID string) (model.Credits, error) {
	return mutate[model.Credits](ctx, c, request{op: OpUserCredits, params: map[string]string{"userId": userID}})
}

// ResetManagerCredits restores every manager's credit allowance and returns
// the backend's confirmation text.
func (c *Client) ResetManagerCredits(ctx context.Context) (string, error) {
	return c.mutateText(ctx, request{op: OpResetManagerCredits})
}
