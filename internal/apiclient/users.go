package apiclient

import (
	"context"

	"bookit-web/internal/model"
)

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	return mutate[[]model.User](ctx, c, request{op: OpListUsers})
}

func (c *Client) GetUser(ctx context.Context, userID string) (model.User, error) {
	return mutate[model.User](ctx, c, request{op: OpGetUser, params: idParam(userID)})
}

func (c *Client) UpdateUser(ctx context.Context, userID string, in model.User) (model.User, error) {
	return mutate[model.User](ctx, c, request{op: OpUpdateUser, params: idParam(userID), body: in})
}

func (c *Client) DeleteUser(ctx context.Context, userID string) (string, error) {
	return c.mutateText(ctx, request{op: OpDeleteUser, params: idParam(userID)})
}

// UserProfile returns the signed-in user. Unlike ManagerProfile it does not
// fall back.
func (c *Client) UserProfile(ctx context.Context) (model.User, error) {
	return mutate[model.User](ctx, c, request{op: OpUserProfile})
}
