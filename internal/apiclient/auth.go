package apiclient

import (
	"context"

	"bookit-web/internal/model"
)

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, in model.SignUp) (model.Session, error) {
	return mutate[model.Session](ctx, c, request{op: OpSignUp, body: in})
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	return mutate[model.Session](ctx, c, request{op: OpLogin, body: creds})
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.mutateText(ctx, request{op: OpLogout})
	return err
}
