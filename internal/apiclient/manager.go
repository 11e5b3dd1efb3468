package apiclient

import (
	"context"

	"bookit-web/internal/model"
	"bookit-web/internal/sample"
)

// ManagerProfile returns the signed-in manager. Backend failures fall back
// to a fixed placeholder profile.
func (c *Client) ManagerProfile(ctx context.Context, opts ...ReadOption) (Result[model.ManagerProfile], error) {
	return readSoft(ctx, c, request{op: OpManagerProfile}, opts, sample.Profile)
}
