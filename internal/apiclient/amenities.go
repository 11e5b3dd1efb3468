package apiclient

import (
	"context"

	"bookit-web/internal/model"
	"bookit-web/internal/sample"
)

// ListAmenities returns the amenity catalog. Backend failures fall back to
// the sample catalog.
func (c *Client) ListAmenities(ctx context.Context, opts ...ReadOption) (Result[[]model.Amenity], error) {
	return readSoft(ctx, c, request{op: OpListAmenities}, opts, sample.Amenities)
}

// GetAmenity returns one amenity by id.
func (c *Client) GetAmenity(ctx context.Context, amenityID string, opts ...ReadOption) (Result[model.Amenity], error) {
	return readOne(ctx, c, request{op: OpGetAmenity, params: idParam(amenityID)}, amenityID, opts, sample.AmenityByID)
}

// CreateAmenity adds an amenity to the catalog.
func (c *Client) CreateAmenity(ctx context.Context, in model.AmenityInput) (model.Amenity, error) {
	return mutate[model.Amenity](ctx, c, request{op: OpCreateAmenity, body: in})
}

// UpdateAmenity replaces the amenity identified by amenityID.
func (c *Client) UpdateAmenity(ctx context.Context, amenityID string, in model.AmenityInput) (model.Amenity, error) {
	in.AmenityID = amenityID
	return mutate[model.Amenity](ctx, c, request{op: OpUpdateAmenity, params: idParam(amenityID), body: in})
}

// DeleteAmenity deletes an amenity and returns the backend's confirmation text.
func (c *Client) DeleteAmenity(ctx context.Context, amenityID string) (string, error) {
	return c.mutateText(ctx, request{op: OpDeleteAmenity, params: idParam(amenityID)})
}
