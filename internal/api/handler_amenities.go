package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookit-web/internal/model"
)

const amenityNotFound = "Amenity not found"

func (h *Handler) ListAmenities(c *gin.Context) {
	amenities, err := h.store.ListAmenities(c.Request.Context())
	if err != nil {
		h.fail(c, err, amenityNotFound)
		return
	}
	c.JSON(http.StatusOK, amenities)
}

func (h *Handler) GetAmenity(c *gin.Context) {
	amenity, err := h.store.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, amenityNotFound)
		return
	}
	c.JSON(http.StatusOK, amenity)
}

func (h *Handler) CreateAmenity(c *gin.Context) {
	var in model.AmenityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	amenity, err := h.store.CreateAmenity(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, amenityNotFound)
		return
	}
	c.JSON(http.StatusCreated, amenity)
}

// UpdateAmenity takes the id from the path, or from amenity_id in the body
// on the admin route.
func (h *Handler) UpdateAmenity(c *gin.Context) {
	var in model.AmenityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	id := c.Param("id")
	if id == "" {
		id = in.AmenityID
	}
	if id == "" {
		c.String(http.StatusBadRequest, "amenity_id is required")
		return
	}

	amenity, err := h.store.UpdateAmenity(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err, amenityNotFound)
		return
	}
	c.JSON(http.StatusOK, amenity)
}

func (h *Handler) DeleteAmenity(c *gin.Context) {
	if err := h.store.DeleteAmenity(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, amenityNotFound)
		return
	}
	c.String(http.StatusOK, "Amenity deleted successfully")
}

// Profile handles GET /manager/profile and GET /users/profile.
func (h *Handler) Profile(c *gin.Context) {
	profile, err := h.store.Profile(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}
