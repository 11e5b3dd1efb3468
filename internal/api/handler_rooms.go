package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookit-web/internal/model"
)

const roomNotFound = "Room not found"

// ListRooms handles GET /admin/getAllRoom and GET /rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.store.ListRooms(c.Request.Context())
	if err != nil {
		h.fail(c, err, roomNotFound)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /admin/getRoomById/:id and GET /rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.store.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, roomNotFound)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /admin/createRoom and POST /rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var in model.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	room, err := h.store.CreateRoom(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, roomNotFound)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /admin/updateRoom, where the id travels in the body,
// and PUT /rooms/:id.
func (h *Handler) UpdateRoom(c *gin.Context) {
	var in model.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c, err)
		return
	}
	id := c.Param("id")
	if id == "" {
		id = in.RoomID
	}
	if id == "" {
		c.String(http.StatusBadRequest, "roomId is required")
		return
	}

	room, err := h.store.UpdateRoom(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err, roomNotFound)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /admin/rooms/:id and DELETE /rooms/:id.
func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.store.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, roomNotFound)
		return
	}
	c.String(http.StatusOK, "Room deleted successfully")
}
