package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookit-web/internal/apiclient"
)

// writeEnvelope answers a browser data request. Only hard failures, such as
// a cancelled request, produce success=false.
func writeEnvelope[T any](c *gin.Context, env apiclient.Envelope[T]) {
	status := http.StatusOK
	if !env.Success {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, env)
}

// RoomsData answers the room list as an envelope.
func (s *Server) RoomsData(c *gin.Context) {
	res, err := s.client.ListRooms(c.Request.Context())
	writeEnvelope(c, apiclient.WrapResult(res, err))
}

// AmenitiesData answers the amenity catalog as an envelope.
func (s *Server) AmenitiesData(c *gin.Context) {
	res, err := s.client.ListAmenities(c.Request.Context())
	writeEnvelope(c, apiclient.WrapResult(res, err))
}

// ProfileData answers the manager profile as an envelope.
func (s *Server) ProfileData(c *gin.Context) {
	res, err := s.client.ManagerProfile(c.Request.Context())
	writeEnvelope(c, apiclient.WrapResult(res, err))
}
