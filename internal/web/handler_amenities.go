package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookit-web/internal/model"
	"bookit-web/internal/parse"
)

type amenitiesPage struct {
	layout
	Amenities []model.Amenity
}

// ListAmenities renders the amenity table.
func (s *Server) ListAmenities(c *gin.Context) {
	res, err := s.client.ListAmenities(c.Request.Context())
	if err != nil {
		s.renderFailure(c, err)
		return
	}

	page := amenitiesPage{layout: s.adminLayout(c, "Amenities", "amenities"), Amenities: res.Data}
	page.Source = res.Source
	c.HTML(http.StatusOK, "amenities.html", page)
}

type amenityForm struct {
	AmenityName string `form:"amenityName"`
	CreditCost  string `form:"creditCost"`
	Description string `form:"description"`
}

type amenityFormPage struct {
	layout
	Form amenityForm
}

// NewAmenityForm renders an empty amenity form.
func (s *Server) NewAmenityForm(c *gin.Context) {
	c.HTML(http.StatusOK, "amenity_new.html", amenityFormPage{
		layout: s.adminLayout(c, "Add an amenity", "amenities"),
		Form:   amenityForm{CreditCost: "0"},
	})
}

// CreateAmenity adds an amenity. Local validation and backend errors are
// shown on the re-rendered form.
func (s *Server) CreateAmenity(c *gin.Context) {
	var form amenityForm
	bindErr := c.ShouldBind(&form)

	page := amenityFormPage{layout: s.adminLayout(c, "Add an amenity", "amenities"), Form: form}
	if bindErr != nil {
		s.logger.Debug("unreadable amenity form", zap.Error(bindErr))
		page.Error = unreadableForm
		c.HTML(http.StatusBadRequest, "amenity_new.html", page)
		return
	}

	in, problem := form.input()
	if problem != "" {
		page.Error = problem
		c.HTML(http.StatusUnprocessableEntity, "amenity_new.html", page)
		return
	}

	created, err := s.client.CreateAmenity(c.Request.Context(), in)
	if err != nil {
		page.Error = err.Error()
		c.HTML(backendStatus(err), "amenity_new.html", page)
		return
	}

	name := created.AmenityName
	if name == "" {
		name = in.AmenityName
	}
	redirectWith(c, "/admin/amenities", "notice", fmt.Sprintf("Amenity %s added", parse.FormatAmenityName(name)))
}

// input converts the form into a payload, or returns the message to show
// the user.
func (f amenityForm) input() (model.AmenityInput, string) {
	name, err := parse.AmenityToken(f.AmenityName)
	if err != nil {
		return model.AmenityInput{}, "Please enter an amenity name."
	}
	credits, ok := parseNonNegative(f.CreditCost)
	if !ok {
		return model.AmenityInput{}, "Credits must be a whole number of zero or more."
	}
	return model.AmenityInput{AmenityName: name, CreditCost: credits, Description: f.Description}, ""
}

// DeleteAmenity deletes an amenity and returns to the amenity table.
func (s *Server) DeleteAmenity(c *gin.Context) {
	msg, err := s.client.DeleteAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		redirectWith(c, "/admin/amenities", "error", err.Error())
		return
	}
	redirectWith(c, "/admin/amenities", "notice", msg)
}
