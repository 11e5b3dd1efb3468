package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookit-web/internal/apiclient"
	"bookit-web/internal/cost"
	"bookit-web/internal/model"
)

type roomForm struct {
	RoomName        string   `form:"roomName"`
	RoomType        string   `form:"roomType"`
	SeatingCapacity string   `form:"seatingCapacity"`
	PerHourCost     string   `form:"perHourCost"`
	Amenities       []string `form:"amenities"`
	Action          string   `form:"action"`
}

// unreadableForm is shown when a posted form cannot be bound at all.
const unreadableForm = "The form could not be read. Please try again."

type roomFormPage struct {
	layout
	Form       roomForm
	RoomTypes  []model.RoomType
	Catalog    []model.Amenity
	Preview    int
	HasPreview bool
}

func (s *Server) roomFormPage(c *gin.Context, form roomForm) (roomFormPage, error) {
	res, err := s.client.ListAmenities(c.Request.Context())
	if err != nil {
		return roomFormPage{}, err
	}
	page := roomFormPage{
		layout:    s.adminLayout(c, "Add a room", "dashboard"),
		Form:      form,
		RoomTypes: model.RoomTypes,
		Catalog:   activeAmenities(res.Data),
	}
	page.Source = res.Source
	return page, nil
}

// NewRoomForm renders an empty room form with the active amenity catalog.
func (s *Server) NewRoomForm(c *gin.Context) {
	page, err := s.roomFormPage(c, roomForm{PerHourCost: "0"})
	if err != nil {
		s.renderFailure(c, err)
		return
	}
	c.HTML(http.StatusOK, "room_new.html", page)
}

// CreateRoom handles the room form. action=preview re-renders the form with
// the computed cost instead of saving.
func (s *Server) CreateRoom(c *gin.Context) {
	var form roomForm
	bindErr := c.ShouldBind(&form)

	page, err := s.roomFormPage(c, form)
	if err != nil {
		s.renderFailure(c, err)
		return
	}
	if bindErr != nil {
		s.logger.Debug("unreadable room form", zap.Error(bindErr))
		page.Error = unreadableForm
		c.HTML(http.StatusBadRequest, "room_new.html", page)
		return
	}

	in, problem := form.input()
	if problem != "" {
		page.Error = problem
		c.HTML(http.StatusUnprocessableEntity, "room_new.html", page)
		return
	}

	page.Preview = cost.Calculate(in.PerHourCost, in.Amenities, page.Catalog)
	page.HasPreview = true
	if form.Action == "preview" {
		c.HTML(http.StatusOK, "room_new.html", page)
		return
	}

	room, err := s.client.CreateRoom(c.Request.Context(), in)
	if err != nil {
		page.Error = err.Error()
		c.HTML(backendStatus(err), "room_new.html", page)
		return
	}

	name := room.RoomName
	if name == "" {
		name = in.RoomName
	}
	redirectWith(c, "/admin", "notice", fmt.Sprintf("Room %s created", name))
}

// input converts the form into a payload, or returns the message to show
// the user.
func (f roomForm) input() (model.RoomInput, string) {
	name := strings.TrimSpace(f.RoomName)
	if name == "" {
		return model.RoomInput{}, "Please enter a room name."
	}
	roomType := model.RoomType(f.RoomType)
	if !roomType.Valid() {
		return model.RoomInput{}, "Please choose a room type."
	}
	seats, ok := parseNonNegative(f.SeatingCapacity)
	if !ok || seats == 0 {
		return model.RoomInput{}, "Seating capacity must be a whole number above zero."
	}
	perHour, ok := parseNonNegative(f.PerHourCost)
	if !ok {
		return model.RoomInput{}, "Cost per hour must be a whole number of zero or more."
	}
	return model.RoomInput{
		RoomName:        name,
		RoomType:        roomType,
		SeatingCapacity: seats,
		PerHourCost:     perHour,
		Amenities:       append([]string{}, f.Amenities...),
	}, ""
}

func parseNonNegative(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func activeAmenities(all []model.Amenity) []model.Amenity {
	out := make([]model.Amenity, 0, len(all))
	for _, a := range all {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

// roomCostView is the /data/room-cost answer.
type roomCostView struct {
	Base      int      `json:"base"`
	Amenities []string `json:"amenities"`
	Total     int      `json:"total"`
}

// RoomCostData prices a room against the same active amenity catalog the
// room form shows. amenities is a comma-separated token list.
func (s *Server) RoomCostData(c *gin.Context) {
	base, ok := parseNonNegative(c.DefaultQuery("base", "0"))
	if !ok {
		c.JSON(http.StatusBadRequest, apiclient.Envelope[roomCostView]{Error: "base must be a whole number of zero or more"})
		return
	}

	names := []string{}
	for _, n := range strings.Split(c.Query("amenities"), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	res, err := s.client.ListAmenities(c.Request.Context())
	if err != nil {
		writeEnvelope(c, apiclient.Envelope[roomCostView]{Error: err.Error()})
		return
	}

	writeEnvelope(c, apiclient.Envelope[roomCostView]{
		Success: true,
		Data:    roomCostView{Base: base, Amenities: names, Total: cost.Calculate(base, names, activeAmenities(res.Data))},
		Source:  res.Source,
	})
}
