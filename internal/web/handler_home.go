package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookit-web/internal/ui"
)

type section struct {
	Title string
	Body  string
}

type faqItem struct {
	Question string
	Answer   string
}

// faqView is one FAQ entry with the link that toggles it.
type faqView struct {
	faqItem
	Open bool
	Href string
}

var highlights = []section{
	{"Real-time availability", "See which rooms are free right now and book them in a couple of clicks."},
	{"Credit-based pricing", "Every room has an hourly cost plus credits for the amenities it offers."},
	{"Manager budgets", "Managers book within their available credits, reset on a fixed schedule."},
}

var workingSteps = []section{
	{"Pick a time", "Choose the meeting slot and how many people are attending."},
	{"Choose a room", "Filter rooms by type and amenities and compare their cost."},
	{"Book it", "Confirm the booking. Credits are deducted from your balance."},
}

var features = []section{
	{"Room management", "Admins add, update and retire rooms from one dashboard."},
	{"Amenity catalog", "Projectors, whiteboards, conference calls and more, each with a credit cost."},
	{"Booking history", "Every booking is recorded per user and per room."},
}

var faqs = []faqItem{
	{"What is Bookit?", "Bookit is a meeting room booking tool for teams that share a fixed set of rooms."},
	{"How is a room's cost calculated?", "The hourly cost of the room plus the credit cost of each amenity it offers."},
	{"Who can add rooms and amenities?", "Only admins. Managers can book rooms and view their profile."},
	{"What happens when my credits run out?", "You cannot book further rooms until your credits are reset."},
}

type homePage struct {
	layout
	State        ui.HomeState
	Highlights   []section
	WorkingSteps []section
	Features     []section
	FAQs         []faqView
}

// Home renders the marketing page. ?sidebar=open and ?faq=i reproduce the
// page's interactive state for browsers without scripts.
func (s *Server) Home(c *gin.Context) {
	state := ui.NewHomeState()
	if c.Query("sidebar") == "open" {
		state.OpenSidebar()
	}
	if v := c.Query("faq"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 && i < len(faqs) {
			state.ToggleFAQ(i)
		}
	}

	views := make([]faqView, len(faqs))
	for i, f := range faqs {
		open := state.IsFAQOpen(i)
		href := "/?faq=" + strconv.Itoa(i) + "#faq"
		if open {
			href = "/#faq"
		}
		views[i] = faqView{faqItem: f, Open: open, Href: href}
	}

	c.HTML(http.StatusOK, "home.html", homePage{
		layout: layout{
			Title:            "Bookit",
			Section:          "home",
			PreloaderDelayMs: ui.HomePreloaderDelay.Milliseconds(),
			PreloaderFadeMs:  ui.PreloaderFade.Milliseconds(),
			ScrollThreshold:  ui.ScrollTopThreshold,
		},
		State:        state,
		Highlights:   highlights,
		WorkingSteps: workingSteps,
		Features:     features,
		FAQs:         views,
	})
}

// Logout has no session to end yet; it returns to the home page.
func (s *Server) Logout(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
