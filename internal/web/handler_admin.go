package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookit-web/internal/apiclient"
	"bookit-web/internal/model"
)

type dashboardPage struct {
	layout
	Rooms []model.Room
}

// AdminDashboard lists every room with its amenities and total cost.
func (s *Server) AdminDashboard(c *gin.Context) {
	res, err := s.client.ListRooms(c.Request.Context())
	if err != nil {
		s.renderFailure(c, err)
		return
	}

	page := dashboardPage{layout: s.adminLayout(c, "Admin Dashboard", "dashboard"), Rooms: res.Data}
	page.Source = res.Source
	c.HTML(http.StatusOK, "admin.html", page)
}

// DeleteRoom deletes a room and returns to the dashboard with the backend's
// confirmation or error text.
func (s *Server) DeleteRoom(c *gin.Context) {
	msg, err := s.client.DeleteRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		redirectWith(c, "/admin", "error", err.Error())
		return
	}
	redirectWith(c, "/admin", "notice", msg)
}

// SetDataSource flips the client between the backend and the sample data.
func (s *Server) SetDataSource(c *gin.Context) {
	src := apiclient.DataSource(strings.ToLower(c.PostForm("source")))
	switch src {
	case apiclient.DataSourceBackend, apiclient.DataSourceSample:
	default:
		c.String(http.StatusBadRequest, "unknown data source %q", src)
		return
	}

	s.client.SetDataSource(src)
	s.logger.Info("data source switched from the dashboard", zap.String("data_source", string(src)))

	back := c.PostForm("return_to")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/admin"
	}
	c.Redirect(http.StatusSeeOther, back)
}
