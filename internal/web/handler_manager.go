package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookit-web/internal/model"
)

type managerPage struct {
	layout
	Profile model.ManagerProfile
}

// ManagerProfile renders the manager's profile and credit balance.
func (s *Server) ManagerProfile(c *gin.Context) {
	res, err := s.client.ManagerProfile(c.Request.Context())
	if err != nil {
		s.renderFailure(c, err)
		return
	}

	page := managerPage{layout: s.adminLayout(c, "Manager", "manager"), Profile: res.Data}
	page.Source = res.Source
	c.HTML(http.StatusOK, "manager.html", page)
}
