// Package web renders the Bookit pages and the JSON envelopes used by their
// scripts. Every read goes through the API client, so pages keep working on
// sample data when the backend is down.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookit-web/config"
	"bookit-web/internal/apiclient"
	"bookit-web/internal/probe"
	"bookit-web/internal/ui"
)

// Server holds the dependencies shared by the page handlers.
type Server struct {
	client *apiclient.Client
	cfg    *config.Config
	logger *zap.Logger
	probe  *probe.Service
}

// NewServer creates the page handlers around client.
func NewServer(client *apiclient.Client, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{client: client, cfg: cfg, logger: logger.Named("web")}
}

// WithProbe shows the probe's latest result on the admin pages.
func (s *Server) WithProbe(p *probe.Service) *Server {
	s.probe = p
	return s
}

// layout is the data every page template needs for its header, banner and
// preloader.
type layout struct {
	Title      string
	Section    string
	Source     apiclient.Source
	DataSource apiclient.DataSource
	Notice     string
	Error      string
	Backend    probe.Status

	PreloaderDelayMs int64
	PreloaderFadeMs  int64
	ScrollThreshold  int
}

// Degraded reports whether the page shows data that did not come from the backend.
func (l layout) Degraded() bool {
	return l.Source == apiclient.SourceSample || l.Source == apiclient.SourceFallback
}

// Fallback reports whether a backend failure was absorbed for this page.
func (l layout) Fallback() bool {
	return l.Source == apiclient.SourceFallback
}

func (s *Server) adminLayout(c *gin.Context, title, section string) layout {
	var backend probe.Status
	if s.probe != nil {
		backend = s.probe.Status()
	}
	return layout{
		Backend:          backend,
		Title:            title,
		Section:          section,
		DataSource:       s.client.DataSource(),
		Notice:           c.Query("notice"),
		Error:            c.Query("error"),
		PreloaderDelayMs: ui.AdminPreloaderDelay.Milliseconds(),
		ScrollThreshold:  ui.ScrollTopThreshold,
	}
}

// redirectWith sends the browser to path carrying a notice or error message.
func redirectWith(c *gin.Context, path, key, msg string) {
	q := url.Values{}
	if msg != "" {
		q.Set(key, msg)
	}
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}

// backendStatus picks the status to render a failed backend call with.
// Client errors from the backend are passed through; anything else is a bad
// gateway.
func backendStatus(err error) int {
	if code := apiclient.StatusCode(err); code >= 400 && code < 500 {
		return code
	}
	if errors.Is(err, apiclient.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// renderFailure shows the error page for a read that failed outright. Soft
// reads only fail this way when the request itself was cancelled.
func (s *Server) renderFailure(c *gin.Context, err error) {
	s.logger.Warn("page data unavailable", zap.String("path", c.Request.URL.Path), zap.Error(err))
	page := s.adminLayout(c, "Something went wrong", "")
	page.Error = err.Error()
	c.HTML(backendStatus(err), "error.html", page)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"amenityName":  formatAmenity,
		"amenityNames": formatAmenityList,
		"inc":          func(i int) int { return i + 1 },
		"contains": func(list []string, v string) bool {
			for _, item := range list {
				if item == v {
					return true
				}
			}
			return false
		},
	}
}
