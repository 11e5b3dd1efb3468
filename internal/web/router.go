package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"bookit-web/internal/mw"
)

// NewRouter creates the frontend's Gin router. /metrics is only mounted
// when gatherer is non-nil.
func NewRouter(s *Server, gatherer prometheus.Gatherer) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestLogger(s.logger))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(staticFiles()))

	// Writes share one per-IP limiter.
	limiter := mw.NewIPRateLimiter(rate.Limit(s.cfg.Server.RateLimitPerSec), s.cfg.Server.RateLimitBurst)
	limited := mw.RateLimit(limiter, s.logger)

	pages := mw.NewPageCache(time.Duration(s.cfg.Server.CacheTTLSeconds) * time.Second)

	r.GET("/", pages.Handler(), s.Home)
	r.GET("/logout", s.Logout)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	admin := r.Group("/admin")
	{
		admin.GET("", s.AdminDashboard)
		admin.GET("/amenities", s.ListAmenities)
		admin.GET("/amenities/new", s.NewAmenityForm)
		admin.POST("/amenities/new", limited, s.CreateAmenity)
		admin.POST("/amenities/:id/delete", limited, s.DeleteAmenity)
		admin.GET("/rooms/new", s.NewRoomForm)
		admin.POST("/rooms/new", limited, s.CreateRoom)
		admin.POST("/rooms/:id/delete", limited, s.DeleteRoom)
		admin.POST("/data-source", limited, s.SetDataSource)
	}

	r.GET("/manager", s.ManagerProfile)

	data := r.Group("/data")
	{
		data.GET("/rooms", s.RoomsData)
		data.GET("/amenities", s.AmenitiesData)
		data.GET("/profile", s.ProfileData)
		data.GET("/room-cost", s.RoomCostData)
	}

	return r, nil
}
