package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"bookit-web/config"
	"bookit-web/internal/mw"
	"bookit-web/internal/store"
)

// NewRouter creates the dev backend's Gin router. It serves the admin
// endpoint set under cfg.API's prefixes and the resource-style set at the
// root of the /api group, so either client preset can talk to it.
func NewRouter(s store.Store, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestLogger(logger))

	handler := NewHandler(s, logger)
	rateLimiter := mw.NewIPRateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)
	limited := mw.RateLimit(rateLimiter, logger)

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api")
	{
		admin := api.Group(cfg.API.AdminPrefix)
		admin.GET("/getAllRoom", handler.ListRooms)
		admin.GET("/getRoomById/:id", handler.GetRoom)
		admin.POST("/createRoom", limited, handler.CreateRoom)
		admin.PUT("/updateRoom", limited, handler.UpdateRoom)
		admin.DELETE("/rooms/:id", limited, handler.DeleteRoom)

		admin.GET("/getAllAmenities", handler.ListAmenities)
		admin.GET("/getAmenitieById/:id", handler.GetAmenity)
		admin.POST("/addAmenitie", limited, handler.CreateAmenity)
		admin.PUT("/updateAmenitie", limited, handler.UpdateAmenity)
		admin.DELETE("/amenities/:id", limited, handler.DeleteAmenity)

		api.GET(cfg.API.ManagerPrefix+"/profile", handler.Profile)
	}
	{
		api.GET("/rooms", handler.ListRooms)
		api.GET("/rooms/:id", handler.GetRoom)
		api.POST("/rooms", limited, handler.CreateRoom)
		api.PUT("/rooms/:id", limited, handler.UpdateRoom)
		api.DELETE("/rooms/:id", limited, handler.DeleteRoom)

		api.GET("/amenities", handler.ListAmenities)
		api.GET("/amenities/:id", handler.GetAmenity)
		api.POST("/amenities", limited, handler.CreateAmenity)
		api.PUT("/amenities/:id", limited, handler.UpdateAmenity)
		api.DELETE("/amenities/:id", limited, handler.DeleteAmenity)

		api.GET("/users/profile", handler.Profile)
	}

	return r
}
