package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookit-web/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store  store.Store
	logger *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  s,
		logger: logger,
	}
}

// fail answers err as plain text. notFound is the message used for a
// missing row.
func (h *Handler) fail(c *gin.Context, err error, notFound string) {
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.String(http.StatusNotFound, notFound)
	case errors.As(err, &verr):
		c.String(http.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrConflict):
		c.String(http.StatusConflict, err.Error())
	default:
		h.logger.Error("store operation failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, "Internal server error")
	}
}

func badBody(c *gin.Context, err error) {
	c.String(http.StatusBadRequest, "Invalid request body: "+err.Error())
}
