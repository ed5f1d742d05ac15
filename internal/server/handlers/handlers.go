// Package handlers adapts the store, view and settings operations to
// HTTP. Handlers never hold domain logic: they bind input, call a
// service and translate errors to status codes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/store"
)

// queryParams is the body of the per-screen query-state setters. Filter
// and sort accept either canonical values or display labels; unknown
// values fall back to each screen's defaults.
type queryParams struct {
	Search string `json:"search"`
	Filter string `json:"filter"`
	Sort   string `json:"sort"`
}

// writeStoreError maps store errors to HTTP statuses: stale ids are 404,
// illegal lifecycle moves are 409, anything else is a 500.
func writeStoreError(c *gin.Context, logger *zap.Logger, err error) {
	var notFound *store.NotFoundError
	var transition *store.TransitionError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": transition.Error()})
	default:
		logger.Error("unexpected store error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
