package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice2text/internal/app/api/provider"
)

// BackendLister probes the worker for usable recognition backends.
type BackendLister interface {
	List(ctx context.Context) []string
}

// BackendHandler serves /api/v1/backends.
type BackendHandler struct {
	lister BackendLister
}

func NewBackendHandler(lister BackendLister) *BackendHandler {
	return &BackendHandler{lister: lister}
}

// List handles GET /backends. An empty list is a valid answer, not an error.
func (h *BackendHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"available_backends": h.lister.List(c.Request.Context()),
		"provider_types":     provider.Registered(),
	})
}
