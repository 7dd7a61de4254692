package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojharitesh/Launch-Navigator/internal/catalog"
)

// MetaHandler serves the reference lookup tables used by client dropdowns.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// ListStates handles GET /meta/states.
func (h *MetaHandler) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": catalog.USStates})
}

// ListBusinessTypes handles GET /meta/business-types.
func (h *MetaHandler) ListBusinessTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"businessTypes": catalog.BusinessTypes})
}
