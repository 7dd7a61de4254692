package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/core"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// InspectionHandler handles API endpoints for inspection tracking.
type InspectionHandler struct {
	inspectionService core.InspectionService
	logger            *zap.Logger
}

// NewInspectionHandler creates a new InspectionHandler.
func NewInspectionHandler(is core.InspectionService, logger *zap.Logger) *InspectionHandler {
	return &InspectionHandler{inspectionService: is, logger: logger}
}

// mapInspectionError maps InspectionService errors to HTTP responses.
func mapInspectionError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrInspectionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrInspectionNotFound.Error()})
	case errors.Is(err, core.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: err.Error()})
	default:
		logger.Error("inspection operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// CreateInspection handles POST /inspections.
func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req models.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	inspection, err := h.inspectionService.Create(c.Request.Context(), userID, req)
	if err != nil {
		mapInspectionError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, inspection)
}

// ListInspections handles GET /inspections.
func (h *InspectionHandler) ListInspections(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	inspections, upcoming, err := h.inspectionService.List(c.Request.Context(), userID)
	if err != nil {
		mapInspectionError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, InspectionsResponse{Inspections: inspections, Upcoming: upcoming})
}

// UpdateInspection handles PUT /inspections/:inspectionId.
func (h *InspectionHandler) UpdateInspection(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	inspectionID := c.Param("inspectionId")
	if inspectionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Inspection ID is required"})
		return
	}
	var req models.UpdateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	inspection, err := h.inspectionService.Update(c.Request.Context(), userID, inspectionID, req)
	if err != nil {
		mapInspectionError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, inspection)
}

// DeleteInspection handles DELETE /inspections/:inspectionId.
func (h *InspectionHandler) DeleteInspection(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	inspectionID := c.Param("inspectionId")
	if inspectionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Inspection ID is required"})
		return
	}

	if err := h.inspectionService.Delete(c.Request.Context(), userID, inspectionID); err != nil {
		mapInspectionError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Inspection deleted"})
}
