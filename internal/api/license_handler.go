package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/core"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// LicenseHandler handles API endpoints for license tracking.
type LicenseHandler struct {
	licenseService core.LicenseService
	logger         *zap.Logger
}

// NewLicenseHandler creates a new LicenseHandler.
func NewLicenseHandler(ls core.LicenseService, logger *zap.Logger) *LicenseHandler {
	return &LicenseHandler{licenseService: ls, logger: logger}
}

// mapLicenseError maps LicenseService errors to HTTP responses.
func mapLicenseError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrLicenseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrLicenseNotFound.Error()})
	case errors.Is(err, core.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: err.Error()})
	default:
		logger.Error("license operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// CreateLicense handles POST /licenses.
func (h *LicenseHandler) CreateLicense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req models.CreateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	license, err := h.licenseService.Create(c.Request.Context(), userID, req)
	if err != nil {
		mapLicenseError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, license)
}

// ListLicenses handles GET /licenses.
func (h *LicenseHandler) ListLicenses(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	licenses, upcoming, err := h.licenseService.List(c.Request.Context(), userID)
	if err != nil {
		mapLicenseError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, LicensesResponse{Licenses: licenses, UpcomingExpirations: upcoming})
}

// UpdateLicense handles PUT /licenses/:licenseId.
func (h *LicenseHandler) UpdateLicense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	licenseID := c.Param("licenseId")
	if licenseID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "License ID is required"})
		return
	}
	var req models.UpdateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	license, err := h.licenseService.Update(c.Request.Context(), userID, licenseID, req)
	if err != nil {
		mapLicenseError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, license)
}

// DeleteLicense handles DELETE /licenses/:licenseId.
func (h *LicenseHandler) DeleteLicense(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	licenseID := c.Param("licenseId")
	if licenseID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "License ID is required"})
		return
	}

	if err := h.licenseService.Delete(c.Request.Context(), userID, licenseID); err != nil {
		mapLicenseError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "License deleted"})
}
