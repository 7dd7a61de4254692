package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/core"
	"github.com/ojharitesh/Launch-Navigator/internal/middleware"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// UserHandler handles API endpoints for the caller's business profile.
type UserHandler struct {
	profileService core.ProfileService
	logger         *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(ps core.ProfileService, logger *zap.Logger) *UserHandler {
	return &UserHandler{profileService: ps, logger: logger}
}

// callerID extracts the authenticated user ID set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	return userID.(string), true
}

// mapProfileError maps ProfileService errors to HTTP responses.
func mapProfileError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrProfileNotFound.Error()})
	case errors.Is(err, core.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: err.Error()})
	default:
		logger.Error("profile operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// InitializeProfile handles POST /users/initialize. Called after client-side
// Firebase login to ensure a backend profile exists.
func (h *UserHandler) InitializeProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	displayName := c.GetString(middleware.ContextDisplayName)
	if displayName == "" {
		displayName = c.GetString(middleware.ContextUserEmail)
	}

	profile, created, err := h.profileService.GetOrCreate(c.Request.Context(), userID, displayName)
	if err != nil {
		mapProfileError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, InitializeProfileResponse{Profile: profile, Created: created})
}

// GetProfile handles GET /users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetByID(c.Request.Context(), userID)
	if err != nil {
		mapProfileError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, req)
	if err != nil {
		mapProfileError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
