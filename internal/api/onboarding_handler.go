package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/core"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// OnboardingHandler handles POST /onboarding: it saves the onboarding form
// and assigns the catalog tasks matching the resulting profile.
type OnboardingHandler struct {
	profileService core.ProfileService
	taskService    core.TaskService
	logger         *zap.Logger
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(ps core.ProfileService, ts core.TaskService, logger *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{profileService: ps, taskService: ts, logger: logger}
}

// CompleteOnboarding handles POST /onboarding. Retrying with the same payload
// reaches the same final state.
func (h *OnboardingHandler) CompleteOnboarding(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	profile, err := h.profileService.CompleteOnboarding(c.Request.Context(), userID, req)
	if err != nil {
		mapProfileError(c, h.logger, err)
		return
	}

	tasks, created, err := h.taskService.AssignFromProfile(c.Request.Context(), userID)
	if err != nil {
		mapTaskError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, OnboardingResponse{
		Profile:       profile,
		Tasks:         tasks,
		NewlyAssigned: created,
	})
}
