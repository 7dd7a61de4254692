package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/core"
	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/middleware"
)

// SetupRoutes configures all application routes. Global middleware (logging,
// recovery, CORS) is expected to be applied to the router before this is
// called.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	profileService core.ProfileService,
	taskService core.TaskService,
	licenseService core.LicenseService,
	inspectionService core.InspectionService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be secured")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient, logger)

	userHandler := NewUserHandler(profileService, logger)
	onboardingHandler := NewOnboardingHandler(profileService, taskService, logger)
	taskHandler := NewTaskHandler(taskService, logger)
	licenseHandler := NewLicenseHandler(licenseService, logger)
	inspectionHandler := NewInspectionHandler(inspectionService, logger)
	metaHandler := NewMetaHandler()

	apiV1 := router.Group("/api/v1")
	{
		usersGroup := apiV1.Group("/users", authMW.VerifyToken())
		{
			usersGroup.POST("/initialize", userHandler.InitializeProfile)
			usersGroup.GET("/me", userHandler.GetProfile)
			usersGroup.PUT("/me", userHandler.UpdateProfile)
		}

		apiV1.POST("/onboarding", authMW.VerifyToken(), onboardingHandler.CompleteOnboarding)

		tasksGroup := apiV1.Group("/tasks")
		{
			// The catalog itself is public; seeding requires auth.
			tasksGroup.GET("", taskHandler.ListCatalog)
			tasksGroup.POST("/seed", authMW.VerifyToken(), taskHandler.SeedCatalog)
		}

		userTasksGroup := apiV1.Group("/user-tasks", authMW.VerifyToken())
		{
			userTasksGroup.GET("", taskHandler.ListUserTasks)
			userTasksGroup.POST("", taskHandler.AssignTasks)
			userTasksGroup.PATCH("/:userTaskId", taskHandler.ToggleTask)
		}

		licensesGroup := apiV1.Group("/licenses", authMW.VerifyToken())
		{
			licensesGroup.GET("", licenseHandler.ListLicenses)
			licensesGroup.POST("", licenseHandler.CreateLicense)
			licensesGroup.PUT("/:licenseId", licenseHandler.UpdateLicense)
			licensesGroup.DELETE("/:licenseId", licenseHandler.DeleteLicense)
		}

		inspectionsGroup := apiV1.Group("/inspections", authMW.VerifyToken())
		{
			inspectionsGroup.GET("", inspectionHandler.ListInspections)
			inspectionsGroup.POST("", inspectionHandler.CreateInspection)
			inspectionsGroup.PUT("/:inspectionId", inspectionHandler.UpdateInspection)
			inspectionsGroup.DELETE("/:inspectionId", inspectionHandler.DeleteInspection)
		}

		apiV1.GET("/dashboard/stats", authMW.VerifyToken(), taskHandler.DashboardStats)

		metaGroup := apiV1.Group("/meta")
		{
			metaGroup.GET("/states", metaHandler.ListStates)
			metaGroup.GET("/business-types", metaHandler.ListBusinessTypes)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured under /api/v1 and /health")
}
