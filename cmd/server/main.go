package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/api"
	"github.com/ojharitesh/Launch-Navigator/internal/config"
	"github.com/ojharitesh/Launch-Navigator/internal/core"
	"github.com/ojharitesh/Launch-Navigator/internal/db"
	"github.com/ojharitesh/Launch-Navigator/internal/middleware"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded")

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized")

	firestoreClient := db.GetFirestoreClient()
	if firestoreClient == nil {
		zapLogger.Fatal("Firestore client is nil after initialization")
	}
	if db.GetFirebaseAuthClient() == nil {
		zapLogger.Fatal("Firebase Auth client is nil after initialization")
	}

	profileRepo := db.NewFirestoreProfileRepository(firestoreClient)
	catalogRepo := db.NewFirestoreCatalogRepository(firestoreClient)
	userTaskRepo := db.NewFirestoreUserTaskRepository(firestoreClient)
	licenseRepo := db.NewFirestoreLicenseRepository(firestoreClient)
	inspectionRepo := db.NewFirestoreInspectionRepository(firestoreClient)
	activityRepo := db.NewFirestoreActivityRepository(firestoreClient)
	zapLogger.Info("Repositories initialized")

	activityService := core.NewActivityService(activityRepo)
	profileService := core.NewProfileService(profileRepo, activityService, zapLogger)
	taskService := core.NewTaskService(
		catalogRepo,
		userTaskRepo,
		profileRepo,
		licenseRepo,
		inspectionRepo,
		activityService,
		appConfig.DeadlineWindowDays,
		zapLogger,
	)
	licenseService := core.NewLicenseService(licenseRepo, activityService, appConfig.DeadlineWindowDays, zapLogger)
	inspectionService := core.NewInspectionService(inspectionRepo, activityService, appConfig.DeadlineWindowDays, zapLogger)
	zapLogger.Info("Core services initialized")

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	api.SetupRoutes(
		router,
		zapLogger,
		profileService,
		taskService,
		licenseService,
		inspectionService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully")
}
