package main

import (
	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/repository/mongo"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Workout Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureUserConfigIndexes(ctx, appDB.Collection("user_configs"))
		mongo.EnsureUserGoalIndexes(ctx, appDB.Collection("user_goals"))
		mongo.EnsureTrainingConfigIndexes(ctx, appDB.Collection("training_configs"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureUserWorkoutIndexes(ctx, appDB.Collection("user_workouts"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	userConfigRepo := mongo.NewMongoUserConfigRepository(appDB)
	userGoalRepo := mongo.NewMongoUserGoalRepository(appDB)
	trainingConfigRepo := mongo.NewMongoTrainingConfigRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	userWorkoutRepo := mongo.NewMongoUserWorkoutRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(userRepo, userConfigRepo, userGoalRepo, trainingConfigRepo)
	metricsService := service.NewMetricsService(userConfigRepo, userGoalRepo, trainingConfigRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, fileStorage)
	workoutService := service.NewWorkoutService(workoutRepo, exerciseRepo, userWorkoutRepo)
	scheduleService := service.NewScheduleService(userRepo, workoutRepo, userWorkoutRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret,
		authService, profileService, metricsService,
		exerciseService, workoutService, scheduleService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
