package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	metricsService service.MetricsService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	scheduleService service.ScheduleService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	metricsHandler := NewMetricsHandler(metricsService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	scheduleHandler := NewScheduleHandler(scheduleService)
	userHandler := NewUserHandler(profileService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex(), "role": role})
		})

		// --- Profile & Metrics Routes ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile/config", profileHandler.UpsertConfig)
		protected.PUT("/profile/goal", profileHandler.UpsertGoal)
		protected.PUT("/profile/training", profileHandler.UpsertTraining)
		protected.GET("/metrics", metricsHandler.GetMetrics)

		// --- Exercise Catalog Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			// POST /api/v1/exercises/:id/media-upload-url - Only admins can replace media
			exerciseGroup.POST("/:id/media-upload-url", RoleMiddleware(domain.RoleAdmin), exerciseHandler.GenerateMediaUploadURL)
		}

		// --- Workout Routes ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			// Composing and deleting workouts is an admin concern
			workoutGroup.POST("", RoleMiddleware(domain.RoleAdmin), workoutHandler.CreateWorkout)
			workoutGroup.DELETE("/:id", RoleMiddleware(domain.RoleAdmin), workoutHandler.DeleteWorkout)
		}

		// --- User & Schedule Routes ---
		userGroup := protected.Group("/users")
		{
			// GET /api/v1/users - admin assignment view (users with profiles)
			userGroup.GET("", RoleMiddleware(domain.RoleAdmin), userHandler.ListUsers)

			// Schedule reads allow self-access; the handler enforces it.
			userGroup.GET("/:id/schedule", scheduleHandler.GetSchedule)
			userGroup.GET("/:id/schedule/available-days", scheduleHandler.GetAvailableDays)

			// Schedule writes are admin only.
			userGroup.POST("/:id/schedule", RoleMiddleware(domain.RoleAdmin), scheduleHandler.AssignWorkout)
			userGroup.DELETE("/:id/schedule/:day", RoleMiddleware(domain.RoleAdmin), scheduleHandler.UnassignWorkout)
		}
	}
}
