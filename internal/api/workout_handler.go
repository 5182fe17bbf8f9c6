package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request Structs ---

type WorkoutExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Sets       int    `json:"sets" binding:"required"`
	Reps       int    `json:"reps" binding:"required"`
}

type CreateWorkoutRequest struct {
	Name      string                   `json:"name" binding:"required"`
	Duration  int                      `json:"duration" binding:"required"`
	Exercises []WorkoutExerciseRequest `json:"exercises" binding:"required"`
}

// --- Handler Methods ---

// CreateWorkout composes a new reusable workout from catalog exercises.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	input := service.CreateWorkoutInput{
		Name:      req.Name,
		Duration:  req.Duration,
		Exercises: make([]service.WorkoutExerciseInput, len(req.Exercises)),
	}
	for i, e := range req.Exercises {
		exerciseID, err := primitive.ObjectIDFromHex(e.ExerciseID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid exercise ID at index %d", i))
			return
		}
		input.Exercises[i] = service.WorkoutExerciseInput{
			ExerciseID: exerciseID,
			Sets:       e.Sets,
			Reps:       e.Reps,
		}
	}

	workout, err := h.workoutService.Create(c.Request.Context(), input)
	if err != nil {
		var vErr *service.ValidationError
		var missingErr *service.MissingExercisesError
		if errors.As(err, &vErr) {
			abortWithError(c, http.StatusBadRequest, vErr.Error())
		} else if errors.As(err, &missingErr) {
			// Referential failure, not a shape failure: the catalog
			// entities named by the request do not exist.
			abortWithError(c, http.StatusNotFound, missingErr.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout")
		}
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts returns every workout with its embedded exercise list.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns a single workout by ID.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workoutID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	workout, err := h.workoutService.GetByID(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes a workout and every day assignment that
// references it.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.workoutService.Delete(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
