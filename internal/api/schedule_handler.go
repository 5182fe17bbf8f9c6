package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleHandler holds the schedule service dependency.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// --- Request/Response Structs ---

type AssignWorkoutRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
	Day       string `json:"day" binding:"required"`
}

type ScheduleDaysResponse struct {
	OccupiedDays  []domain.Weekday `json:"occupiedDays"`
	AvailableDays []domain.Weekday `json:"availableDays"`
}

// --- Handler Methods ---

// targetUserID resolves the :id path parameter and enforces that a
// member may only read their own schedule. Admins may target any user.
func (h *ScheduleHandler) targetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return primitive.NilObjectID, false
	}

	callerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return primitive.NilObjectID, false
	}
	role, err := getUserRoleFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user role from token")
		return primitive.NilObjectID, false
	}

	if role != domain.RoleAdmin && callerID != targetID {
		abortWithError(c, http.StatusForbidden, "Access denied: cannot view another user's schedule")
		return primitive.NilObjectID, false
	}
	return targetID, true
}

// GetSchedule returns the user's weekly workout assignments.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	userID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	assignments, err := h.scheduleService.AssignmentsForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve schedule")
		}
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GetAvailableDays returns the user's week partitioned into occupied
// and available day keys.
func (h *ScheduleHandler) GetAvailableDays(c *gin.Context) {
	userID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	// Both sets derive from one read so the response always
	// partitions the week, even with assignments landing concurrently.
	occupied, err := h.scheduleService.OccupiedDays(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve schedule days")
		return
	}
	taken := make(map[domain.Weekday]bool, len(occupied))
	for _, day := range occupied {
		taken[day] = true
	}
	available := make([]domain.Weekday, 0, 7-len(occupied))
	for _, day := range domain.Weekdays() {
		if !taken[day] {
			available = append(available, day)
		}
	}

	c.JSON(http.StatusOK, ScheduleDaysResponse{
		OccupiedDays:  occupied,
		AvailableDays: available,
	})
}

// AssignWorkout binds a workout to a weekday on the target user's
// schedule. Admin only; conflicts on an occupied day return 409.
func (h *ScheduleHandler) AssignWorkout(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(req.WorkoutID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	assignment, err := h.scheduleService.Assign(c.Request.Context(), userID, workoutID, domain.Weekday(req.Day))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDayOccupied):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidWeekday):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to assign workout")
		}
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// UnassignWorkout removes the assignment on the given weekday from the
// target user's schedule. Admin only.
func (h *ScheduleHandler) UnassignWorkout(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	day := domain.Weekday(c.Param("day"))
	err := h.scheduleService.Unassign(c.Request.Context(), userID, day)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWeekday):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrAssignmentMissing):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to unassign workout")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
