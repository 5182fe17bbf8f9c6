package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request Structs ---

type UserConfigRequest struct {
	Age           int     `json:"age" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required"`
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	WeightUnit    string  `json:"weightUnit" binding:"required"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	HeightUnit    string  `json:"heightUnit" binding:"required"`
	ActivityLevel string  `json:"activityLevel" binding:"required"`
	Language      string  `json:"lang"`
}

type UserGoalRequest struct {
	PrimaryGoal  string     `json:"primaryGoal" binding:"required"`
	TargetWeight float64    `json:"targetWeight"` // required by the service only for weight-change goals
	TargetDate   *time.Time `json:"targetDate"`
}

type TrainingConfigRequest struct {
	TrainingFrequency     int      `json:"trainingFrequency" binding:"required"`
	WorkoutDuration       int      `json:"workoutDuration" binding:"required"`
	ExperienceLevel       string   `json:"experienceLevel" binding:"required"`
	TimePreference        string   `json:"timePreference" binding:"required"`
	PreferredWorkoutTypes []string `json:"preferredWorkoutTypes" binding:"required"`
	AvailableEquipment    []string `json:"availableEquipment" binding:"required"`
}

// --- Handler Methods ---

// UpsertConfig saves the caller's biometric configuration.
func (h *ProfileHandler) UpsertConfig(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UserConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	cfg := domain.UserConfig{
		Age:           req.Age,
		Gender:        domain.Gender(req.Gender),
		Weight:        req.Weight,
		WeightUnit:    domain.WeightUnit(req.WeightUnit),
		Height:        req.Height,
		HeightUnit:    domain.HeightUnit(req.HeightUnit),
		ActivityLevel: domain.ActivityLevel(req.ActivityLevel),
		Language:      req.Language,
	}

	saved, err := h.profileService.UpsertUserConfig(c.Request.Context(), userID, cfg)
	if err != nil {
		handleProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UpsertGoal saves the caller's fitness goal.
func (h *ProfileHandler) UpsertGoal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UserGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal := domain.UserGoal{
		PrimaryGoal:  domain.PrimaryGoal(req.PrimaryGoal),
		TargetWeight: req.TargetWeight,
	}
	if req.TargetDate != nil {
		goal.TargetDate = *req.TargetDate
	}

	saved, err := h.profileService.UpsertUserGoal(c.Request.Context(), userID, goal)
	if err != nil {
		handleProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UpsertTraining saves the caller's training preferences.
func (h *ProfileHandler) UpsertTraining(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req TrainingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	cfg := domain.TrainingConfig{
		TrainingFrequency:     req.TrainingFrequency,
		WorkoutDuration:       req.WorkoutDuration,
		ExperienceLevel:       domain.ExperienceLevel(req.ExperienceLevel),
		TimePreference:        domain.TimePreference(req.TimePreference),
		PreferredWorkoutTypes: req.PreferredWorkoutTypes,
		AvailableEquipment:    req.AvailableEquipment,
	}

	saved, err := h.profileService.UpsertTrainingConfig(c.Request.Context(), userID, cfg)
	if err != nil {
		handleProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetProfile returns the caller's three settings documents. Documents
// not saved yet come back as null.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func handleProfileError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		abortWithError(c, http.StatusBadRequest, vErr.Error())
		return
	}
	if errors.Is(err, service.ErrUserNotFound) {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}
	abortWithError(c, http.StatusInternalServerError, "Failed to save profile settings")
}
