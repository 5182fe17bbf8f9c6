package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- Request/Response Structs ---

type MediaUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type MediaUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// --- Handler Methods ---

// ListExercises returns the full catalog with resolved media URLs.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise returns a single catalog exercise by ID.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exerciseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := h.exerciseService.GetByID(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise")
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// GenerateMediaUploadURL returns a presigned PUT URL for replacing the
// media object behind a catalog exercise.
func (h *ExerciseHandler) GenerateMediaUploadURL(c *gin.Context) {
	exerciseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req MediaUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	uploadURL, objectKey, err := h.exerciseService.GenerateMediaUploadURL(c.Request.Context(), exerciseID, req.ContentType)
	if err != nil {
		var vErr *service.ValidationError
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.As(err, &vErr) {
			abortWithError(c, http.StatusBadRequest, vErr.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		}
		return
	}

	c.JSON(http.StatusOK, MediaUploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	})
}
