package api

import (
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the profile service dependency for admin views.
type UserHandler struct {
	profileService service.ProfileService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(profileService service.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

// ListUsers returns every user with their profile attached. Feeds the
// admin view that assigns workouts to members.
func (h *UserHandler) ListUsers(c *gin.Context) {
	overviews, err := h.profileService.ListUserOverviews(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, overviews)
}
