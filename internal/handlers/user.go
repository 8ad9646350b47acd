package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/dto"
	apierrors "github.com/hexeeyy/safc-meeting-scheduler/internal/errors"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/logger"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/middleware"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/services"
)

// UserHandler serves the read-only user directory.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns directory entries, filterable by name/email substring and
// department.
func (h *UserHandler) ListUsers(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	users, err := h.userService.List(services.ListUsersInput{
		Search:     c.Query("search"),
		Department: c.Query("department"),
	})
	if err != nil {
		logger.L().Error("user listing failed", "error", err)
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}
