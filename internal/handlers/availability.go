package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hexeeyy/safc-meeting-scheduler/internal/errors"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/logger"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/middleware"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/services"
)

// AvailabilityHandler coordinates availability HTTP handlers.
type AvailabilityHandler struct {
	availabilityService *services.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(availabilityService *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// ListAvailability returns the weekly availability of a user, defaulting to
// the caller.
func (h *AvailabilityHandler) ListAvailability(c *gin.Context) {
	callerID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		userID = callerID
	}

	entries, err := h.availabilityService.List(userID)
	if err != nil {
		logger.L().Error("availability listing failed", "error", err)
		apierrors.InternalError(c, "Failed to fetch availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": entries})
}

// CreateAvailability records an availability window for the caller.
func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	callerID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateAvailabilityRequest struct {
		DayOfWeek   *int   `json:"day_of_week" binding:"required"`
		StartTime   string `json:"start_time" binding:"required"`
		EndTime     string `json:"end_time" binding:"required"`
		IsAvailable *bool  `json:"is_available" binding:"required"`
	}

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "day_of_week, start_time, end_time, and is_available are required")
		return
	}

	entry, err := h.availabilityService.Create(services.CreateAvailabilityInput{
		UserID:      callerID,
		DayOfWeek:   *req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: *req.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDayOfWeek),
			errors.Is(err, services.ErrTimeRangeRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			logger.L().Error("availability creation failed", "error", err)
			apierrors.InternalError(c, "Failed to create availability")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"availability": entry})
}
