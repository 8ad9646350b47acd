package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/dto"
	apierrors "github.com/hexeeyy/safc-meeting-scheduler/internal/errors"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/logger"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/middleware"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/services"
)

// MeetingHandler coordinates meeting-related HTTP handlers.
type MeetingHandler struct {
	meetingService *services.MeetingService
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(meetingService *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// CreateMeeting creates a meeting owned by the caller, optionally with an
// initial attendee set.
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateMeetingRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		StartTime   *time.Time `json:"start_time"`
		EndTime     *time.Time `json:"end_time"`
		Color       string     `json:"color"`
		Department  string     `json:"department"`
		MeetingType string     `json:"meeting_type"`
		AttendeeIDs []string   `json:"attendee_ids"`
	}

	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.Create(services.CreateMeetingInput{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		Department:  req.Department,
		MeetingType: req.MeetingType,
		AttendeeIDs: req.AttendeeIDs,
		OrganizerID: userID,
	})
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTO(*meeting))
}

// ListMeetings returns the caller's meetings, optionally restricted to a date
// range. Canceled meetings are excluded unless include_canceled=true.
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	input := services.ListMeetingsInput{
		OrganizerID:     userID,
		IncludeCanceled: c.Query("include_canceled") == "true",
	}

	if raw := c.Query("start_date"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid start_date")
			return
		}
		input.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := parseTimestamp(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid end_date")
			return
		}
		input.EndDate = &t
	}

	meetings, err := h.meetingService.List(input)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTOs(meetings))
}

// UpdateMeeting applies a partial patch; a present attendee_ids list replaces
// the entire attendee set.
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateMeetingRequest struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		StartTime   *time.Time `json:"start_time"`
		EndTime     *time.Time `json:"end_time"`
		Color       *string    `json:"color"`
		Department  *string    `json:"department"`
		MeetingType *string    `json:"meeting_type"`
		Canceled    *bool      `json:"canceled"`
		AttendeeIDs []string   `json:"attendee_ids"`
	}

	var req UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.Update(c.Param("meeting_id"), services.UpdateMeetingInput{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		Department:  req.Department,
		MeetingType: req.MeetingType,
		Canceled:    req.Canceled,
		AttendeeIDs: req.AttendeeIDs,
	}, userID)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTO(*meeting))
}

// CancelMeeting soft-deletes a meeting and returns a confirmation message.
func (h *MeetingHandler) CancelMeeting(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.meetingService.Cancel(c.Param("meeting_id"), userID); err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting canceled"})
}

// ResizeMeeting updates only the time range of a meeting.
func (h *MeetingHandler) ResizeMeeting(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type ResizeMeetingRequest struct {
		StartTime time.Time `json:"start_time" binding:"required"`
		EndTime   time.Time `json:"end_time" binding:"required"`
	}

	var req ResizeMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "start_time and end_time are required")
		return
	}

	meeting, err := h.meetingService.Resize(c.Param("meeting_id"), req.StartTime, req.EndTime, userID)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTO(*meeting))
}

// UpdateAttendance lets the caller change their own attendance status (RSVP).
func (h *MeetingHandler) UpdateAttendance(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateAttendanceRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Status is required")
		return
	}

	attendee, err := h.meetingService.UpdateAttendeeStatus(c.Param("meeting_id"), userID, req.Status)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendee": dto.ToAttendeeDTO(*attendee)})
}

// AddAttendee lets the organizer append a single attendee.
func (h *MeetingHandler) AddAttendee(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type AddAttendeeRequest struct {
		UserID string `json:"user_id" binding:"required"`
	}

	var req AddAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "user_id is required")
		return
	}

	attendee, err := h.meetingService.AddAttendee(c.Param("meeting_id"), req.UserID, userID)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attendee": dto.ToAttendeeDTO(*attendee)})
}

// parseTimestamp accepts either an RFC 3339 timestamp or a bare date.
func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// respondMeetingError maps service errors to the fixed API taxonomy. Store
// errors are logged with full detail and surface as a generic 500.
func respondMeetingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrStatusRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMeetingAccessDenied):
		apierrors.Forbidden(c, "Not authorized or meeting not found")
	case errors.Is(err, services.ErrAttendeeNotFound):
		apierrors.NotFound(c, "Attendee not found")
	default:
		logger.L().Error("meeting operation failed", "error", err)
		apierrors.InternalError(c, "")
	}
}
