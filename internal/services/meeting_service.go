package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrMeetingAccessDenied covers both "meeting does not exist" and "caller
	// is not the organizer". The two cases are deliberately indistinguishable
	// to callers.
	ErrMeetingAccessDenied = errors.New("not authorized or meeting not found")
	ErrAttendeeNotFound    = errors.New("attendee not found for this meeting")
	ErrTitleRequired       = errors.New("title is required")
	ErrStatusRequired      = errors.New("status is required")
)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo repository.MeetingRepository
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(meetingRepo repository.MeetingRepository) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
	}
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title       string
	Description string
	StartTime   *time.Time
	EndTime     *time.Time
	Color       string
	Department  string
	MeetingType string
	AttendeeIDs []string
	OrganizerID string
}

// ListMeetingsInput represents filters for listing meetings
type ListMeetingsInput struct {
	OrganizerID     string
	StartDate       *time.Time
	EndDate         *time.Time
	IncludeCanceled bool
}

// UpdateMeetingInput represents a partial meeting patch. Nil fields are left
// unchanged; a non-nil AttendeeIDs (including an empty slice) replaces the
// whole attendee set.
type UpdateMeetingInput struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Color       *string
	Department  *string
	MeetingType *string
	Canceled    *bool
	AttendeeIDs []string
}

// Create inserts a meeting owned by the caller and, when attendee IDs are
// given, its initial attendee set with status "pending". The two inserts are
// not atomic: when the attendee insert fails the meeting row stays behind
// without attendees and the error surfaces to the caller.
func (s *MeetingService) Create(input CreateMeetingInput) (*models.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	meeting := &models.Meeting{
		Title:       input.Title,
		Description: input.Description,
		OrganizerID: input.OrganizerID,
		Canceled:    false,
		Color:       input.Color,
		Department:  input.Department,
		MeetingType: input.MeetingType,
	}
	if input.StartTime != nil {
		meeting.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		meeting.EndTime = *input.EndTime
	}

	if err := s.meetingRepo.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	if len(input.AttendeeIDs) > 0 {
		attendees := make([]models.Attendee, len(input.AttendeeIDs))
		for i, userID := range input.AttendeeIDs {
			attendees[i] = models.Attendee{
				MeetingID: meeting.ID,
				UserID:    userID,
				Status:    models.AttendeeStatusPending,
			}
		}
		if err := s.meetingRepo.CreateAttendees(attendees); err != nil {
			return nil, fmt.Errorf("failed to create attendees: %w", err)
		}
	}

	return s.assemble(meeting.ID)
}

// List returns the caller's meetings with their attendee sets merged in. Each
// attendee set is fetched separately, after the meeting rows.
func (s *MeetingService) List(input ListMeetingsInput) ([]models.Meeting, error) {
	filter := repository.MeetingFilter{
		OrganizerID:     input.OrganizerID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		IncludeCanceled: input.IncludeCanceled,
	}

	meetings, err := s.meetingRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	for i := range meetings {
		attendees, err := s.meetingRepo.ListAttendees(meetings[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch attendees: %w", err)
		}
		meetings[i].Attendees = attendees
	}

	return meetings, nil
}

// Update applies a partial patch to a meeting owned by the caller and returns
// the freshly re-read meeting with its current attendees.
func (s *MeetingService) Update(meetingID string, input UpdateMeetingInput, callerID string) (*models.Meeting, error) {
	if err := s.authorize(meetingID, callerID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.StartTime != nil {
		fields["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		fields["end_time"] = *input.EndTime
	}
	if input.Color != nil {
		fields["color"] = *input.Color
	}
	if input.Department != nil {
		fields["department"] = *input.Department
	}
	if input.MeetingType != nil {
		fields["meeting_type"] = *input.MeetingType
	}
	if input.Canceled != nil {
		fields["canceled"] = *input.Canceled
	}

	if err := s.meetingRepo.UpdateFields(meetingID, fields); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	if input.AttendeeIDs != nil {
		if err := s.meetingRepo.ReplaceAttendees(meetingID, input.AttendeeIDs); err != nil {
			return nil, fmt.Errorf("failed to replace attendees: %w", err)
		}
	}

	return s.assemble(meetingID)
}

// Cancel soft-deletes a meeting owned by the caller by setting canceled=true.
func (s *MeetingService) Cancel(meetingID, callerID string) error {
	if err := s.authorize(meetingID, callerID); err != nil {
		return err
	}

	if err := s.meetingRepo.UpdateFields(meetingID, map[string]interface{}{"canceled": true}); err != nil {
		return fmt.Errorf("failed to cancel meeting: %w", err)
	}

	return nil
}

// Resize updates only the time range of a meeting owned by the caller and
// returns the re-read meeting with its attendees.
func (s *MeetingService) Resize(meetingID string, start, end time.Time, callerID string) (*models.Meeting, error) {
	if err := s.authorize(meetingID, callerID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"start_time": start,
		"end_time":   end,
	}
	if err := s.meetingRepo.UpdateFields(meetingID, fields); err != nil {
		return nil, fmt.Errorf("failed to resize meeting: %w", err)
	}

	return s.assemble(meetingID)
}

// UpdateAttendeeStatus lets the caller change their own attendance status on
// a meeting (RSVP).
func (s *MeetingService) UpdateAttendeeStatus(meetingID, callerID, status string) (*models.Attendee, error) {
	if strings.TrimSpace(status) == "" {
		return nil, ErrStatusRequired
	}

	if err := s.meetingRepo.UpdateAttendeeStatus(meetingID, callerID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}

	attendee, err := s.meetingRepo.FindAttendee(meetingID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read attendee: %w", err)
	}
	return attendee, nil
}

// AddAttendee appends a single attendee with status "pending". Only the
// organizer may add attendees.
func (s *MeetingService) AddAttendee(meetingID, userID, callerID string) (*models.Attendee, error) {
	if err := s.authorize(meetingID, callerID); err != nil {
		return nil, err
	}

	attendee := models.Attendee{
		MeetingID: meetingID,
		UserID:    userID,
		Status:    models.AttendeeStatusPending,
	}
	if err := s.meetingRepo.CreateAttendees([]models.Attendee{attendee}); err != nil {
		return nil, fmt.Errorf("failed to add attendee: %w", err)
	}

	added, err := s.meetingRepo.FindAttendee(meetingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read attendee: %w", err)
	}
	return added, nil
}

// authorize checks that the caller organizes the meeting. A missing meeting
// and a foreign meeting produce the same error.
func (s *MeetingService) authorize(meetingID, callerID string) error {
	organizerID, err := s.meetingRepo.FindOrganizerID(meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeetingAccessDenied
		}
		return fmt.Errorf("failed to check meeting ownership: %w", err)
	}
	if organizerID != callerID {
		return ErrMeetingAccessDenied
	}
	return nil
}

// assemble re-reads a meeting and merges its current attendee rows.
func (s *MeetingService) assemble(meetingID string) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read meeting: %w", err)
	}

	attendees, err := s.meetingRepo.ListAttendees(meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendees: %w", err)
	}
	meeting.Attendees = attendees

	return meeting, nil
}
