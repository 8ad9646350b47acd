package dto

import (
	"time"

	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
)

// AttendeeDTO represents an attendee in API responses
type AttendeeDTO struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// MeetingDTO represents a meeting in API responses. The field names alias the
// store columns: start/end for the time range, meetingType for meeting_type,
// creator for organizer_id.
type MeetingDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Color       string        `json:"color"`
	Department  string        `json:"department"`
	MeetingType string        `json:"meetingType"`
	Creator     string        `json:"creator"`
	Attendees   []AttendeeDTO `json:"attendees"`
	Canceled    bool          `json:"canceled"`
	Description string        `json:"description"`
}

// ToAttendeeDTO converts an Attendee model to AttendeeDTO
func ToAttendeeDTO(attendee models.Attendee) AttendeeDTO {
	return AttendeeDTO{
		UserID: attendee.UserID,
		Status: attendee.Status,
	}
}

// ToMeetingDTO converts a Meeting model to MeetingDTO. The attendee list is
// always present, empty rather than null.
func ToMeetingDTO(meeting models.Meeting) MeetingDTO {
	attendees := make([]AttendeeDTO, len(meeting.Attendees))
	for i, attendee := range meeting.Attendees {
		attendees[i] = ToAttendeeDTO(attendee)
	}

	return MeetingDTO{
		ID:          meeting.ID,
		Title:       meeting.Title,
		Start:       meeting.StartTime,
		End:         meeting.EndTime,
		Color:       meeting.Color,
		Department:  meeting.Department,
		MeetingType: meeting.MeetingType,
		Creator:     meeting.OrganizerID,
		Attendees:   attendees,
		Canceled:    meeting.Canceled,
		Description: meeting.Description,
	}
}

// ToMeetingDTOs converts a slice of meetings
func ToMeetingDTOs(meetings []models.Meeting) []MeetingDTO {
	result := make([]MeetingDTO, len(meetings))
	for i, meeting := range meetings {
		result[i] = ToMeetingDTO(meeting)
	}
	return result
}
