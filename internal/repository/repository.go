package repository

import (
	"time"

	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
)

// MeetingRepository defines the interface for meeting and attendee data access
type MeetingRepository interface {
	// Create inserts a new meeting row
	Create(meeting *models.Meeting) error

	// FindByID finds a meeting by ID
	FindByID(id string) (*models.Meeting, error)

	// FindOrganizerID reads only the organizer of a meeting, for ownership checks
	FindOrganizerID(id string) (string, error)

	// List retrieves meetings with filtering, without attendees
	List(filter MeetingFilter) ([]models.Meeting, error)

	// UpdateFields applies a partial column update to a meeting
	UpdateFields(id string, fields map[string]interface{}) error

	// ListAttendees fetches the current attendee rows of a meeting
	ListAttendees(meetingID string) ([]models.Attendee, error)

	// CreateAttendees bulk-inserts attendee rows
	CreateAttendees(attendees []models.Attendee) error

	// ReplaceAttendees deletes every attendee of a meeting and inserts the
	// given user IDs as the new set, all inside one transaction
	ReplaceAttendees(meetingID string, userIDs []string) error

	// FindAttendee finds a specific attendee row of a meeting
	FindAttendee(meetingID, userID string) (*models.Attendee, error)

	// UpdateAttendeeStatus sets the status of one attendee row
	UpdateAttendeeStatus(meetingID, userID, status string) error
}

// MeetingFilter holds filtering options for listing meetings
type MeetingFilter struct {
	OrganizerID     string
	StartDate       *time.Time
	EndDate         *time.Time
	IncludeCanceled bool
}

// UserRepository defines the interface for the read-only user directory
type UserRepository interface {
	// List retrieves directory entries ordered by name
	List(filter UserFilter) ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)
}

// UserFilter holds filtering options for the user directory
type UserFilter struct {
	Search     string
	Department string
}

// AvailabilityRepository defines the interface for availability data access
type AvailabilityRepository interface {
	// ListByUserID retrieves a user's availability ordered by day of week
	ListByUserID(userID string) ([]models.Availability, error)

	// Create inserts a new availability window
	Create(availability *models.Availability) error
}
