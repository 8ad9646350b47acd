package repository

import (
	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
	"gorm.io/gorm"
)

// GormMeetingRepository is a GORM implementation of MeetingRepository
type GormMeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &GormMeetingRepository{db: db}
}

// Create inserts a new meeting row
func (r *GormMeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// FindByID finds a meeting by ID
func (r *GormMeetingRepository) FindByID(id string) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.Where("id = ?", id).First(&meeting).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindOrganizerID reads only the organizer column of a meeting
func (r *GormMeetingRepository) FindOrganizerID(id string) (string, error) {
	var meeting struct {
		OrganizerID string
	}
	err := r.db.Model(&models.Meeting{}).
		Select("organizer_id").
		Where("id = ?", id).
		Take(&meeting).Error
	if err != nil {
		return "", err
	}
	return meeting.OrganizerID, nil
}

// List retrieves meetings with filtering, without attendees. Attendee rows are
// always fetched separately and merged by the service layer.
func (r *GormMeetingRepository) List(filter MeetingFilter) ([]models.Meeting, error) {
	var meetings []models.Meeting

	query := r.db.Model(&models.Meeting{}).Where("organizer_id = ?", filter.OrganizerID)

	if filter.StartDate != nil {
		query = query.Where("start_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("end_time <= ?", *filter.EndDate)
	}
	if !filter.IncludeCanceled {
		query = query.Where("canceled = ?", false)
	}

	if err := query.Find(&meetings).Error; err != nil {
		return nil, err
	}

	return meetings, nil
}

// UpdateFields applies a partial column update to a meeting
func (r *GormMeetingRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Meeting{}).Where("id = ?", id).Updates(fields).Error
}

// ListAttendees fetches the current attendee rows of a meeting
func (r *GormMeetingRepository) ListAttendees(meetingID string) ([]models.Attendee, error) {
	var attendees []models.Attendee
	if err := r.db.Where("meeting_id = ?", meetingID).Find(&attendees).Error; err != nil {
		return nil, err
	}
	return attendees, nil
}

// CreateAttendees bulk-inserts attendee rows
func (r *GormMeetingRepository) CreateAttendees(attendees []models.Attendee) error {
	if len(attendees) == 0 {
		return nil
	}
	return r.db.Create(&attendees).Error
}

// ReplaceAttendees swaps the full attendee set of a meeting in one transaction
func (r *GormMeetingRepository) ReplaceAttendees(meetingID string, userIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Delete(&models.Attendee{}).Error; err != nil {
			return err
		}

		if len(userIDs) == 0 {
			return nil
		}

		attendees := make([]models.Attendee, len(userIDs))
		for i, userID := range userIDs {
			attendees[i] = models.Attendee{
				MeetingID: meetingID,
				UserID:    userID,
				Status:    models.AttendeeStatusPending,
			}
		}
		return tx.Create(&attendees).Error
	})
}

// FindAttendee finds a specific attendee row of a meeting
func (r *GormMeetingRepository) FindAttendee(meetingID, userID string) (*models.Attendee, error) {
	var attendee models.Attendee
	if err := r.db.Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		First(&attendee).Error; err != nil {
		return nil, err
	}
	return &attendee, nil
}

// UpdateAttendeeStatus sets the status of one attendee row
func (r *GormMeetingRepository) UpdateAttendeeStatus(meetingID, userID, status string) error {
	result := r.db.Model(&models.Attendee{}).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
