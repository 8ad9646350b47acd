package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Meeting struct {
	ID          string    `gorm:"type:uuid;primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	OrganizerID string    `gorm:"type:uuid;not null;index" json:"organizer_id"`
	Canceled    bool      `gorm:"not null;default:false" json:"canceled"`
	Color       string    `gorm:"type:varchar(50)" json:"color"`
	Department  string    `gorm:"type:varchar(100)" json:"department"`
	MeetingType string    `gorm:"type:varchar(100)" json:"meeting_type"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Attendees []Attendee `gorm:"foreignKey:MeetingID" json:"attendees,omitempty"`
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
