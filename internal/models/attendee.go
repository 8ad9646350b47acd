package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendeeStatusPending is the status every freshly invited attendee starts
// with. The status column itself is free form; the identity provider's
// frontend writes values like "accepted" or "declined" through the RSVP route.
const AttendeeStatusPending = "pending"

type Attendee struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	MeetingID string    `gorm:"type:uuid;not null;index" json:"meeting_id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Meeting Meeting `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
}

func (a *Attendee) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = AttendeeStatusPending
	}
	return nil
}
