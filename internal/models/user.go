package models

import "time"

// User mirrors the directory rows managed by the identity provider. This
// service only ever reads them; account creation and profile updates happen
// upstream.
type User struct {
	ID         string    `gorm:"type:uuid;primarykey" json:"id"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name       string    `gorm:"type:varchar(255)" json:"name"`
	AvatarURL  string    `gorm:"type:varchar(500)" json:"avatar_url"`
	Department string    `gorm:"type:varchar(100)" json:"department"`
	Role       string    `gorm:"type:varchar(20)" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}
