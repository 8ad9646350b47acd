package repository

import (
	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
	"gorm.io/gorm"
)

// GormAvailabilityRepository is a GORM implementation of AvailabilityRepository
type GormAvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new AvailabilityRepository
func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &GormAvailabilityRepository{db: db}
}

// ListByUserID retrieves a user's availability ordered by day of week
func (r *GormAvailabilityRepository) ListByUserID(userID string) ([]models.Availability, error) {
	var entries []models.Availability
	err := r.db.Where("user_id = ?", userID).
		Order("day_of_week ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Create inserts a new availability window
func (r *GormAvailabilityRepository) Create(availability *models.Availability) error {
	return r.db.Create(availability).Error
}
