package services

import (
	"errors"
	"fmt"

	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/repository"
)

var (
	ErrInvalidDayOfWeek  = errors.New("day_of_week must be between 0 and 6")
	ErrTimeRangeRequired = errors.New("start_time and end_time are required")
)

// AvailabilityService handles weekly availability windows.
type AvailabilityService struct {
	availabilityRepo repository.AvailabilityRepository
}

// NewAvailabilityService creates a new AvailabilityService
func NewAvailabilityService(availabilityRepo repository.AvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo: availabilityRepo,
	}
}

// List returns a user's availability ordered by day of week.
func (s *AvailabilityService) List(userID string) ([]models.Availability, error) {
	entries, err := s.availabilityRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return entries, nil
}

// CreateAvailabilityInput represents one availability window to record.
type CreateAvailabilityInput struct {
	UserID      string
	DayOfWeek   int
	StartTime   string
	EndTime     string
	IsAvailable bool
}

// Create records an availability window for a user.
func (s *AvailabilityService) Create(input CreateAvailabilityInput) (*models.Availability, error) {
	if input.DayOfWeek < 0 || input.DayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}
	if input.StartTime == "" || input.EndTime == "" {
		return nil, ErrTimeRangeRequired
	}

	entry := &models.Availability{
		UserID:      input.UserID,
		DayOfWeek:   input.DayOfWeek,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		IsAvailable: input.IsAvailable,
	}
	if err := s.availabilityRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}

	return entry, nil
}
