package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Meeting indexes for the organizer-scoped list and date-range filters
		{"meetings", "idx_meetings_organizer_id", "organizer_id"},
		{"meetings", "idx_meetings_start_time", "start_time"},
		{"meetings", "idx_meetings_end_time", "end_time"},
		{"meetings", "idx_meetings_canceled", "canceled"},

		// Attendee indexes for the per-meeting fetch and the RSVP lookup
		{"attendees", "idx_attendees_meeting_id", "meeting_id"},
		{"attendees", "idx_attendees_user_id", "user_id"},

		// Availability and user directory lookups
		{"availabilities", "idx_availabilities_user_id", "user_id"},
		{"users", "idx_users_department", "department"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}

// MigrateDatabase runs all database migrations
func MigrateDatabase(db *gorm.DB) error {
	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
