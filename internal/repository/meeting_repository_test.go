package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockRepository wires the repository against a sqlmock connection so the
// generated SQL can be asserted without a live Postgres.
func newMockRepository(t *testing.T) (MeetingRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewMeetingRepository(db), mock
}

func TestFindOrganizerID_ReadsOnlyOrganizerColumn(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT "organizer_id" FROM "meetings" WHERE id = \$1`).
		WithArgs("m-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"organizer_id"}).AddRow("u-1"))

	organizerID, err := repo.FindOrganizerID("m-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", organizerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrganizerID_MissingMeeting(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT "organizer_id" FROM "meetings" WHERE id = \$1`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"organizer_id"}))

	_, err := repo.FindOrganizerID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ExcludesCanceledByDefault(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "meetings" WHERE organizer_id = \$1 AND canceled = \$2`).
		WithArgs("u-1", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "organizer_id", "canceled"}).
			AddRow("m-1", "Standup", "u-1", false))

	meetings, err := repo.List(MeetingFilter{OrganizerID: "u-1"})
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "Standup", meetings[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_AppliesDateRange(t *testing.T) {
	repo, mock := newMockRepository(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "meetings" WHERE organizer_id = \$1 AND start_time >= \$2 AND end_time <= \$3`).
		WithArgs("u-1", start, end, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.List(MeetingFilter{
		OrganizerID: "u-1",
		StartDate:   &start,
		EndDate:     &end,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFields_PartialUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE "meetings" SET "title"=\$1 WHERE id = \$2`).
		WithArgs("New title", "m-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateFields("m-1", map[string]interface{}{"title": "New title"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFields_EmptyPatchIsNoop(t *testing.T) {
	repo, mock := newMockRepository(t)

	err := repo.UpdateFields("m-1", map[string]interface{}{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAttendees_EmptySetRunsDeleteInTransaction(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "attendees" WHERE meeting_id = \$1`).
		WithArgs("m-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.ReplaceAttendees("m-1", nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAttendeeStatus_NoRowIsNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE "attendees" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAttendeeStatus("m-1", "u-1", "accepted")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
