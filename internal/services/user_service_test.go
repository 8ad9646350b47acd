package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewUserService(repository.NewUserRepository(db)), db
}

func TestUserServiceGet(t *testing.T) {
	svc, db := newUserService(t)

	user := &models.User{
		ID:    uuid.NewString(),
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	}
	require.NoError(t, db.Create(user).Error)

	found, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)
}

func TestUserServiceGet_Missing(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Get(uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
