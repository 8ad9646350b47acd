package services

import (
	"errors"
	"fmt"

	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/repository"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserService exposes the read-only user directory.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// ListUsersInput represents filters for the user directory
type ListUsersInput struct {
	Search     string
	Department string
}

// List returns directory entries matching the filters, ordered by name.
func (s *UserService) List(input ListUsersInput) ([]models.User, error) {
	users, err := s.userRepo.List(repository.UserFilter{
		Search:     input.Search,
		Department: input.Department,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns one directory entry.
func (s *UserService) Get(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
