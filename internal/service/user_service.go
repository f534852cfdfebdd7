package service

import (
	"errors"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/rs/zerolog"
)

var ErrInvalidUserStatus = errors.New("invalid user status")

type UserService struct {
	userRepo *repository.UserRepository
	log      zerolog.Logger
}

func NewUserService(userRepo *repository.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		log:      log,
	}
}

// GetUserByID returns a user profile
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.FindUserByID(id)
}

// ListUsers returns all users for the admin moderation view
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.ListUsers()
}

// SetUserStatus transitions a user's account status (admin action)
func (s *UserService) SetUserStatus(id uint, status string) error {
	switch status {
	case models.UserStatusPending, models.UserStatusAccept, models.UserStatusReject:
	default:
		return ErrInvalidUserStatus
	}

	if err := s.userRepo.UpdateUserStatus(id, status); err != nil {
		return err
	}

	s.log.Info().Uint("user_id", id).Str("status", status).Msg("user status updated")
	return nil
}
