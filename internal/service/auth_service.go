package service

import (
	"errors"
	"fmt"
	"time"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"
	"find-your-doctor/pkg/utils"

	"github.com/rs/zerolog"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrAdminSignupDisabled = errors.New("admin accounts cannot be self-registered")
)

type AuthService struct {
	userRepo         *repository.UserRepository
	allowAdminSignup bool
	log              zerolog.Logger
}

func NewAuthService(userRepo *repository.UserRepository, allowAdminSignup bool, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		allowAdminSignup: allowAdminSignup,
		log:              log,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
	}
}

// issueTokens generates the access/refresh token pair and stores the
// hashed refresh token
func (s *AuthService) issueTokens(user *models.User) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errors.New("invalid credentials")
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("user logged in")
	return response, nil
}

// RegisterInput carries a registration submission
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Role        string
	PhoneNumber string
	Bio         string
}

// Register creates a new account. New users always start with pending
// status; an admin must accept them before they can create or claim
// anything. Self-registering as admin is refused unless AllowAdminSignup
// is set: admins skip the status gate, so the admin role must come from
// the seed or an existing admin.
func (s *AuthService) Register(in RegisterInput) (*LoginResponse, error) {
	if in.Role == models.RoleAdmin && !s.allowAdminSignup {
		return nil, ErrAdminSignupDisabled
	}

	existingUser, err := s.userRepo.FindUserByEmail(in.Email)
	if err == nil && existingUser != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: passwordHash,
		Role:         in.Role,
		Status:       models.UserStatusPending,
		PhoneNumber:  in.PhoneNumber,
		Bio:          in.Bio,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return response, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.userRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
