package service

import (
	"testing"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB, allowAdminSignup bool) *AuthService {
	return NewAuthService(repository.NewUserRepo(db), allowAdminSignup, zerolog.Nop())
}

func TestRegisterAdminRoleRefusedByDefault(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAuthService(db, false)

	response, err := svc.Register(RegisterInput{
		FirstName: "Lana",
		LastName:  "Omar",
		Email:     "lana@example.com",
		Password:  "secret123",
		Role:      models.RoleAdmin,
	})
	require.ErrorIs(t, err, ErrAdminSignupDisabled)
	assert.Nil(t, response)

	// refused before touching the database
	assert.NoError(t, mock.ExpectationsWereMet())
}
