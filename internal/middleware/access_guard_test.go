package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newGuard(t *testing.T) (*AccessGuard, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewAccessGuard(repository.NewUserRepo(db)), mock
}

func userRow(id uint, role, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "role", "status"}).
		AddRow(id, "user@example.com", role, status)
}

// asUser stands in for the token middleware during tests
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Next()
	}
}

func performRequest(handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/protected", chain...)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAcceptedWithoutAuthentication(t *testing.T) {
	guard, mock := newGuard(t)

	w := performRequest(guard.RequireAccepted())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAcceptedDeletedAccount(t *testing.T) {
	guard, mock := newGuard(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(asUser(7), guard.RequireAccepted())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAcceptedPendingUserForbidden(t *testing.T) {
	guard, mock := newGuard(t)

	// Status is read fresh from the users table, not from the token
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(7, models.RoleHospitalManager, models.UserStatusPending))

	w := performRequest(asUser(7), guard.RequireAccepted())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAcceptedAcceptedUserPasses(t *testing.T) {
	guard, mock := newGuard(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(7, models.RoleHospitalManager, models.UserStatusAccept))

	w := performRequest(asUser(7), guard.RequireAccepted())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAcceptedAdminBypassesStatus(t *testing.T) {
	guard, mock := newGuard(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(1, models.RoleAdmin, models.UserStatusPending))

	w := performRequest(asUser(1), guard.RequireAccepted())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAdminManagerForbidden(t *testing.T) {
	guard, mock := newGuard(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(7, models.RoleHospitalManager, models.UserStatusAccept))

	w := performRequest(asUser(7), guard.RequireAdmin())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAdminAdminPasses(t *testing.T) {
	guard, mock := newGuard(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRow(1, models.RoleAdmin, models.UserStatusAccept))

	w := performRequest(asUser(1), guard.RequireAdmin())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
