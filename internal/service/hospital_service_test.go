package service

import (
	"testing"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

	return db, mock
}

func newHospitalService(db *gorm.DB, dedupAllCreates bool) *HospitalService {
	return NewHospitalService(
		repository.NewHospitalRepo(db),
		repository.NewHospitalUserRepo(db),
		repository.NewGeoRepo(db),
		dedupAllCreates,
		zerolog.Nop(),
	)
}

func expectAreaExists(mock sqlmock.Sqlmock, found int64) {
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `areas`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(found))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{name: "empty", total: 0, pageSize: 9, want: 0},
		{name: "partial page", total: 5, pageSize: 9, want: 1},
		{name: "exact boundary", total: 18, pageSize: 9, want: 2},
		{name: "one over boundary", total: 19, pageSize: 9, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPages(tt.total, tt.pageSize))
		})
	}
}

func TestCreateHospitalAdminGoesLiveImmediately(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newHospitalService(db, false)

	expectAreaExists(mock, 1)
	mock.ExpectBegin()
	// Admins get the duplicate check but never the pending-owner block
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospitals`.*FOR UPDATE").
		WithArgs("Shar Hospital", uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `hospitals`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO `hospital_users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	hospital := &models.Hospital{Name: "Shar Hospital", AreaID: 2}
	err := svc.CreateHospital(hospital, nil, nil, 1, models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, models.HospitalStatusActive, hospital.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHospitalManagerStartsPending(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newHospitalService(db, false)

	expectAreaExists(mock, 1)
	mock.ExpectBegin()
	// Managers get the pending-owner block but, by default, no
	// duplicate check
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospital_users`.*FOR UPDATE").
		WithArgs(uint(7), models.RequestStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `hospitals`").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("INSERT INTO `hospital_users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	hospital := &models.Hospital{Name: "Shar Hospital", AreaID: 2}
	err := svc.CreateHospital(hospital, nil, nil, 7, models.RoleHospitalManager)

	require.NoError(t, err)
	assert.Equal(t, models.HospitalStatusPending, hospital.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHospitalManagerDedupWhenConfigured(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newHospitalService(db, true)

	expectAreaExists(mock, 1)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospital_users`.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospitals`.*FOR UPDATE").
		WithArgs("Shar Hospital", uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	hospital := &models.Hospital{Name: "Shar Hospital", AreaID: 2}
	err := svc.CreateHospital(hospital, nil, nil, 7, models.RoleHospitalManager)

	assert.ErrorIs(t, err, repository.ErrDuplicateHospital)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHospitalManagerBlockedWhilePending(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newHospitalService(db, false)

	expectAreaExists(mock, 1)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospital_users`.*FOR UPDATE").
		WithArgs(uint(7), models.RequestStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	hospital := &models.Hospital{Name: "Another Hospital", AreaID: 3}
	err := svc.CreateHospital(hospital, nil, nil, 7, models.RoleHospitalManager)

	assert.ErrorIs(t, err, repository.ErrPendingRequestExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHospitalUnknownAreaRefused(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newHospitalService(db, false)

	expectAreaExists(mock, 0)

	hospital := &models.Hospital{Name: "Shar Hospital", AreaID: 99}
	err := svc.CreateHospital(hospital, nil, nil, 1, models.RoleAdmin)

	assert.ErrorIs(t, err, repository.ErrAreaNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHospitalsPaginationEnvelope(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newHospitalService(db, false)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospitals`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(10))
	mock.ExpectQuery("SELECT .* FROM `hospitals` ORDER BY hospitals\\.name ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	// Malformed pagination folds back to the first default-sized page
	result, err := svc.ListHospitals(repository.ListFilter{Page: -2, PageSize: 0})

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, repository.DefaultPageSize, result.PageSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHospitalsPageBeyondLastIsEmptyNotError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newHospitalService(db, false)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospitals`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectQuery("SELECT .* FROM `hospitals` ORDER BY hospitals\\.name ASC LIMIT \\? OFFSET \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	result, err := svc.ListHospitals(repository.ListFilter{Page: 99, PageSize: 9})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(3), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 99, result.Page)
	assert.NoError(t, mock.ExpectationsWereMet())
}
