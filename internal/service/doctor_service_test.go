package service

import (
	"testing"

	"find-your-doctor/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDoctorService(db *gorm.DB) *DoctorService {
	return NewDoctorService(repository.NewDoctorRepo(db), zerolog.Nop())
}

func TestListDoctorsPageBeyondLastIsEmptyNotError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newDoctorService(db)

	mock.ExpectQuery("(?i)SELECT count.* FROM `doctors`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectQuery("SELECT .* FROM `doctors` ORDER BY doctors\\.last_name ASC, doctors\\.first_name ASC LIMIT \\? OFFSET \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}))

	result, err := svc.ListDoctors(repository.ListFilter{Page: 99, PageSize: 9})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(3), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 99, result.Page)
	assert.NoError(t, mock.ExpectationsWereMet())
}
