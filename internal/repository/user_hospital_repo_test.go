package repository

import (
	"testing"

	"find-your-doctor/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestSecondPendingRefused(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospital_users`.*FOR UPDATE").
		WithArgs(uint(7), models.RequestStatusPending).
		WillReturnRows(countRows(1))
	mock.ExpectRollback()

	err := repo.CreateRequest(&models.HospitalUser{HospitalID: 3, UserID: 7})

	assert.ErrorIs(t, err, ErrPendingRequestExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequestStartsPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospital_users`.*FOR UPDATE").
		WillReturnRows(countRows(0))
	mock.ExpectExec("INSERT INTO `hospital_users`").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectCommit()

	request := &models.HospitalUser{
		HospitalID: 3,
		UserID:     7,
		// A client-supplied status never survives submission
		Status:                  models.RequestStatusAccept,
		PrivacyPolicyAgreement:  true,
		TermsOfServiceAgreement: true,
	}
	err := repo.CreateRequest(request)

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequestStatusNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalUserRepo(db)

	mock.ExpectQuery("SELECT `id` FROM `hospital_users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.UpdateRequestStatus(42, models.RequestStatusAccept)

	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequestStatusRedecideRewrites(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalUserRepo(db)

	mock.ExpectQuery("SELECT `id` FROM `hospital_users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec("UPDATE `hospital_users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRequestStatus(42, models.RequestStatusReject)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
