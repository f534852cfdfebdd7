package service

import (
	"testing"

	"find-your-doctor/internal/models"
	"find-your-doctor/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAffiliationService(db *gorm.DB) *AffiliationService {
	return NewAffiliationService(
		repository.NewHospitalUserRepo(db),
		repository.NewHospitalRepo(db),
		zerolog.Nop(),
	)
}

func TestCreateRequestAdminRefused(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAffiliationService(db)

	request, err := svc.CreateRequest(RequestInput{
		HospitalID:              3,
		UserID:                  1,
		Role:                    models.RoleAdmin,
		PrivacyPolicyAgreement:  true,
		TermsOfServiceAgreement: true,
	})

	assert.Nil(t, request)
	assert.ErrorIs(t, err, ErrAdminsCannotRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequestAgreementsMandatory(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAffiliationService(db)

	tests := []struct {
		name    string
		privacy bool
		terms   bool
	}{
		{name: "neither agreed", privacy: false, terms: false},
		{name: "privacy only", privacy: true, terms: false},
		{name: "terms only", privacy: false, terms: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := svc.CreateRequest(RequestInput{
				HospitalID:              3,
				UserID:                  7,
				Role:                    models.RoleHospitalManager,
				PrivacyPolicyAgreement:  tt.privacy,
				TermsOfServiceAgreement: tt.terms,
			})

			assert.Nil(t, request)
			assert.ErrorIs(t, err, ErrAgreementsRequired)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequestHospitalMustExist(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAffiliationService(db)

	mock.ExpectQuery("SELECT .* FROM `hospitals`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	request, err := svc.CreateRequest(RequestInput{
		HospitalID:              99,
		UserID:                  7,
		Role:                    models.RoleHospitalManager,
		PrivacyPolicyAgreement:  true,
		TermsOfServiceAgreement: true,
	})

	assert.Nil(t, request)
	assert.ErrorIs(t, err, repository.ErrHospitalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequestSubmits(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAffiliationService(db)

	mock.ExpectQuery("SELECT .* FROM `hospitals`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "area_id"}).AddRow(3, "Shar Hospital", 2))
	mock.ExpectQuery("SELECT .* FROM `areas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city_id"}))
	mock.ExpectQuery("SELECT .* FROM `doctor_hospitals`").
		WillReturnRows(sqlmock.NewRows([]string{"doctor_id", "hospital_id"}))
	mock.ExpectQuery("SELECT .* FROM `hospital_facilities`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hospital_id"}))
	mock.ExpectQuery("SELECT .* FROM `hospital_phones`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hospital_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hospital_users`.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `hospital_users`").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectCommit()

	request, err := svc.CreateRequest(RequestInput{
		HospitalID:              3,
		UserID:                  7,
		Role:                    models.RoleHospitalManager,
		RequestMessage:          "I manage this hospital",
		PrivacyPolicyAgreement:  true,
		TermsOfServiceAgreement: true,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, uint(3), request.HospitalID)
	assert.Equal(t, uint(7), request.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
