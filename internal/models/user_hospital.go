package models

import "time"

// Affiliation request status. Pending requests are terminal once an admin
// accepts or rejects them; a user may hold at most one pending request.
const (
	RequestStatusPending = "pending"
	RequestStatusAccept  = "accept"
	RequestStatusReject  = "reject"
)

// HospitalUser represents a user's claim to manage a hospital.
// Created pending alongside a manager's hospital, or directly by
// POST /hospitals/:id/request; decided by an admin.
type HospitalUser struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	HospitalID              uint      `gorm:"not null;index" json:"hospital_id"`
	UserID                  uint      `gorm:"not null;index" json:"user_id"`
	RequestMessage          string    `gorm:"size:255" json:"request_message,omitempty"`
	Status                  string    `gorm:"type:enum('pending','accept','reject');default:'pending';not null" json:"status"`
	PrivacyPolicyAgreement  bool      `gorm:"default:false" json:"privacy_policy_agreement"`
	TermsOfServiceAgreement bool      `gorm:"default:false" json:"terms_of_service_agreement"`
	CreatedAt               time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for HospitalUser model
func (HospitalUser) TableName() string {
	return "hospital_users"
}
