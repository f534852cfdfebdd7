package models

import "time"

// Doctor represents a doctor listed in the directory
type Doctor struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:255;not null" json:"first_name"`
	LastName  string `gorm:"size:255;not null" json:"last_name"`
	Title     string `gorm:"size:255" json:"title,omitempty"`
	Bio       string `gorm:"type:text" json:"bio,omitempty"`
	ImageURL  string `gorm:"size:255" json:"image_url,omitempty"`

	// Relationships
	Certifications []DoctorCertification `gorm:"foreignKey:DoctorID" json:"certifications,omitempty"`
	Hospitals      []Hospital            `gorm:"many2many:doctor_hospitals;joinForeignKey:DoctorID;joinReferences:HospitalID" json:"hospitals,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// DoctorCertification is a child row of Doctor.
// The full set is replaced on every doctor edit.
type DoctorCertification struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	DoctorID            uint       `gorm:"not null;index" json:"doctor_id"`
	Title               string     `gorm:"size:255;not null" json:"title"`
	DegreeLevel         string     `gorm:"size:255;not null" json:"degree_level"`
	AwardingInstitution string     `gorm:"size:255;not null" json:"awarding_institution"`
	AwardedDate         *time.Time `json:"awarded_date,omitempty"`
}

// TableName specifies the table name for DoctorCertification model
func (DoctorCertification) TableName() string {
	return "doctor_certifications"
}

// DoctorHospital joins doctors to the hospitals they work at.
// The set per doctor is replaced wholesale on doctor edit.
type DoctorHospital struct {
	DoctorID   uint `gorm:"primaryKey" json:"doctor_id"`
	HospitalID uint `gorm:"primaryKey" json:"hospital_id"`
}

// TableName specifies the table name for DoctorHospital model
func (DoctorHospital) TableName() string {
	return "doctor_hospitals"
}
