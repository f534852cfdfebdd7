package models

// Hospital status lifecycle. A hospital created by a non-admin starts
// pending and only moves to active or inactive through admin moderation.
const (
	HospitalStatusPending  = "pending"
	HospitalStatusActive   = "active"
	HospitalStatusInactive = "inactive"
)

// Hospital represents a hospital listed in the directory
type Hospital struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	AreaID          uint   `gorm:"not null;index" json:"area_id"`
	Name            string `gorm:"size:255;not null" json:"name"`
	Summary         string `gorm:"type:text" json:"summary,omitempty"`
	EmergencyStatus bool   `gorm:"default:false" json:"emergency_status"`
	Address         string `gorm:"size:255" json:"address,omitempty"`
	ContactEmail    string `gorm:"size:255" json:"contact_email,omitempty"`
	Website         string `gorm:"size:255" json:"website,omitempty"`
	IsPrivate       bool   `gorm:"default:false" json:"is_private"`
	ImageURL        string `gorm:"size:255" json:"image_url,omitempty"`
	Status          string `gorm:"type:enum('pending','active','inactive');default:'pending';not null" json:"status"`

	// Relationships
	Area       Area               `gorm:"foreignKey:AreaID" json:"area,omitempty"`
	Phones     []HospitalPhone    `gorm:"foreignKey:HospitalID" json:"phones,omitempty"`
	Facilities []HospitalFacility `gorm:"foreignKey:HospitalID" json:"facilities,omitempty"`
	Doctors    []Doctor           `gorm:"many2many:doctor_hospitals;joinForeignKey:HospitalID;joinReferences:DoctorID" json:"doctors,omitempty"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalPhone is a child row of Hospital.
// The full set is replaced on every hospital edit.
type HospitalPhone struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	HospitalID  uint   `gorm:"not null;index" json:"hospital_id"`
	PhoneNumber string `gorm:"size:50;not null" json:"phone_number"`
}

// TableName specifies the table name for HospitalPhone model
func (HospitalPhone) TableName() string {
	return "hospital_phones"
}

// HospitalFacility is a child row of Hospital with the facility name
// inlined. Replaced wholesale on hospital edit.
type HospitalFacility struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	HospitalID   uint   `gorm:"not null;index" json:"hospital_id"`
	FacilityName string `gorm:"size:255;not null" json:"facility_name"`
}

// TableName specifies the table name for HospitalFacility model
func (HospitalFacility) TableName() string {
	return "hospital_facilities"
}
