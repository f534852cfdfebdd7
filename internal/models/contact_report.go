package models

import "time"

// ContactReport represents the contact_reports table.
// Written once from the public contact form, read-only for admins.
type ContactReport struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	ContactInfo string    `gorm:"size:255;not null" json:"contact_info"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for ContactReport model
func (ContactReport) TableName() string {
	return "contact_reports"
}
