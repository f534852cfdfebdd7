package models

import "time"

// User roles. Hospital managers run listings they have claimed; admins
// moderate users, hospitals and affiliation requests.
const (
	RoleHospitalManager = "hospital_manager"
	RoleAdmin           = "admin"
)

// User account status. Status must be accept before the user may create
// or edit entities or request a hospital affiliation. Admins bypass the
// gate through their role, not their status.
const (
	UserStatusPending = "pending"
	UserStatusAccept  = "accept"
	UserStatusReject  = "reject"
)

// User represents the users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:255;not null" json:"first_name"`
	LastName     string    `gorm:"size:255;not null" json:"last_name"`
	Role         string    `gorm:"type:enum('hospital_manager','admin');not null" json:"role"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string    `gorm:"column:password;not null;size:255" json:"-"`
	Status       string    `gorm:"type:enum('pending','accept','reject');default:'pending';not null" json:"status"`
	PhoneNumber  string    `gorm:"size:50" json:"phone_number,omitempty"`
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
