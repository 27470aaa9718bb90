package models

import "time"

// User is the actor table referenced by created_by/updated_by. It is the one
// table that does not embed Base. Login and token issuance live in the
// gateway in front of this service; the password hash is kept only so the
// actor records are complete.
type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Role      string `gorm:"size:20;default:'staff';not null" json:"role"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleSystem = "system"
)
