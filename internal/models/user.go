package models

import "time"

type Role string

const (
	RolePlayer Role = "PLAYER"
	RoleSchool Role = "SCHOOL"
	RoleAdmin  Role = "ADMIN"
)

type User struct {
	Base
	Email         string         `gorm:"uniqueIndex;not null;type:varchar(255)" json:"email"`
	Password      *string        `json:"-"`
	Name          string         `gorm:"type:varchar(255)" json:"name"`
	Role          Role           `gorm:"type:varchar(16);not null;default:PLAYER;index" json:"role"`
	Image         *string        `json:"image"`
	EmailVerified *time.Time     `json:"email_verified"`
	PlayerProfile *PlayerProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"player_profile,omitempty"`
	SchoolProfile *SchoolProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"school_profile,omitempty"`
}

// VerificationToken is a single-use email confirmation token.
type VerificationToken struct {
	Base
	Email     string    `gorm:"index;not null;type:varchar(255)" json:"email"`
	Token     string    `gorm:"uniqueIndex;not null;type:varchar(64)" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
