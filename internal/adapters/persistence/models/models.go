package models

import (
	"time"

	"campushub/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      domain.Role    `gorm:"size:20;default:'student'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Profile represents profiles table (student/staff details)
type Profile struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName           string    `gorm:"size:120;not null" json:"full_name"`
	RegistrationNumber *string   `gorm:"size:30;uniqueIndex" json:"registration_number"`
	Branch             *string   `gorm:"size:80" json:"branch"`
	Year               *int      `json:"year"`
	AvatarURL          *string   `gorm:"size:255" json:"avatar_url"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// UserResponse DTO
type UserResponse struct {
	ID                 uint        `json:"id"`
	Username           string      `json:"username"`
	Email              string      `json:"email"`
	Role               domain.Role `json:"role"`
	IsActive           bool        `json:"is_active"`
	FullName           string      `json:"full_name,omitempty"`
	RegistrationNumber string      `json:"registration_number,omitempty"`
	Branch             string      `json:"branch,omitempty"`
	Year               int         `json:"year,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.Profile != nil {
		resp.FullName = u.Profile.FullName
		if u.Profile.RegistrationNumber != nil {
			resp.RegistrationNumber = *u.Profile.RegistrationNumber
		}
		if u.Profile.Branch != nil {
			resp.Branch = *u.Profile.Branch
		}
		if u.Profile.Year != nil {
			resp.Year = *u.Profile.Year
		}
	}
	return resp
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Auth
		&User{},
		&Profile{},
		&RefreshToken{},
		// Directory
		&Organization{},
		&Club{},
		&ClubMembership{},
		// Events
		&Event{},
		&EventRegistration{},
		&EventBookmark{},
		// Attendance core
		&EventAttendance{},
		&OdRequest{},
	)
}
