package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a dashboard user. Most sign in with Google; the seeded admin
// also has a bcrypt password hash for local login.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	GoogleID     *string    `json:"google_id,omitempty" gorm:"column:google_id;type:varchar(255);uniqueIndex:idx_users_google_id,where:google_id IS NOT NULL"`
	Provider     string     `json:"provider" gorm:"type:varchar(50);default:'google'"` // google, local
	PasswordHash string     `json:"-"`                                                 // Never expose in JSON
	Role         string     `json:"role" gorm:"type:varchar(50);default:'viewer';index"` // admin, viewer
	Avatar       *string    `json:"avatar,omitempty" gorm:"type:text"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate hook - auto-generate UUID v7
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// GoogleUserInfo is the userinfo payload returned by Google's OAuth API.
// Sub is the OIDC field; ID is the legacy v2 endpoint field.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Provider string    `json:"provider"`
	Role     string    `json:"role"`
	Avatar   *string   `json:"avatar,omitempty"`
}

// ToResponse converts a User to its public shape.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Provider: u.Provider,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
}
