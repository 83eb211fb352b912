package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record: credentials only. Application-level data
// (role, contact info, CV) lives on Profile.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
