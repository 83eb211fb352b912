package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// Profile is the application-level record for a user, one-to-one with User.
// Role is fixed at registration. CvURL stores a canonical bucket-prefixed
// object path ("cvs/<user_id>/<uuid>-<file>.pdf"); historical rows may carry
// public or signed URLs instead, which cvresolve normalizes on read.
type Profile struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Role           string    `gorm:"type:varchar(20)" json:"role"`
	FullName       string    `gorm:"type:varchar(255)" json:"full_name"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone"`
	LinkedinURL    string    `gorm:"type:varchar(255)" json:"linkedin_url"`
	CompanyName    string    `gorm:"type:varchar(255)" json:"company_name"`
	CompanyWebsite string    `gorm:"type:varchar(255)" json:"company_website"`
	CvURL          string    `gorm:"type:text" json:"cv_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Profile) TableName() string {
	return "profiles"
}
