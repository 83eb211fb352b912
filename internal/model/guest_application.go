package model

import (
	"time"

	"github.com/google/uuid"
)

// GuestApplication is an account-less application. CvURL holds the uploaded
// object's path inside the guest bucket, never a resolved URL. Guests have no
// stable identity, so there is no duplicate check.
type GuestApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID       uuid.UUID `gorm:"type:uuid;index" json:"job_id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	CvURL       string    `gorm:"type:text" json:"cv_url"`
	CoverLetter *string   `gorm:"type:text" json:"cover_letter"`
	CreatedAt   time.Time `json:"created_at"`
}

func (g *GuestApplication) TableName() string {
	return "guest_applications"
}

// GuestApplicationWithJob is a GuestApplication joined with its job preview.
type GuestApplicationWithJob struct {
	GuestApplication
	Job *JobPreview `json:"job,omitempty"`
}
