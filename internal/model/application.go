package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusViewed    = "viewed"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusInterview = "interview"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusViewed,
		ApplicationStatusRejected, ApplicationStatusInterview:
		return true
	}
	return false
}

// Application links a candidate to a job. CvURL is a snapshot of the
// candidate's profile CV reference at apply time. At most one application per
// (job_id, candidate_id) pair, enforced by a read-then-write check in the
// usecase, not a database constraint.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID       uuid.UUID `gorm:"type:uuid;index" json:"job_id"`
	CandidateID uuid.UUID `gorm:"type:uuid;index" json:"candidate_id"`
	CvURL       string    `gorm:"type:text" json:"cv_url"`
	Status      string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}

// JobPreview is the compact join shape attached to application listings.
type JobPreview struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	CompanyName string     `json:"company_name"`
	CompanyID   *uuid.UUID `json:"company_id"`
	EmployerID  uuid.UUID  `json:"employer_id"`
}

// ApplicationWithJob is an Application joined with its job preview.
type ApplicationWithJob struct {
	Application
	Job *JobPreview `json:"job,omitempty"`
}
