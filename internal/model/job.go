package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobTypeRemote = "remote"
	JobTypeHybrid = "hybrid"
	JobTypeOnsite = "onsite"
)

const (
	SeniorityJunior = "junior"
	SeniorityMid    = "mid"
	SenioritySenior = "senior"
	SeniorityLead   = "lead"
)

// Job is a posting owned by an employer. CompanyName is a denormalized
// snapshot taken at post time, so listings survive company deletion.
// SalaryPublic is derived: true iff at least one salary bound is set.
type Job struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployerID   uuid.UUID  `gorm:"type:uuid;index" json:"employer_id"`
	CompanyID    *uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	CompanyName  string     `gorm:"type:varchar(255)" json:"company_name"`
	Title        string     `gorm:"type:varchar(255)" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Requirements string     `gorm:"type:text" json:"requirements"`
	Location     string     `gorm:"type:varchar(100)" json:"location"`
	JobType      string     `gorm:"type:varchar(20)" json:"job_type"`
	Seniority    string     `gorm:"type:varchar(20)" json:"seniority"`
	SalaryMin    *int       `json:"salary_min"`
	SalaryMax    *int       `json:"salary_max"`
	SalaryPublic bool       `json:"salary_public"`
	Status       string     `gorm:"type:varchar(20);index" json:"status"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// JobWithCompany is a Job joined with its compact company preview.
type JobWithCompany struct {
	Job
	Company *CompanyPreview `json:"company,omitempty"`
}
