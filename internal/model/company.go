package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is owned by exactly one employer. Deleting a company detaches its
// jobs (company_id set to null) but keeps their company_name snapshot.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index" json:"owner_id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	Website     string    `gorm:"type:varchar(255)" json:"website"`
	Description string    `gorm:"type:text" json:"description"`
	LogoURL     string    `gorm:"type:text" json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Company) TableName() string {
	return "companies"
}

// CompanyPreview is the compact join shape embedded in job listings.
type CompanyPreview struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	LogoURL string    `json:"logo_url"`
	Website string    `json:"website"`
}
