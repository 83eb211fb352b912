package dto

// JobWriteRequest covers both posting and editing a job. Title and
// description minimums mirror the database constraints; salary bounds are
// optional and cross-checked (max ≥ min) in the usecase.
type JobWriteRequest struct {
	Title       string `json:"title" validate:"required,min=10"`
	Description string `json:"description" validate:"required,min=50"`
	Location    string `json:"location" validate:"required"`
	JobType     string `json:"job_type" validate:"required,oneof=remote hybrid onsite"`
	Seniority   string `json:"seniority" validate:"required,oneof=junior mid senior lead"`
	SalaryMin   *int   `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax   *int   `json:"salary_max" validate:"omitempty,min=0"`
	// empty means no company selected; the usecase turns that into its
	// create-a-company-first guidance instead of a bare field error
	CompanyID string `json:"company_id" validate:"omitempty,uuid"`
}

type JobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused closed"`
}
