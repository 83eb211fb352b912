package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// JobListParams is the full parameter tuple of the public listing; it also
// keys the listing cache.
type JobListParams struct {
	Search      string   `json:"search"`
	Location    string   `json:"location"`
	JobTypes    []string `json:"job_types"`
	Seniorities []string `json:"seniorities"`
	Page        int      `json:"page"`
	PageSize    int      `json:"page_size"`
}

// ListActive returns one page of active jobs, newest first, with the exact
// total count. Empty search means no text filter; location "all" or "" means
// no location filter; empty type/seniority sets mean no filter on that
// dimension.
func (r *JobRepository) ListActive(params JobListParams) ([]model.JobWithCompany, int64, error) {
	q := r.db.Model(&model.Job{}).Where("status = ?", "active")

	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ? OR company_name ILIKE ?", like, like, like)
	}
	if params.Location != "" && params.Location != "all" {
		q = q.Where("location = ?", params.Location)
	}
	if len(params.JobTypes) > 0 {
		q = q.Where("job_type IN ?", params.JobTypes)
	}
	if len(params.Seniorities) > 0 {
		q = q.Where("seniority IN ?", params.Seniorities)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	offset := (params.Page - 1) * params.PageSize
	err := q.Order("created_at DESC").Offset(offset).Limit(params.PageSize).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	withCompany, err := r.attachCompanies(jobs)
	if err != nil {
		return nil, 0, err
	}
	return withCompany, total, nil
}

// FindByID returns a job (any status) with its company preview attached.
func (r *JobRepository) FindByID(id uuid.UUID) (*model.JobWithCompany, error) {
	var job model.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	withCompany, err := r.attachCompanies([]model.Job{job})
	if err != nil {
		return nil, err
	}
	return &withCompany[0], nil
}

// ListByEmployer returns all of one employer's jobs, newest first.
func (r *JobRepository) ListByEmployer(employerID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

// FindOwned returns the job only if it belongs to employerID.
func (r *JobRepository) FindOwned(id, employerID uuid.UUID) (*model.Job, error) {
	var job model.Job
	err := r.db.First(&job, "id = ? AND employer_id = ?", id, employerID).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateOwned applies updates scoped by employer ownership and returns the
// number of rows affected, so callers can tell a no-op apart from success.
func (r *JobRepository) UpdateOwned(id, employerID uuid.UUID, updates map[string]interface{}) (int64, error) {
	res := r.db.Model(&model.Job{}).
		Where("id = ? AND employer_id = ?", id, employerID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteOwned hard-deletes a job scoped by employer ownership.
func (r *JobRepository) DeleteOwned(id, employerID uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Job{}, "id = ? AND employer_id = ?", id, employerID)
	return res.RowsAffected, res.Error
}

// ListActiveByCompany returns the active postings shown on a public company
// page.
func (r *JobRepository) ListActiveByCompany(companyID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("company_id = ? AND status = ?", companyID, "active").
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// attachCompanies joins the compact company preview onto each job in one
// extra query.
func (r *JobRepository) attachCompanies(jobs []model.Job) ([]model.JobWithCompany, error) {
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		if j.CompanyID != nil {
			ids = append(ids, *j.CompanyID)
		}
	}

	previews := make(map[uuid.UUID]model.CompanyPreview, len(ids))
	if len(ids) > 0 {
		var companies []model.Company
		if err := r.db.Where("id IN ?", ids).Find(&companies).Error; err != nil {
			return nil, err
		}
		for _, c := range companies {
			previews[c.ID] = model.CompanyPreview{
				ID:      c.ID,
				Name:    c.Name,
				LogoURL: c.LogoURL,
				Website: c.Website,
			}
		}
	}

	result := make([]model.JobWithCompany, 0, len(jobs))
	for _, j := range jobs {
		jc := model.JobWithCompany{Job: j}
		if j.CompanyID != nil {
			if preview, ok := previews[*j.CompanyID]; ok {
				jc.Company = &preview
			}
		}
		result = append(result, jc)
	}
	return result, nil
}
