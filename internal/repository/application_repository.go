package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/model"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// ExistsForJobAndCandidate is the duplicate check run before every insert.
// Sequential calls are safe; concurrent ones can race, see the apply
// usecase.
func (r *ApplicationRepository) ExistsForJobAndCandidate(jobID, candidateID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

// ListByCandidate returns a candidate's applications, newest first, with job
// previews.
func (r *ApplicationRepository) ListByCandidate(candidateID uuid.UUID) ([]model.ApplicationWithJob, error) {
	var apps []model.Application
	err := r.db.Where("candidate_id = ?", candidateID).
		Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return r.attachJobs(apps)
}

// ListByEmployer returns every application to one employer's jobs, newest
// first, scoped through the job's employer_id.
func (r *ApplicationRepository) ListByEmployer(employerID uuid.UUID) ([]model.ApplicationWithJob, error) {
	var apps []model.Application
	err := r.db.
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return r.attachJobs(apps)
}

// UpdateStatusForEmployer updates an application's status only when the
// application targets one of the employer's own jobs. Returns rows affected.
func (r *ApplicationRepository) UpdateStatusForEmployer(id, employerID uuid.UUID, status string) (int64, error) {
	res := r.db.Model(&model.Application{}).
		Where("id = ? AND job_id IN (?)",
			id,
			r.db.Model(&model.Job{}).Select("id").Where("employer_id = ?", employerID),
		).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *ApplicationRepository) attachJobs(apps []model.Application) ([]model.ApplicationWithJob, error) {
	previews, err := jobPreviews(r.db, func() []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(apps))
		for _, a := range apps {
			ids = append(ids, a.JobID)
		}
		return ids
	}())
	if err != nil {
		return nil, err
	}

	result := make([]model.ApplicationWithJob, 0, len(apps))
	for _, a := range apps {
		item := model.ApplicationWithJob{Application: a}
		if preview, ok := previews[a.JobID]; ok {
			item.Job = &preview
		}
		result = append(result, item)
	}
	return result, nil
}

// jobPreviews loads the compact job shape attached to application listings.
func jobPreviews(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]model.JobPreview, error) {
	previews := make(map[uuid.UUID]model.JobPreview, len(ids))
	if len(ids) == 0 {
		return previews, nil
	}
	var jobs []model.Job
	if err := db.Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, err
	}
	for _, j := range jobs {
		previews[j.ID] = model.JobPreview{
			ID:          j.ID,
			Title:       j.Title,
			CompanyName: j.CompanyName,
			CompanyID:   j.CompanyID,
			EmployerID:  j.EmployerID,
		}
	}
	return previews, nil
}
