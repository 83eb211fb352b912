package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/model"
)

type GuestApplicationRepository struct {
	db *gorm.DB
}

func NewGuestApplicationRepository(db *gorm.DB) *GuestApplicationRepository {
	return &GuestApplicationRepository{db}
}

func (r *GuestApplicationRepository) Create(app *model.GuestApplication) error {
	return r.db.Create(app).Error
}

// ListByEmployer returns guest applications to one employer's jobs, newest
// first.
func (r *GuestApplicationRepository) ListByEmployer(employerID uuid.UUID) ([]model.GuestApplicationWithJob, error) {
	var apps []model.GuestApplication
	err := r.db.
		Joins("JOIN jobs ON jobs.id = guest_applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("guest_applications.created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.JobID)
	}
	previews, err := jobPreviews(r.db, ids)
	if err != nil {
		return nil, err
	}

	result := make([]model.GuestApplicationWithJob, 0, len(apps))
	for _, a := range apps {
		item := model.GuestApplicationWithJob{GuestApplication: a}
		if preview, ok := previews[a.JobID]; ok {
			item.Job = &preview
		}
		result = append(result, item)
	}
	return result, nil
}
