package repository

import (
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/model"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db}
}

func (r *LeadRepository) Create(lead *model.AiLead) error {
	return r.db.Create(lead).Error
}

func (r *LeadRepository) List() ([]model.AiLead, error) {
	var leads []model.AiLead
	err := r.db.Order("created_at DESC").Find(&leads).Error
	return leads, err
}
