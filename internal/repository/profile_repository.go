package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/model"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) FindByUserID(userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateByUserID mutates the owning user's profile only. Role is never part
// of updates: it is fixed at registration.
func (r *ProfileRepository) UpdateByUserID(userID uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&model.Profile{}).Where("user_id = ?", userID).
		Updates(updates).Error
}
