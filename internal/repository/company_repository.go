package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/model"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db}
}

func (r *CompanyRepository) ListByOwner(ownerID uuid.UUID) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) FindByID(id uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// FindOwned returns the company only if it belongs to ownerID.
func (r *CompanyRepository) FindOwned(id, ownerID uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) Create(company *model.Company) error {
	return r.db.Create(company).Error
}

// UpdateOwned applies updates scoped by ownership, returning rows affected.
func (r *CompanyRepository) UpdateOwned(id, ownerID uuid.UUID, updates map[string]interface{}) (int64, error) {
	res := r.db.Model(&model.Company{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteOwned removes a company and detaches its jobs in one transaction:
// the jobs keep their company_name snapshot but lose the dangling link.
func (r *CompanyRepository) DeleteOwned(id, ownerID uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Job{}).
			Where("company_id = ? AND employer_id = ?", id, ownerID).
			Update("company_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Company{}, "id = ? AND owner_id = ?", id, ownerID)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
