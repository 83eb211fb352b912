package usecase

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

var ErrCompanyNotFound = errors.New("compania nu există sau nu îți aparține")

type CompanyUsecase struct {
	companies *repository.CompanyRepository
	jobs      *repository.JobRepository
}

func NewCompanyUsecase(companies *repository.CompanyRepository, jobs *repository.JobRepository) *CompanyUsecase {
	return &CompanyUsecase{companies: companies, jobs: jobs}
}

func (uc *CompanyUsecase) ListOwn(ownerID uuid.UUID) ([]model.Company, error) {
	return uc.companies.ListByOwner(ownerID)
}

// GetPublic returns a company's public page data: the company plus its
// active postings.
func (uc *CompanyUsecase) GetPublic(id uuid.UUID) (*model.Company, []model.Job, error) {
	company, err := uc.companies.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCompanyNotFound
		}
		return nil, nil, err
	}
	jobs, err := uc.jobs.ListActiveByCompany(id)
	if err != nil {
		return nil, nil, err
	}
	return company, jobs, nil
}

func (uc *CompanyUsecase) Create(ownerID uuid.UUID, req dto.CompanyWriteRequest) (*model.Company, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	company := &model.Company{
		OwnerID:     ownerID,
		Name:        req.Name,
		Website:     req.Website,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	}
	if err := uc.companies.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update edits an owned company; zero rows affected surfaces as not-found.
func (uc *CompanyUsecase) Update(id, ownerID uuid.UUID, req dto.CompanyWriteRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return err
	}
	affected, err := uc.companies.UpdateOwned(id, ownerID, map[string]interface{}{
		"name":        req.Name,
		"website":     req.Website,
		"description": req.Description,
		"logo_url":    req.LogoURL,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// Delete removes an owned company; its jobs are detached, not deleted, and
// keep their company_name snapshot.
func (uc *CompanyUsecase) Delete(id, ownerID uuid.UUID) error {
	affected, err := uc.companies.DeleteOwned(id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
