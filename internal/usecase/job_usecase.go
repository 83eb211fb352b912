package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/cache"
	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/jobstatus"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

// listingTTL is the staleness window of the public listing cache.
const listingTTL = 5 * time.Minute

var (
	ErrJobNotFound       = errors.New("jobul nu există sau nu îți aparține")
	ErrCompanyRequired   = errors.New("creează și selectează o companie înainte de a posta")
	ErrInvalidCompany    = errors.New("compania selectată nu este validă")
	ErrSalaryRange       = errors.New("salariul maxim trebuie să fie mai mare sau egal cu cel minim")
	ErrInvalidTransition = errors.New("tranziție de status invalidă")
)

// JobListResult is what the listing returns (and what gets cached), one page
// plus the exact total.
type JobListResult struct {
	Jobs  []model.JobWithCompany `json:"jobs"`
	Total int64                  `json:"total"`
}

type JobUsecase struct {
	jobs      *repository.JobRepository
	companies *repository.CompanyRepository
	cache     cache.Cache
	logger    *zap.Logger
}

func NewJobUsecase(
	jobs *repository.JobRepository,
	companies *repository.CompanyRepository,
	c cache.Cache,
	logger *zap.Logger,
) *JobUsecase {
	return &JobUsecase{jobs: jobs, companies: companies, cache: c, logger: logger}
}

// ListActive serves the public listing. Results are considered fresh for
// five minutes per full parameter tuple; cache trouble is never fatal, the
// query just goes to the database.
func (uc *JobUsecase) ListActive(ctx context.Context, params repository.JobListParams) (*JobListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	key := listingCacheKey(params)

	var cached string
	if err := uc.cache.Get(ctx, key, &cached); err == nil {
		var result JobListResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	} else if !errors.Is(err, cache.ErrNotFound) {
		uc.logger.Warn("listing cache get failed", zap.Error(err))
	}

	jobs, total, err := uc.jobs.ListActive(params)
	if err != nil {
		return nil, err
	}
	result := &JobListResult{Jobs: jobs, Total: total}

	if payload, err := json.Marshal(result); err == nil {
		if err := uc.cache.Set(ctx, key, payload, listingTTL); err != nil {
			uc.logger.Warn("listing cache set failed", zap.Error(err))
		}
	}
	return result, nil
}

// listingCacheKey hashes the full parameter tuple so any change produces a
// different key.
func listingCacheKey(params repository.JobListParams) string {
	raw, _ := json.Marshal(params)
	sum := sha256.Sum256(raw)
	return "jobs:list:" + hex.EncodeToString(sum[:16])
}

// Get returns one job with its company preview, any status. Public pages
// only link active jobs, but a direct URL to a paused job still renders for
// its owner.
func (uc *JobUsecase) Get(id uuid.UUID) (*model.JobWithCompany, error) {
	job, err := uc.jobs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// ListByEmployer returns the employer dashboard's own-jobs view.
func (uc *JobUsecase) ListByEmployer(employerID uuid.UUID) ([]model.Job, error) {
	return uc.jobs.ListByEmployer(employerID)
}

// Create posts a job. The company must be one of the caller's own; with no
// company selected nothing is inserted. The company_name snapshot and the
// salary_public flag are derived here, not taken from the request.
func (uc *JobUsecase) Create(employerID uuid.UUID, req dto.JobWriteRequest) (*model.Job, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return nil, ErrSalaryRange
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, ErrCompanyRequired
	}
	company, err := uc.companies.FindOwned(companyID, employerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCompany
		}
		return nil, err
	}

	job := &model.Job{
		EmployerID:   employerID,
		CompanyID:    &company.ID,
		CompanyName:  company.Name,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Description,
		Location:     req.Location,
		JobType:      req.JobType,
		Seniority:    req.Seniority,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		SalaryPublic: req.SalaryMin != nil || req.SalaryMax != nil,
		Status:       string(jobstatus.StatusActive),
	}
	if err := uc.jobs.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update edits an owned job. Zero rows affected means the job does not exist
// or belongs to someone else; both surface as the same not-found error.
func (uc *JobUsecase) Update(jobID, employerID uuid.UUID, req dto.JobWriteRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return err
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return ErrSalaryRange
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return ErrCompanyRequired
	}
	company, err := uc.companies.FindOwned(companyID, employerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCompany
		}
		return err
	}

	affected, err := uc.jobs.UpdateOwned(jobID, employerID, map[string]interface{}{
		"title":         req.Title,
		"description":   req.Description,
		"requirements":  req.Description,
		"location":      req.Location,
		"job_type":      req.JobType,
		"seniority":     req.Seniority,
		"salary_min":    req.SalaryMin,
		"salary_max":    req.SalaryMax,
		"salary_public": req.SalaryMin != nil || req.SalaryMax != nil,
		"company_id":    company.ID,
		"company_name":  company.Name,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// ChangeStatus moves an owned job through the posting lifecycle.
func (uc *JobUsecase) ChangeStatus(jobID, employerID uuid.UUID, newStatusStr string) error {
	newStatus, err := jobstatus.Parse(newStatusStr)
	if err != nil {
		return ErrInvalidTransition
	}

	job, err := uc.jobs.FindOwned(jobID, employerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return err
	}

	current, err := jobstatus.Parse(job.Status)
	if err == nil && !jobstatus.IsTransitionAllowed(current, newStatus) {
		return ErrInvalidTransition
	}

	affected, err := uc.jobs.UpdateOwned(jobID, employerID, map[string]interface{}{
		"status": string(newStatus),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete hard-deletes an owned job; there is no archival.
func (uc *JobUsecase) Delete(jobID, employerID uuid.UUID) error {
	affected, err := uc.jobs.DeleteOwned(jobID, employerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}
