package usecase

import (
	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

type LeadUsecase struct {
	leads *repository.LeadRepository
}

func NewLeadUsecase(leads *repository.LeadRepository) *LeadUsecase {
	return &LeadUsecase{leads: leads}
}

func (uc *LeadUsecase) Create(req dto.LeadRequest) (*model.AiLead, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	lead := &model.AiLead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Agent:   req.Agent,
		Status:  "new",
	}
	if err := uc.leads.Create(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (uc *LeadUsecase) List() ([]model.AiLead, error) {
	return uc.leads.List()
}
