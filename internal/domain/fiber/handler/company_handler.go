package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/middleware"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/usecase"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

type CompanyHandler struct {
	uc       *usecase.CompanyUsecase
	tokens   *service.TokenService
	profiles *repository.ProfileRepository
}

func NewCompanyHandler(uc *usecase.CompanyUsecase, tokens *service.TokenService, profiles *repository.ProfileRepository) *CompanyHandler {
	return &CompanyHandler{uc: uc, tokens: tokens, profiles: profiles}
}

func (h *CompanyHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/companies/:id", h.GetPublic)

	employer := app.Group("/employer/companies",
		middleware.RequireAuth(h.tokens),
		middleware.RequireRole(h.profiles, model.RoleEmployer))
	employer.Get("/", h.ListOwn)
	employer.Post("/", h.Create)
	employer.Put("/:id", h.Update)
	employer.Delete("/:id", h.Delete)
}

// GetPublic returns a company page together with its active jobs.
func (h *CompanyHandler) GetPublic(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return companyError(c, usecase.ErrCompanyNotFound)
	}
	company, jobs, err := h.uc.GetPublic(id)
	if err != nil {
		return companyError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data: fiber.Map{
			"company": company,
			"jobs":    jobs,
		},
	})
}

func (h *CompanyHandler) ListOwn(c *fiber.Ctx) error {
	companies, err := h.uc.ListOwn(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Nu am putut încărca companiile tale.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    companies,
	})
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req dto.CompanyWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	company, err := h.uc.Create(middleware.UserID(c), req)
	if err != nil {
		return companyError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Compania a fost creată.",
		Data:    company,
	})
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return companyError(c, usecase.ErrCompanyNotFound)
	}
	var req dto.CompanyWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	if err := h.uc.Update(id, middleware.UserID(c), req); err != nil {
		return companyError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Compania a fost actualizată.",
	})
}

func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return companyError(c, usecase.ErrCompanyNotFound)
	}
	if err := h.uc.Delete(id, middleware.UserID(c)); err != nil {
		return companyError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Compania a fost ștearsă.",
	})
}

func companyError(c *fiber.Ctx, err error) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: err.Error(),
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "A apărut o eroare. Încearcă din nou.",
		}, err)
	}
}
