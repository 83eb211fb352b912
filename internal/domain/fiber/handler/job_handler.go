package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/middleware"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/response"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/usecase"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

const defaultPageSize = 10

type JobHandler struct {
	uc       *usecase.JobUsecase
	tokens   *service.TokenService
	profiles *repository.ProfileRepository
}

func NewJobHandler(uc *usecase.JobUsecase, tokens *service.TokenService, profiles *repository.ProfileRepository) *JobHandler {
	return &JobHandler{uc: uc, tokens: tokens, profiles: profiles}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/meta", h.Meta)
	app.Get("/jobs", h.List)
	app.Get("/jobs/:id", h.Get)

	employer := app.Group("/employer/jobs",
		middleware.RequireAuth(h.tokens),
		middleware.RequireRole(h.profiles, model.RoleEmployer))
	employer.Get("/", h.ListOwn)
	employer.Post("/", h.Create)
	employer.Put("/:id", h.Update)
	employer.Patch("/:id/status", h.ChangeStatus)
	employer.Delete("/:id", h.Delete)
}

// Meta exposes the fixed catalogs the filter UI is built from.
func (h *JobHandler) Meta(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data: fiber.Map{
			"locations":            model.Locations,
			"job_types":            []string{model.JobTypeRemote, model.JobTypeHybrid, model.JobTypeOnsite},
			"seniorities":          []string{model.SeniorityJunior, model.SeniorityMid, model.SenioritySenior, model.SeniorityLead},
			"application_statuses": []string{model.ApplicationStatusSubmitted, model.ApplicationStatusViewed, model.ApplicationStatusRejected, model.ApplicationStatusInterview},
		},
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	params := repository.JobListParams{
		Search:      c.Query("search"),
		Location:    c.Query("location"),
		JobTypes:    splitCSV(c.Query("job_types")),
		Seniorities: splitCSV(c.Query("seniorities")),
		Page:        c.QueryInt("page", 1),
		PageSize:    c.QueryInt("page_size", defaultPageSize),
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = defaultPageSize
	}

	result, err := h.uc.ListActive(c.Context(), params)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Nu am putut încărca joburile.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success",
		Data:       result.Jobs,
		Pagination: response.NewPagination(params.Page, params.PageSize, result.Total),
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jobError(c, usecase.ErrJobNotFound)
	}
	job, err := h.uc.Get(id)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    job,
	})
}

func (h *JobHandler) ListOwn(c *fiber.Ctx) error {
	jobs, err := h.uc.ListByEmployer(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Nu am putut încărca joburile tale.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    jobs,
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.JobWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	job, err := h.uc.Create(middleware.UserID(c), req)
	if err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Jobul a fost publicat.",
		Data:    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jobError(c, usecase.ErrJobNotFound)
	}
	var req dto.JobWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	if err := h.uc.Update(id, middleware.UserID(c), req); err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Jobul a fost actualizat.",
	})
}

func (h *JobHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jobError(c, usecase.ErrJobNotFound)
	}
	var req dto.JobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	if err := h.uc.ChangeStatus(id, middleware.UserID(c), req.Status); err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Statusul jobului a fost schimbat.",
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jobError(c, usecase.ErrJobNotFound)
	}
	if err := h.uc.Delete(id, middleware.UserID(c)); err != nil {
		return jobError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Jobul a fost șters.",
	})
}

func jobError(c *fiber.Ctx, err error) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, usecase.ErrJobNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrCompanyRequired),
		errors.Is(err, usecase.ErrInvalidCompany),
		errors.Is(err, usecase.ErrSalaryRange),
		errors.Is(err, usecase.ErrInvalidTransition):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "A apărut o eroare. Încearcă din nou.",
		}, err)
	}
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
