package handler

import (
	"errors"
	"io"
	"time"

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

type ApplicationHandler struct {
	uc       *usecase.ApplicationUsecase
	tokens   *service.TokenService
	profiles *repository.ProfileRepository
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase, tokens *service.TokenService, profiles *repository.ProfileRepository) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, tokens: tokens, profiles: profiles}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jobs/:id/apply", middleware.RequireAuth(h.tokens), h.Apply)
	app.Post("/jobs/:id/guest-apply", middleware.RateLimiter(5, time.Minute), h.GuestApply)

	app.Get("/candidate/applications", middleware.RequireAuth(h.tokens), h.ListOwn)

	employer := app.Group("/employer",
		middleware.RequireAuth(h.tokens),
		middleware.RequireRole(h.profiles, model.RoleEmployer))
	employer.Get("/applications", h.ListForEmployer)
	employer.Get("/guest-applications", h.ListGuestsForEmployer)
	employer.Patch("/applications/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return applicationError(c, usecase.ErrJobNotFound)
	}
	application, err := h.uc.Apply(middleware.UserID(c), jobID)
	if err != nil {
		return applicationError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Aplicarea a fost trimisă. Mult succes!",
		Data:    application,
	})
}

// GuestApply handles the anonymous multipart form. The CV part is read fully
// into memory; the usecase enforces type and size before any storage call.
func (h *ApplicationHandler) GuestApply(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return applicationError(c, usecase.ErrJobNotFound)
	}

	var req dto.GuestApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}

	upload, err := h.readCV(c, "cv")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Nu am putut citi fișierul atașat.",
		}, err)
	}

	application, err := h.uc.GuestApply(c.Context(), jobID, req, upload)
	if err != nil {
		return applicationError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Aplicarea a fost trimisă. Mult succes!",
		Data:    application,
	})
}

func (h *ApplicationHandler) ListOwn(c *fiber.Ctx) error {
	applications, err := h.uc.ListForCandidate(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Nu am putut încărca aplicările tale.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    applications,
	})
}

func (h *ApplicationHandler) ListForEmployer(c *fiber.Ctx) error {
	applications, err := h.uc.ListForEmployer(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Nu am putut încărca aplicările.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    applications,
	})
}

func (h *ApplicationHandler) ListGuestsForEmployer(c *fiber.Ctx) error {
	applications, err := h.uc.ListGuestsForEmployer(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Nu am putut încărca aplicările.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    applications,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return applicationError(c, usecase.ErrApplicationNotFound)
	}
	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	if err := h.uc.UpdateStatus(id, middleware.UserID(c), req.Status); err != nil {
		return applicationError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Statusul aplicării a fost schimbat.",
	})
}

// readCV returns nil when the part is absent; the usecase decides whether a
// missing file is an error.
func (h *ApplicationHandler) readCV(c *fiber.Ctx, field string) (*usecase.CVUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &usecase.CVUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}

func applicationError(c *fiber.Ctx, err error) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, usecase.ErrJobNotFound),
		errors.Is(err, usecase.ErrApplicationNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrNotCandidate):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrMissingCV),
		errors.Is(err, usecase.ErrTermsNotAccepted),
		errors.Is(err, usecase.ErrFileRequired),
		errors.Is(err, usecase.ErrNotPDF),
		errors.Is(err, usecase.ErrFileTooLarge):
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
