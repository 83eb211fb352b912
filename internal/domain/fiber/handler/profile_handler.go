package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/middleware"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/usecase"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

type ProfileHandler struct {
	uc     *usecase.ProfileUsecase
	tokens *service.TokenService
}

func NewProfileHandler(uc *usecase.ProfileUsecase, tokens *service.TokenService) *ProfileHandler {
	return &ProfileHandler{uc: uc, tokens: tokens}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.RequireAuth(h.tokens))
	profile.Get("/", h.Get)
	profile.Put("/", h.Update)
	profile.Post("/cv", h.UploadCV)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Profilul nu a fost găsit.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    profile,
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	profile, err := h.uc.Update(middleware.UserID(c), req)
	if err != nil {
		return profileError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profilul a fost actualizat.",
		Data:    profile,
	})
}

func (h *ProfileHandler) UploadCV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		return profileError(c, usecase.ErrFileRequired)
	}
	f, err := fileHeader.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Nu am putut citi fișierul atașat.",
		}, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Nu am putut citi fișierul atașat.",
		}, err)
	}

	profile, err := h.uc.UploadCV(c.Context(), middleware.UserID(c), &usecase.CVUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return profileError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "CV-ul a fost încărcat.",
		Data:    profile,
	})
}

func profileError(c *fiber.Ctx, err error) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, usecase.ErrFileRequired),
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
