package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/middleware"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/usecase"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

type LeadHandler struct {
	uc       *usecase.LeadUsecase
	tokens   *service.TokenService
	profiles *repository.ProfileRepository
}

func NewLeadHandler(uc *usecase.LeadUsecase, tokens *service.TokenService, profiles *repository.ProfileRepository) *LeadHandler {
	return &LeadHandler{uc: uc, tokens: tokens, profiles: profiles}
}

func (h *LeadHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/leads", middleware.RateLimiter(3, time.Minute), h.Create)
	app.Get("/admin/leads",
		middleware.RequireAuth(h.tokens),
		middleware.RequireRole(h.profiles, model.RoleAdmin),
		h.List)
}

func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	lead, err := h.uc.Create(req)
	if err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: formErr.Message,
				Details: formErr.Errors,
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "A apărut o eroare. Încearcă din nou.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Mulțumim! Te vom contacta în curând.",
		Data:    lead,
	})
}

func (h *LeadHandler) List(c *fiber.Ctx) error {
	leads, err := h.uc.List()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Nu am putut încărca lead-urile.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    leads,
	})
}
