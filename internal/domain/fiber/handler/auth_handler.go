package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/middleware"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/usecase"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

type AuthHandler struct {
	uc     *usecase.AuthUsecase
	tokens *service.TokenService
}

func NewAuthHandler(uc *usecase.AuthUsecase, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{uc: uc, tokens: tokens}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", middleware.RequireRecovery(h.tokens), h.ResetPassword)
	auth.Get("/me", middleware.RequireAuth(h.tokens), h.Me)
	auth.Put("/password", middleware.RequireAuth(h.tokens), h.ChangePassword)
	auth.Post("/logout", middleware.RequireAuth(h.tokens), h.Logout)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	token, session, err := h.uc.Register(req)
	if err != nil {
		return authError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Cont creat cu succes.",
		Data: fiber.Map{
			"token":   token,
			"user":    session.User,
			"profile": session.Profile,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	token, session, err := h.uc.Login(req)
	if err != nil {
		return authError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Autentificare reușită.",
		Data: fiber.Map{
			"token":   token,
			"user":    session.User,
			"profile": session.Profile,
		},
	})
}

// Me returns the caller's user and a freshly loaded profile, so a role or CV
// change is visible on the next request without re-login.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session, err := h.uc.CurrentSession(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Sesiunea a expirat. Te rugăm să te autentifici din nou.",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data: fiber.Map{
			"user":    session.User,
			"profile": session.Profile,
		},
	})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	if err := h.uc.ChangePassword(middleware.UserID(c), req); err != nil {
		return authError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Parola a fost schimbată.",
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	if err := h.uc.ForgotPassword(c.Context(), req); err != nil {
		return authError(c, err)
	}
	// Same answer whether or not the email exists.
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Dacă există un cont cu acest email, vei primi un link de resetare.",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cerere invalidă.",
		}, err)
	}
	if err := h.uc.ResetPassword(middleware.UserID(c), req); err != nil {
		return authError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Parola a fost resetată. Te poți autentifica acum.",
	})
}

// Logout is a no-op server side; sessions are stateless tokens and the client
// simply drops its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Te-ai deconectat.",
	})
}

func authError(c *fiber.Ctx, err error) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, usecase.ErrEmailTaken):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "A apărut o eroare. Încearcă din nou.",
		}, err)
	}
}
