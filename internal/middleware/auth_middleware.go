package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// RequireAuth validates the Bearer token and stores the caller's identity in
// locals. Recovery tokens are rejected here so a password-reset link cannot be
// used as a session; the reset endpoint accepts them separately.
func RequireAuth(tokens *service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := bearerClaims(c, tokens)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Sesiunea a expirat. Te rugăm să te autentifici din nou.",
			}, err)
		}
		if claims.Purpose != service.PurposeSession {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Acest link este valabil doar pentru resetarea parolei.",
				Details: fiber.Map{"redirect": "/auth/reset-password"},
			})
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Sesiunea a expirat. Te rugăm să te autentifici din nou.",
			}, err)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// RequireRecovery accepts only recovery-purpose tokens. Used by the
// reset-password endpoint.
func RequireRecovery(tokens *service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := bearerClaims(c, tokens)
		if err != nil || claims.Purpose != service.PurposeRecovery {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Linkul de resetare este invalid sau a expirat.",
			}, err)
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Linkul de resetare este invalid sau a expirat.",
			}, err)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// RequireRole loads the caller's profile and rejects anyone without the given
// role. Must run after RequireAuth.
func RequireRole(profiles *repository.ProfileRepository, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(LocalUserID).(uuid.UUID)
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Sesiunea a expirat. Te rugăm să te autentifici din nou.",
			})
		}
		profile, err := profiles.FindByUserID(userID)
		if err != nil || profile.Role != role {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "Nu ai permisiunea necesară pentru această acțiune.",
			})
		}
		return c.Next()
	}
}

func bearerClaims(c *fiber.Ctx, tokens *service.TokenService) (*service.SessionClaims, error) {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, service.ErrInvalidToken
	}
	return tokens.Verify(token)
}

// UserID returns the authenticated caller's id from locals.
func UserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(LocalUserID).(uuid.UUID)
	return id
}
