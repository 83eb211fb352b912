package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/teodor-vladconstantin/job-navigator/internal/config"
	"github.com/teodor-vladconstantin/job-navigator/internal/cvresolve"
	"github.com/teodor-vladconstantin/job-navigator/internal/middleware"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

// CVHandler serves the "open this CV" action. Employers resolve any stored
// reference from their applications; candidates always resolve their own
// profile CV, never an arbitrary reference. The answer is an openable URL,
// or the bytes streamed directly when only a download worked.
type CVHandler struct {
	resolver *cvresolve.Resolver
	tokens   *service.TokenService
	profiles *repository.ProfileRepository
}

func NewCVHandler(resolver *cvresolve.Resolver, tokens *service.TokenService, profiles *repository.ProfileRepository) *CVHandler {
	return &CVHandler{resolver: resolver, tokens: tokens, profiles: profiles}
}

func (h *CVHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/cv/resolve", middleware.RequireAuth(h.tokens), h.Resolve)
}

func (h *CVHandler) Resolve(c *fiber.Ctx) error {
	profile, err := h.profiles.FindByUserID(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Sesiunea a expirat. Te rugăm să te autentifici din nou.",
		}, err)
	}

	storageConfig := config.LoadStorageConfig()
	ref := c.Query("ref")
	fallbackBucket := storageConfig.CVBucket
	if profile.Role == model.RoleCandidate {
		// candidates preview their own stored CV only
		ref = profile.CvURL
	} else if c.QueryBool("guest") {
		fallbackBucket = storageConfig.GuestCVBucket
	}

	resolved, err := h.resolver.Resolve(c.Context(), ref, fallbackBucket)
	if err != nil {
		return cvResolveError(c, err)
	}

	if resolved.URL != "" {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success",
			Data: fiber.Map{
				"url":    resolved.URL,
				"bucket": resolved.Bucket,
				"path":   resolved.Path,
			},
		})
	}

	// Direct-download fallback: serve the bytes, do not retain them.
	contentType := resolved.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="cv.pdf"`)
	return c.Send(resolved.Data)
}

func cvResolveError(c *fiber.Ctx, err error) error {
	var resolveErr *cvresolve.ResolveError
	switch {
	case errors.Is(err, cvresolve.ErrEmptyReference):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Nu există un CV atașat acestei aplicări.",
		})
	case errors.As(err, &resolveErr) && resolveErr.BucketMissing:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "CV-ul aparține unei alte instalări de stocare și nu poate fi deschis de aici.",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Nu am putut deschide CV-ul. Încearcă din nou.",
		}, err)
	}
}
