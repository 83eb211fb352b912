package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

// MaxCVSize caps uploaded CV files at 5MB.
const MaxCVSize = 5 * 1024 * 1024

var (
	ErrNotCandidate        = errors.New("schimbă rolul în candidat pentru a aplica")
	ErrMissingCV           = errors.New("încarcă CV-ul din profil înainte de a aplica")
	ErrAlreadyApplied      = errors.New("există deja o aplicare pentru acest job")
	ErrTermsNotAccepted    = errors.New("acceptă termenii și politica de confidențialitate pentru a aplica")
	ErrFileRequired        = errors.New("atașează un CV în format PDF")
	ErrNotPDF              = errors.New("CV-ul trebuie să fie PDF")
	ErrFileTooLarge        = errors.New("fișierul depășește limita de 5MB")
	ErrApplicationNotFound = errors.New("aplicarea nu există sau nu îți aparține")
)

// Store interfaces keep the workflow testable without a database; the
// repository package provides the real implementations.

type ApplicationStore interface {
	ExistsForJobAndCandidate(jobID, candidateID uuid.UUID) (bool, error)
	Create(app *model.Application) error
	ListByCandidate(candidateID uuid.UUID) ([]model.ApplicationWithJob, error)
	ListByEmployer(employerID uuid.UUID) ([]model.ApplicationWithJob, error)
	UpdateStatusForEmployer(id, employerID uuid.UUID, status string) (int64, error)
}

type GuestApplicationStore interface {
	Create(app *model.GuestApplication) error
	ListByEmployer(employerID uuid.UUID) ([]model.GuestApplicationWithJob, error)
}

type ProfileStore interface {
	FindByUserID(userID uuid.UUID) (*model.Profile, error)
}

type JobStore interface {
	FindByID(id uuid.UUID) (*model.JobWithCompany, error)
}

// CVUpload is the uploaded file as received from the multipart form.
type CVUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ApplicationUsecase struct {
	applications ApplicationStore
	guests       GuestApplicationStore
	profiles     ProfileStore
	jobs         JobStore
	storage      service.ObjectStorage
	guestBucket  string
	logger       *zap.Logger
}

func NewApplicationUsecase(
	applications ApplicationStore,
	guests GuestApplicationStore,
	profiles ProfileStore,
	jobs JobStore,
	storage service.ObjectStorage,
	guestBucket string,
	logger *zap.Logger,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		applications: applications,
		guests:       guests,
		profiles:     profiles,
		jobs:         jobs,
		storage:      storage,
		guestBucket:  guestBucket,
		logger:       logger,
	}
}

// Apply runs the authenticated-candidate path. Preconditions short-circuit
// in order with no side effect: candidate role, CV on profile, not already
// applied. The duplicate check is read-then-write, not an atomic constraint:
// two truly concurrent submissions can both pass it. Sequential calls are
// covered; keeping at-most-one under concurrency is a UX nicety here, not a
// guarantee.
func (uc *ApplicationUsecase) Apply(userID, jobID uuid.UUID) (*model.Application, error) {
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile.Role != model.RoleCandidate {
		return nil, ErrNotCandidate
	}
	if profile.CvURL == "" {
		return nil, ErrMissingCV
	}

	if _, err := uc.jobs.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	exists, err := uc.applications.ExistsForJobAndCandidate(jobID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	app := &model.Application{
		JobID:       jobID,
		CandidateID: userID,
		CvURL:       profile.CvURL,
		Status:      model.ApplicationStatusSubmitted,
	}
	if err := uc.applications.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

// GuestApply runs the account-less path: validate everything client side
// would have, upload the PDF, then write the row. An upload failure aborts
// with no partial GuestApplication. Guests have no stable identity, so
// there is deliberately no duplicate check.
func (uc *ApplicationUsecase) GuestApply(ctx context.Context, jobID uuid.UUID, req dto.GuestApplyRequest, file *CVUpload) (*model.GuestApplication, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	if !req.AcceptTerms {
		return nil, ErrTermsNotAccepted
	}
	if file == nil || len(file.Data) == 0 {
		return nil, ErrFileRequired
	}
	if file.ContentType != "application/pdf" {
		return nil, ErrNotPDF
	}
	if len(file.Data) > MaxCVSize {
		return nil, ErrFileTooLarge
	}

	if _, err := uc.jobs.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	objectPath := fmt.Sprintf("%s/%s-%s", jobID, uuid.New(), util.SanitizeFilename(file.Filename))
	if err := uc.storage.Upload(ctx, uc.guestBucket, objectPath, file.Data, file.ContentType); err != nil {
		uc.logger.Warn("guest cv upload failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, err
	}

	var coverLetter *string
	if req.CoverLetter != "" {
		cl := req.CoverLetter
		coverLetter = &cl
	}

	app := &model.GuestApplication{
		JobID: jobID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		// canonical bucket-prefixed path, never a resolved URL
		CvURL:       uc.guestBucket + "/" + objectPath,
		CoverLetter: coverLetter,
	}
	if err := uc.guests.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListForCandidate backs the candidate dashboard.
func (uc *ApplicationUsecase) ListForCandidate(candidateID uuid.UUID) ([]model.ApplicationWithJob, error) {
	return uc.applications.ListByCandidate(candidateID)
}

// ListForEmployer backs the employer dashboard's applications panel.
func (uc *ApplicationUsecase) ListForEmployer(employerID uuid.UUID) ([]model.ApplicationWithJob, error) {
	return uc.applications.ListByEmployer(employerID)
}

// ListGuestsForEmployer backs the employer dashboard's guest panel.
func (uc *ApplicationUsecase) ListGuestsForEmployer(employerID uuid.UUID) ([]model.GuestApplicationWithJob, error) {
	return uc.guests.ListByEmployer(employerID)
}

// UpdateStatus lets an employer move an application through review states.
// Ownership is enforced by the filter: a foreign application affects zero
// rows, which surfaces as not-found rather than silent success.
func (uc *ApplicationUsecase) UpdateStatus(id, employerID uuid.UUID, status string) error {
	if !model.ValidApplicationStatus(status) {
		return ErrInvalidTransition
	}
	affected, err := uc.applications.UpdateStatusForEmployer(id, employerID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
