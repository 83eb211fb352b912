package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

type ProfileUsecase struct {
	profiles *repository.ProfileRepository
	storage  service.ObjectStorage
	cvBucket string
	logger   *zap.Logger
}

func NewProfileUsecase(
	profiles *repository.ProfileRepository,
	storage service.ObjectStorage,
	cvBucket string,
	logger *zap.Logger,
) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles, storage: storage, cvBucket: cvBucket, logger: logger}
}

func (uc *ProfileUsecase) Get(userID uuid.UUID) (*model.Profile, error) {
	return uc.profiles.FindByUserID(userID)
}

// Update mutates the caller's own profile fields. Role is untouched.
func (uc *ProfileUsecase) Update(userID uuid.UUID, req dto.ProfileUpdateRequest) (*model.Profile, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	err := uc.profiles.UpdateByUserID(userID, map[string]interface{}{
		"full_name":       req.FullName,
		"phone":           req.Phone,
		"linkedin_url":    req.LinkedinURL,
		"company_name":    req.CompanyName,
		"company_website": req.CompanyWebsite,
	})
	if err != nil {
		return nil, err
	}
	return uc.profiles.FindByUserID(userID)
}

// UploadCV stores a candidate's CV and saves a canonical bucket-prefixed
// path on the profile, so reads never need the legacy resolver for new
// uploads.
func (uc *ProfileUsecase) UploadCV(ctx context.Context, userID uuid.UUID, file *CVUpload) (*model.Profile, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, ErrFileRequired
	}
	if file.ContentType != "application/pdf" {
		return nil, ErrNotPDF
	}
	if len(file.Data) > MaxCVSize {
		return nil, ErrFileTooLarge
	}

	objectPath := fmt.Sprintf("%s/%s-%s", userID, uuid.New(), util.SanitizeFilename(file.Filename))
	if err := uc.storage.Upload(ctx, uc.cvBucket, objectPath, file.Data, file.ContentType); err != nil {
		uc.logger.Warn("profile cv upload failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	err := uc.profiles.UpdateByUserID(userID, map[string]interface{}{
		"cv_url": uc.cvBucket + "/" + objectPath,
	})
	if err != nil {
		return nil, err
	}
	return uc.profiles.FindByUserID(userID)
}
