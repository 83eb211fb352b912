package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/teodor-vladconstantin/job-navigator/internal/config"
	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/model"
	"github.com/teodor-vladconstantin/job-navigator/internal/repository"
	"github.com/teodor-vladconstantin/job-navigator/internal/service"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

var (
	ErrEmailTaken         = errors.New("există deja un cont cu acest email")
	ErrInvalidCredentials = errors.New("email sau parolă incorecte")
)

// Session is the single consistent "who is logged in and what can they do"
// view: identity plus derived profile.
type Session struct {
	User    *model.User    `json:"user"`
	Profile *model.Profile `json:"profile"`
}

type AuthUsecase struct {
	users    *repository.UserRepository
	profiles *repository.ProfileRepository
	tokens   *service.TokenService
	mailer   service.MailServiceInterface
	logger   *zap.Logger
}

func NewAuthUsecase(
	users *repository.UserRepository,
	profiles *repository.ProfileRepository,
	tokens *service.TokenService,
	mailer service.MailServiceInterface,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{users: users, profiles: profiles, tokens: tokens, mailer: mailer, logger: logger}
}

// Register creates identity and profile together and opens a session. The
// role tag only admits candidate|employer; admin is assigned by hand, never
// through signup.
func (uc *AuthUsecase) Register(req dto.RegisterRequest) (string, *Session, error) {
	if err := util.ValidateStruct(req); err != nil {
		return "", nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := uc.users.FindByEmail(email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{Email: email, PasswordHash: string(hash)}
	profile := &model.Profile{Role: req.Role, FullName: strings.TrimSpace(req.FullName)}
	if err := uc.users.CreateWithProfile(user, profile); err != nil {
		return "", nil, err
	}

	token, err := uc.tokens.IssueSession(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &Session{User: user, Profile: profile}, nil
}

// Login verifies credentials and opens a session. Failures surface as one
// generic message; no retry logic.
func (uc *AuthUsecase) Login(req dto.LoginRequest) (string, *Session, error) {
	if err := util.ValidateStruct(req); err != nil {
		return "", nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	profile, err := uc.profiles.FindByUserID(user.ID)
	if err != nil {
		return "", nil, err
	}

	token, err := uc.tokens.IssueSession(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &Session{User: user, Profile: profile}, nil
}

// CurrentSession re-reads identity and profile; every call returns a fresh
// profile row so role and CV state stay current after mutations.
func (uc *AuthUsecase) CurrentSession(userID uuid.UUID) (*Session, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Profile: profile}, nil
}

// ChangePassword updates the password for an authenticated session after
// re-checking the current one.
func (uc *AuthUsecase) ChangePassword(userID uuid.UUID, req dto.ChangePasswordRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return err
	}
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(userID, string(hash))
}

// ForgotPassword mails a recovery deep link. It reports success even for
// unknown emails so the endpoint cannot be used to enumerate accounts.
func (uc *AuthUsecase) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := uc.tokens.IssueRecovery(user.ID, user.Email)
	if err != nil {
		return err
	}

	link := config.LoadMailConfig().ResetURL + "?access_token=" + token
	if err := uc.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		uc.logger.Warn("password reset mail failed", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword sets a new password for the holder of a recovery token.
func (uc *AuthUsecase) ResetPassword(userID uuid.UUID, req dto.ResetPasswordRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(userID, string(hash))
}
