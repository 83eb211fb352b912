package usecase

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teodor-vladconstantin/job-navigator/internal/dto"
	"github.com/teodor-vladconstantin/job-navigator/internal/util"
)

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "parola-sigura",
		Role:     "candidate",
		FullName: "Ana Pop",
	}
}

// The auth usecases validate before touching any repository; nil dependencies
// prove the rejection happens with no side effect.
func TestRegisterRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *dto.RegisterRequest)
		wantForm string
	}{
		{
			name:     "admin role not available at signup",
			mutate:   func(r *dto.RegisterRequest) { r.Role = "admin" },
			wantForm: "role",
		},
		{
			name:     "unknown role",
			mutate:   func(r *dto.RegisterRequest) { r.Role = "recruiter" },
			wantForm: "role",
		},
		{
			name:     "password too short",
			mutate:   func(r *dto.RegisterRequest) { r.Password = "x" },
			wantForm: "password",
		},
		{
			name:     "invalid email",
			mutate:   func(r *dto.RegisterRequest) { r.Email = "not-an-email" },
			wantForm: "email",
		},
		{
			name:     "missing full name",
			mutate:   func(r *dto.RegisterRequest) { r.FullName = "" },
			wantForm: "full_name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewAuthUsecase(nil, nil, nil, nil, zap.NewNop())
			req := validRegisterRequest()
			tt.mutate(&req)

			token, session, err := uc.Register(req)

			var formErr *util.FormError
			if !errors.As(err, &formErr) {
				t.Fatalf("Register() error = %v, want *util.FormError", err)
			}
			if _, ok := formErr.Errors[tt.wantForm]; !ok {
				t.Errorf("form errors = %v, want entry for %q", formErr.Errors, tt.wantForm)
			}
			if token != "" || session != nil {
				t.Errorf("Register() = (%q, %v), want no session on rejection", token, session)
			}
		})
	}
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	uc := NewAuthUsecase(nil, nil, nil, nil, zap.NewNop())

	_, _, err := uc.Login(dto.LoginRequest{Email: "not-an-email", Password: "parola-sigura"})

	var formErr *util.FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("Login() error = %v, want *util.FormError", err)
	}
}

func TestChangePasswordRejectsShortNewPassword(t *testing.T) {
	uc := NewAuthUsecase(nil, nil, nil, nil, zap.NewNop())

	err := uc.ChangePassword(uuid.New(), dto.ChangePasswordRequest{
		CurrentPassword: "parola-veche",
		NewPassword:     "scurt",
	})

	var formErr *util.FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("ChangePassword() error = %v, want *util.FormError", err)
	}
	if _, ok := formErr.Errors["new_password"]; !ok {
		t.Errorf("form errors = %v, want entry for new_password", formErr.Errors)
	}
}

func TestResetPasswordRejectsShortPassword(t *testing.T) {
	uc := NewAuthUsecase(nil, nil, nil, nil, zap.NewNop())

	err := uc.ResetPassword(uuid.New(), dto.ResetPasswordRequest{Password: "scurt"})

	var formErr *util.FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("ResetPassword() error = %v, want *util.FormError", err)
	}
}
