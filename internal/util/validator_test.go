package util

import (
	"errors"
	"testing"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,ro_phone"`
}

func TestValidateStructUsesWireNames(t *testing.T) {
	err := ValidateStruct(signupForm{Email: "not-an-email", Phone: "123"})

	var formErr *FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("ValidateStruct() error = %v, want *FormError", err)
	}
	for _, key := range []string{"email", "full_name", "phone"} {
		if _, ok := formErr.Errors[key]; !ok {
			t.Errorf("form errors = %v, want entry for %q", formErr.Errors, key)
		}
	}
	if _, ok := formErr.Errors["fullname"]; ok {
		t.Error("form errors keyed by Go field name, want json tag name")
	}
}

func TestValidateStructRomanianPhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"0712345678", true},
		{"0212345678", true},
		{"", true}, // omitempty
		{"712345678", false},
		{"07123456789", false},
		{"+40712345678", false},
	}
	for _, tt := range tests {
		err := ValidateStruct(signupForm{Email: "ana@example.com", FullName: "Ana Pop", Phone: tt.phone})
		if ok := err == nil; ok != tt.ok {
			t.Errorf("phone %q: valid = %v, want %v (err %v)", tt.phone, ok, tt.ok, err)
		}
	}
}

func TestValidateStructValid(t *testing.T) {
	if err := ValidateStruct(signupForm{Email: "ana@example.com", FullName: "Ana Pop"}); err != nil {
		t.Fatalf("ValidateStruct() error = %v, want nil", err)
	}
}
