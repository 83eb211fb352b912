package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testTokenService() *TokenService {
	return &TokenService{
		secret:      []byte("test-secret"),
		sessionTTL:  time.Hour,
		recoveryTTL: 30 * time.Minute,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := testTokenService()
	userID := uuid.New()

	token, err := s.IssueSession(userID, "ana@example.com")
	if err != nil {
		t.Fatalf("IssueSession() error = %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("subject = %q, want %q", claims.Subject, userID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("email = %q, want ana@example.com", claims.Email)
	}
	if claims.Purpose != PurposeSession {
		t.Errorf("purpose = %q, want %q", claims.Purpose, PurposeSession)
	}
}

func TestRecoveryTokenCarriesPurpose(t *testing.T) {
	s := testTokenService()

	token, err := s.IssueRecovery(uuid.New(), "ana@example.com")
	if err != nil {
		t.Fatalf("IssueRecovery() error = %v", err)
	}
	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Purpose != PurposeRecovery {
		t.Errorf("purpose = %q, want %q", claims.Purpose, PurposeRecovery)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	s := testTokenService()
	s.sessionTTL = -time.Minute

	token, err := s.IssueSession(uuid.New(), "ana@example.com")
	if err != nil {
		t.Fatalf("IssueSession() error = %v", err)
	}
	if _, err := s.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	other := &TokenService{secret: []byte("other-secret"), sessionTTL: time.Hour}
	token, err := other.IssueSession(uuid.New(), "ana@example.com")
	if err != nil {
		t.Fatalf("IssueSession() error = %v", err)
	}

	if _, err := testTokenService().Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := testTokenService().Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want %v", err, ErrInvalidToken)
	}
}
