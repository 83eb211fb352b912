package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/teodor-vladconstantin/job-navigator/internal/config"
)

// Token purposes. A recovery token is only good for setting a new password;
// the auth middleware blocks it everywhere else.
const (
	PurposeSession  = "session"
	PurposeRecovery = "recovery"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type SessionClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed tokens that stand in for the
// managed auth service's sessions.
type TokenService struct {
	secret      []byte
	sessionTTL  time.Duration
	recoveryTTL time.Duration
}

func NewTokenService() *TokenService {
	cfg := config.LoadAuthConfig()
	return &TokenService{
		secret:      []byte(cfg.JWTSecret),
		sessionTTL:  cfg.SessionTTL,
		recoveryTTL: cfg.RecoveryTTL,
	}
}

func (s *TokenService) IssueSession(userID uuid.UUID, email string) (string, error) {
	return s.issue(userID, email, PurposeSession, s.sessionTTL)
}

func (s *TokenService) IssueRecovery(userID uuid.UUID, email string) (string, error) {
	return s.issue(userID, email, PurposeRecovery, s.recoveryTTL)
}

func (s *TokenService) issue(userID uuid.UUID, email, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns its claims, or ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
