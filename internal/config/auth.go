package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	SessionTTL  time.Duration
	RecoveryTTL time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Println("Warning: JWT_SECRET not set")
		}
		sessionHours, _ := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
		if sessionHours == 0 {
			sessionHours = 24
		}
		recoveryMinutes, _ := strconv.Atoi(os.Getenv("RECOVERY_TTL_MINUTES"))
		if recoveryMinutes == 0 {
			recoveryMinutes = 30
		}
		authConfig = &AuthConfig{
			JWTSecret:   secret,
			SessionTTL:  time.Duration(sessionHours) * time.Hour,
			RecoveryTTL: time.Duration(recoveryMinutes) * time.Minute,
		}
	})
	return authConfig
}
