package config

import (
	"os"
	"sync"
)

type MailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	ResetURL       string
}

var (
	mailConfig *MailConfig
	mailOnce   sync.Once
)

func LoadMailConfig() *MailConfig {
	mailOnce.Do(func() {
		mailConfig = &MailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			FromEmail:      os.Getenv("FROM_EMAIL"),
			ResetURL:       os.Getenv("RESET_PASSWORD_URL"),
		}
	})
	return mailConfig
}
