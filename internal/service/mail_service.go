package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/teodor-vladconstantin/job-navigator/internal/config"
)

type MailServiceInterface interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

// MailService sends transactional email through the SendGrid v3 API.
type MailService struct {
	client    *resty.Client
	fromEmail string
}

func NewMailService() *MailService {
	cfg := config.LoadMailConfig()
	client := resty.New().
		SetBaseURL("https://api.sendgrid.com").
		SetAuthToken(cfg.SendGridAPIKey)
	return &MailService{client: client, fromEmail: cfg.FromEmail}
}

func (s *MailService) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	body := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": to}}},
		},
		"from":    map[string]string{"email": s.fromEmail},
		"subject": "Resetare parolă Joben",
		"content": []map[string]string{
			{
				"type": "text/plain",
				"value": fmt.Sprintf(
					"Am primit o cerere de resetare a parolei contului tău Joben.\n\n"+
						"Setează o parolă nouă accesând linkul de mai jos (valabil 30 de minute):\n%s\n\n"+
						"Dacă nu ai cerut resetarea, ignoră acest mesaj.",
					resetLink,
				),
			},
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/v3/mail/send")
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("sendgrid: %s", resp.Status())
	}
	return nil
}
