package model

import (
	"time"

	"github.com/google/uuid"
)

// AiLead is a marketing contact captured by the AI agents page.
type AiLead struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	Message   string    `gorm:"type:text" json:"message"`
	Agent     string    `gorm:"type:varchar(100)" json:"agent"`
	Status    string    `gorm:"type:varchar(20)" json:"status"` // e.g. "new", "contacted"
	CreatedAt time.Time `json:"created_at"`
}

func (l *AiLead) TableName() string {
	return "ai_leads"
}
