package dto

type LeadRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,ro_phone"`
	Company string `json:"company"`
	Message string `json:"message"`
	Agent   string `json:"agent"`
}
