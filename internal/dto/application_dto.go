package dto

// GuestApplyRequest carries the guest modal's form fields. The file itself
// arrives as a multipart part and is validated separately. Phone must be 10
// digits starting with 0.
type GuestApplyRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Phone       string `json:"phone" form:"phone" validate:"required,ro_phone"`
	CoverLetter string `json:"cover_letter" form:"cover_letter" validate:"omitempty,max=300"`
	AcceptTerms bool   `json:"accept_terms" form:"accept_terms"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted viewed rejected interview"`
}
