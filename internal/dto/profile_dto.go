package dto

type ProfileUpdateRequest struct {
	FullName       string `json:"full_name" validate:"required"`
	Phone          string `json:"phone" validate:"omitempty,ro_phone"`
	LinkedinURL    string `json:"linkedin_url" validate:"omitempty,url"`
	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website" validate:"omitempty,url"`
}
