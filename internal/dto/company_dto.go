package dto

type CompanyWriteRequest struct {
	Name        string `json:"name" validate:"required"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}
