package models

type Company struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
	ContactEmail string `json:"contact_email"`
}

// CompanyInput carries the editable fields of a company. The slug is derived
// from the name, never supplied by the caller.
type CompanyInput struct {
	Name         string `json:"name" binding:"required" validate:"required"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
	ContactEmail string `json:"contact_email" binding:"required,email" validate:"required,email"`
}
