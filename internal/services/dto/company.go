package dto

// CreateCompanyRequest - запрос создания компании.
// createdBy не принимается от клиента - берется из принципала.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	WebsiteURL  string `json:"websiteUrl" validate:"omitempty,url"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	WebsiteURL  *string `json:"websiteUrl,omitempty" validate:"omitempty,url"`
}
