package dto

// CompanyFeatureInput is one feature line in a company payload.
// Order falls back to the array index when omitted.
type CompanyFeatureInput struct {
	Title string `json:"title" validate:"required,max=200"`
	Order *int   `json:"order,omitempty"`
}

// CompanyServiceInput is one service line in a company payload.
type CompanyServiceInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Order       *int    `json:"order,omitempty"`
}

// CompanyRequest is the create/update payload for companies.
type CompanyRequest struct {
	Name        string                `json:"name" validate:"required,max=200"`
	Slug        string                `json:"slug" validate:"omitempty,max=200"`
	Description string                `json:"description" validate:"required"`
	Icon        string                `json:"icon" validate:"max=100"`
	ImageURL    *string               `json:"imageUrl" validate:"omitempty,url"`
	Color       string                `json:"color" validate:"max=100"`
	Order       *int                  `json:"order"`
	IsActive    *bool                 `json:"isActive"`
	Features    []CompanyFeatureInput `json:"features" validate:"omitempty,dive"`
	Services    []CompanyServiceInput `json:"services" validate:"omitempty,dive"`
}

// StatisticRequest is the create/update payload for statistics.
type StatisticRequest struct {
	Label    string  `json:"label" validate:"required,max=200"`
	Value    string  `json:"value" validate:"required,max=100"`
	Icon     string  `json:"icon" validate:"max=100"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// TestimonialRequest is the create/update payload for testimonials.
type TestimonialRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Company  *string `json:"company" validate:"omitempty,max=200"`
	Role     *string `json:"role" validate:"omitempty,max=200"`
	Content  string  `json:"content" validate:"required"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// ServiceRequest is the create/update payload for catalogue services.
type ServiceRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=property tech business finance consulting"`
	Icon        string  `json:"icon" validate:"max=100"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// SectionRequest is the create/update payload for website sections.
type SectionRequest struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Subtitle *string `json:"subtitle" validate:"omitempty,max=300"`
	Content  string  `json:"content"`
	Type     string  `json:"type" validate:"required,max=50"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}
