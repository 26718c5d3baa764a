package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is one brand of the holding group, shown as a card on the public site.
type Company struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	ImageURL    *string          `json:"imageUrl"`
	Color       string           `json:"color"`
	IsActive    bool             `json:"isActive"`
	Order       int              `json:"order"`
	Features    []CompanyFeature `json:"features"`
	Services    []CompanyService `json:"services"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// CompanyFeature is a bullet point owned by a company.
type CompanyFeature struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"companyId"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyService is an offering owned by a company.
type CompanyService struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"companyId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
