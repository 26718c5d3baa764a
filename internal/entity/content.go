package entity

import (
	"time"

	"github.com/google/uuid"
)

// Statistic is a headline figure. Value is display text ("10,000+"), not a number.
type Statistic struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
	Icon      string    `json:"icon"`
	ImageURL  *string   `json:"imageUrl"`
	IsActive  bool      `json:"isActive"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Company   *string   `json:"company"`
	Role      *string   `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	IsActive  bool      `json:"isActive"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Service categories accepted by the catalogue.
const (
	CategoryProperty   = "property"
	CategoryTech       = "tech"
	CategoryBusiness   = "business"
	CategoryFinance    = "finance"
	CategoryConsulting = "consulting"
)

// Service is a group-wide offering listed on the public site.
type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	ImageURL    *string   `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WebsiteSection is a loosely typed content block.
type WebsiteSection struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  *string   `json:"subtitle"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"isActive"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
