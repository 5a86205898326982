// internal/entity/entity.go
//
// Persisted shapes of the six content tables.
//
// Context
// -------
// Struct tags drive both sqlx column mapping (`db`) and the REST payloads
// (`json`).  Five tables share the Base columns; contacts are append-only
// and carry no updated_at.
//
// Workflow
// --------
//   - The store calls Init(id, now) on insert; nothing else sets ids or
//     timestamps.
//   - Key() exposes the id to generic code in internal/store and
//     internal/manager.
package entity

import "time"

// Base holds identity and timestamps for mutable tables.
type Base struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Key returns the row id.
func (b Base) Key() string { return b.ID }

// Init stamps a freshly created row.
func (b *Base) Init(id string, now time.Time) {
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Contact is one enquiry submitted through the public intake form.
type Contact struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	Company     *string   `db:"company" json:"company"`
	ServiceType Category  `db:"service_type" json:"service_type"`
	Message     string    `db:"message" json:"message"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (c Contact) Key() string { return c.ID }

func (c *Contact) Init(id string, now time.Time) {
	c.ID = id
	c.CreatedAt = now
}

// CompanyName returns the company or "" when none was given.
func (c Contact) CompanyName() string {
	if c.Company == nil {
		return ""
	}
	return *c.Company
}

// Service is one offering shown in the services section.
type Service struct {
	Base
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Category    Category   `db:"category" json:"category"`
	Icon        Icon       `db:"icon" json:"icon"`
	Features    StringList `db:"features" json:"features"`
	ImageURL    string     `db:"image_url" json:"image_url"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	SortOrder   int        `db:"sort_order" json:"sort_order"`
}

// Portfolio is one completed project.  ProjectDate is a calendar date
// kept as "YYYY-MM-DD" text.
type Portfolio struct {
	Base
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	Category     Category   `db:"category" json:"category"`
	ClientName   string     `db:"client_name" json:"client_name"`
	ProjectDate  string     `db:"project_date" json:"project_date"`
	ImageURL     string     `db:"image_url" json:"image_url"`
	ThumbnailURL string     `db:"thumbnail_url" json:"thumbnail_url"`
	Tags         StringList `db:"tags" json:"tags"`
	IsFeatured   bool       `db:"is_featured" json:"is_featured"`
	SortOrder    int        `db:"sort_order" json:"sort_order"`
}

// Testimonial is one client quote.
type Testimonial struct {
	Base
	ClientName      string   `db:"client_name" json:"client_name"`
	ClientPosition  string   `db:"client_position" json:"client_position"`
	ClientCompany   string   `db:"client_company" json:"client_company"`
	Testimonial     string   `db:"testimonial" json:"testimonial"`
	Rating          int      `db:"rating" json:"rating"`
	AvatarURL       string   `db:"avatar_url" json:"avatar_url"`
	ServiceCategory Audience `db:"service_category" json:"service_category"`
	IsFeatured      bool     `db:"is_featured" json:"is_featured"`
}

// PricingPackage is one priced bundle.  PriceRange is free text such as
// "Rp 2.500.000 - 5.000.000".
type PricingPackage struct {
	Base
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Category    Category   `db:"category" json:"category"`
	PriceRange  string     `db:"price_range" json:"price_range"`
	Features    StringList `db:"features" json:"features"`
	IsPopular   bool       `db:"is_popular" json:"is_popular"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	SortOrder   int        `db:"sort_order" json:"sort_order"`
}

// BrandPartner is one client, partner, or supplier logo.
type BrandPartner struct {
	Base
	Name        string      `db:"name" json:"name"`
	LogoURL     string      `db:"logo_url" json:"logo_url"`
	WebsiteURL  string      `db:"website_url" json:"website_url"`
	Description string      `db:"description" json:"description"`
	Category    PartnerKind `db:"category" json:"category"`
	IsActive    bool        `db:"is_active" json:"is_active"`
	SortOrder   int         `db:"sort_order" json:"sort_order"`
}
