// internal/entity/draft.go
//
// Editable drafts, one per entity.
//
// Context
// -------
// A draft is what an admin form (or the public intake form) holds while it
// is open.  It decodes from JSON, is validated by internal/form through
// its `validate` tags, and is turned into the persisted shape by Record()
// for inserts or by Fields() for updates.
//
// Workflow
// --------
//  1. New…Draft() gives a blank form with sensible defaults, or
//     …DraftFrom(row) pre-fills one from a loaded row.
//  2. The caller mutates fields (JSON overlay, list slot add/remove).
//  3. Normalize() trims text and cleans list inputs.
//  4. Record() / Fields() produce the insert row or the update patch.
package entity

import (
	"regexp"
	"strings"
)

// ContactDraft is the raw contact-intake submission.
type ContactDraft struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ServiceType string `json:"service_type"`
	Message     string `json:"message"`
}

var phoneSeparators = regexp.MustCompile(`[\s-]`)

// StripPhone removes whitespace and hyphens.
func StripPhone(s string) string { return phoneSeparators.ReplaceAllString(s, "") }

// Normalize trims every field, lowercases the email, and strips phone
// separators.
func (d *ContactDraft) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Phone = StripPhone(d.Phone)
	d.Company = strings.TrimSpace(d.Company)
	d.ServiceType = strings.TrimSpace(d.ServiceType)
	d.Message = strings.TrimSpace(d.Message)
}

// Record builds the row to insert.  An empty company is stored as NULL.
func (d *ContactDraft) Record() Contact {
	c := Contact{
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		ServiceType: Category(d.ServiceType),
		Message:     d.Message,
	}
	if d.Company != "" {
		company := d.Company
		c.Company = &company
	}
	return c
}

// Fields is empty: contacts are never updated.
func (d *ContactDraft) Fields() map[string]any { return nil }

// ContactDraftFrom is provided for symmetry with the other entities.
func ContactDraftFrom(c Contact) *ContactDraft {
	return &ContactDraft{
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.CompanyName(),
		ServiceType: string(c.ServiceType),
		Message:     c.Message,
	}
}

/*──────────────────────────── services ─────────────────────────────*/

type ServiceDraft struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    Category  `json:"category" validate:"enum"`
	Icon        Icon      `json:"icon" validate:"enum"`
	Features    ListInput `json:"features"`
	ImageURL    string    `json:"image_url" validate:"omitempty,mediaurl"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order" validate:"min=0"`
}

func NewServiceDraft() *ServiceDraft {
	return &ServiceDraft{
		Category: CategoryAdvertising,
		Icon:     IconBillboard,
		Features: ListInput{""},
		IsActive: true,
	}
}

func ServiceDraftFrom(s Service) *ServiceDraft {
	return &ServiceDraft{
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Icon:        s.Icon,
		Features:    inputOf(s.Features),
		ImageURL:    s.ImageURL,
		IsActive:    s.IsActive,
		SortOrder:   s.SortOrder,
	}
}

func (d *ServiceDraft) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	d.Features = ListInput(d.Features.Clean())
}

func (d *ServiceDraft) Record() Service {
	return Service{
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Icon:        d.Icon,
		Features:    d.Features.Clean(),
		ImageURL:    d.ImageURL,
		IsActive:    d.IsActive,
		SortOrder:   d.SortOrder,
	}
}

func (d *ServiceDraft) Fields() map[string]any {
	return map[string]any{
		"title":       d.Title,
		"description": d.Description,
		"category":    d.Category,
		"icon":        d.Icon,
		"features":    d.Features.Clean(),
		"image_url":   d.ImageURL,
		"is_active":   d.IsActive,
		"sort_order":  d.SortOrder,
	}
}

/*─────────────────────────── portfolios ────────────────────────────*/

type PortfolioDraft struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Category     Category  `json:"category" validate:"enum"`
	ClientName   string    `json:"client_name" validate:"required"`
	ProjectDate  string    `json:"project_date" validate:"required,datetime=2006-01-02"`
	ImageURL     string    `json:"image_url" validate:"required,mediaurl"`
	ThumbnailURL string    `json:"thumbnail_url" validate:"omitempty,mediaurl"`
	Tags         ListInput `json:"tags"`
	IsFeatured   bool      `json:"is_featured"`
	SortOrder    int       `json:"sort_order" validate:"min=0"`
}

func NewPortfolioDraft() *PortfolioDraft {
	return &PortfolioDraft{
		Category: CategoryAdvertising,
		Tags:     ListInput{""},
	}
}

func PortfolioDraftFrom(p Portfolio) *PortfolioDraft {
	return &PortfolioDraft{
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		ClientName:   p.ClientName,
		ProjectDate:  p.ProjectDate,
		ImageURL:     p.ImageURL,
		ThumbnailURL: p.ThumbnailURL,
		Tags:         inputOf(p.Tags),
		IsFeatured:   p.IsFeatured,
		SortOrder:    p.SortOrder,
	}
}

func (d *PortfolioDraft) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.ClientName = strings.TrimSpace(d.ClientName)
	d.ProjectDate = strings.TrimSpace(d.ProjectDate)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	d.ThumbnailURL = strings.TrimSpace(d.ThumbnailURL)
	d.Tags = ListInput(d.Tags.Clean())
}

func (d *PortfolioDraft) Record() Portfolio {
	return Portfolio{
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.Category,
		ClientName:   d.ClientName,
		ProjectDate:  d.ProjectDate,
		ImageURL:     d.ImageURL,
		ThumbnailURL: d.ThumbnailURL,
		Tags:         d.Tags.Clean(),
		IsFeatured:   d.IsFeatured,
		SortOrder:    d.SortOrder,
	}
}

func (d *PortfolioDraft) Fields() map[string]any {
	return map[string]any{
		"title":         d.Title,
		"description":   d.Description,
		"category":      d.Category,
		"client_name":   d.ClientName,
		"project_date":  d.ProjectDate,
		"image_url":     d.ImageURL,
		"thumbnail_url": d.ThumbnailURL,
		"tags":          d.Tags.Clean(),
		"is_featured":   d.IsFeatured,
		"sort_order":    d.SortOrder,
	}
}

/*────────────────────────── testimonials ───────────────────────────*/

type TestimonialDraft struct {
	ClientName      string   `json:"client_name" validate:"required"`
	ClientPosition  string   `json:"client_position" validate:"required"`
	ClientCompany   string   `json:"client_company" validate:"required"`
	Testimonial     string   `json:"testimonial" validate:"required"`
	Rating          int      `json:"rating" validate:"min=1,max=5"`
	AvatarURL       string   `json:"avatar_url" validate:"omitempty,mediaurl"`
	ServiceCategory Audience `json:"service_category" validate:"enum"`
	IsFeatured      bool     `json:"is_featured"`
}

func NewTestimonialDraft() *TestimonialDraft {
	return &TestimonialDraft{
		Rating:          5,
		ServiceCategory: AudienceAdvertising,
	}
}

func TestimonialDraftFrom(t Testimonial) *TestimonialDraft {
	return &TestimonialDraft{
		ClientName:      t.ClientName,
		ClientPosition:  t.ClientPosition,
		ClientCompany:   t.ClientCompany,
		Testimonial:     t.Testimonial,
		Rating:          t.Rating,
		AvatarURL:       t.AvatarURL,
		ServiceCategory: t.ServiceCategory,
		IsFeatured:      t.IsFeatured,
	}
}

func (d *TestimonialDraft) Normalize() {
	d.ClientName = strings.TrimSpace(d.ClientName)
	d.ClientPosition = strings.TrimSpace(d.ClientPosition)
	d.ClientCompany = strings.TrimSpace(d.ClientCompany)
	d.Testimonial = strings.TrimSpace(d.Testimonial)
	d.AvatarURL = strings.TrimSpace(d.AvatarURL)
}

func (d *TestimonialDraft) Record() Testimonial {
	return Testimonial{
		ClientName:      d.ClientName,
		ClientPosition:  d.ClientPosition,
		ClientCompany:   d.ClientCompany,
		Testimonial:     d.Testimonial,
		Rating:          d.Rating,
		AvatarURL:       d.AvatarURL,
		ServiceCategory: d.ServiceCategory,
		IsFeatured:      d.IsFeatured,
	}
}

func (d *TestimonialDraft) Fields() map[string]any {
	return map[string]any{
		"client_name":      d.ClientName,
		"client_position":  d.ClientPosition,
		"client_company":   d.ClientCompany,
		"testimonial":      d.Testimonial,
		"rating":           d.Rating,
		"avatar_url":       d.AvatarURL,
		"service_category": d.ServiceCategory,
		"is_featured":      d.IsFeatured,
	}
}

/*──────────────────────────── pricing ──────────────────────────────*/

type PricingPackageDraft struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    Category  `json:"category" validate:"enum"`
	PriceRange  string    `json:"price_range" validate:"required"`
	Features    ListInput `json:"features"`
	IsPopular   bool      `json:"is_popular"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order" validate:"min=0"`
}

func NewPricingPackageDraft() *PricingPackageDraft {
	return &PricingPackageDraft{
		Category: CategoryAdvertising,
		Features: ListInput{""},
		IsActive: true,
	}
}

func PricingPackageDraftFrom(p PricingPackage) *PricingPackageDraft {
	return &PricingPackageDraft{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		PriceRange:  p.PriceRange,
		Features:    inputOf(p.Features),
		IsPopular:   p.IsPopular,
		IsActive:    p.IsActive,
		SortOrder:   p.SortOrder,
	}
}

func (d *PricingPackageDraft) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.PriceRange = strings.TrimSpace(d.PriceRange)
	d.Features = ListInput(d.Features.Clean())
}

func (d *PricingPackageDraft) Record() PricingPackage {
	return PricingPackage{
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		PriceRange:  d.PriceRange,
		Features:    d.Features.Clean(),
		IsPopular:   d.IsPopular,
		IsActive:    d.IsActive,
		SortOrder:   d.SortOrder,
	}
}

func (d *PricingPackageDraft) Fields() map[string]any {
	return map[string]any{
		"name":        d.Name,
		"description": d.Description,
		"category":    d.Category,
		"price_range": d.PriceRange,
		"features":    d.Features.Clean(),
		"is_popular":  d.IsPopular,
		"is_active":   d.IsActive,
		"sort_order":  d.SortOrder,
	}
}

/*─────────────────────────── partners ──────────────────────────────*/

type BrandPartnerDraft struct {
	Name        string      `json:"name" validate:"required"`
	LogoURL     string      `json:"logo_url" validate:"required,mediaurl"`
	WebsiteURL  string      `json:"website_url" validate:"omitempty,url"`
	Description string      `json:"description"`
	Category    PartnerKind `json:"category" validate:"enum"`
	IsActive    bool        `json:"is_active"`
	SortOrder   int         `json:"sort_order" validate:"min=0"`
}

func NewBrandPartnerDraft() *BrandPartnerDraft {
	return &BrandPartnerDraft{
		Category: PartnerClient,
		IsActive: true,
	}
}

func BrandPartnerDraftFrom(b BrandPartner) *BrandPartnerDraft {
	return &BrandPartnerDraft{
		Name:        b.Name,
		LogoURL:     b.LogoURL,
		WebsiteURL:  b.WebsiteURL,
		Description: b.Description,
		Category:    b.Category,
		IsActive:    b.IsActive,
		SortOrder:   b.SortOrder,
	}
}

func (d *BrandPartnerDraft) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.LogoURL = strings.TrimSpace(d.LogoURL)
	d.WebsiteURL = strings.TrimSpace(d.WebsiteURL)
	d.Description = strings.TrimSpace(d.Description)
}

func (d *BrandPartnerDraft) Record() BrandPartner {
	return BrandPartner{
		Name:        d.Name,
		LogoURL:     d.LogoURL,
		WebsiteURL:  d.WebsiteURL,
		Description: d.Description,
		Category:    d.Category,
		IsActive:    d.IsActive,
		SortOrder:   d.SortOrder,
	}
}

func (d *BrandPartnerDraft) Fields() map[string]any {
	return map[string]any{
		"name":        d.Name,
		"logo_url":    d.LogoURL,
		"website_url": d.WebsiteURL,
		"description": d.Description,
		"category":    d.Category,
		"is_active":   d.IsActive,
		"sort_order":  d.SortOrder,
	}
}
