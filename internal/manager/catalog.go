package manager

import (
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// Per-entity manager configurations.
var (
	Contacts = Config[entity.Contact, *entity.ContactDraft]{
		Name:  store.ContactsTable.Name,
		Label: "kontak",
		Search: func(c entity.Contact) []string {
			return []string{c.Name, c.Email, c.CompanyName()}
		},
		Category:  func(c entity.Contact) string { return string(c.ServiceType) },
		Blank:     func() *entity.ContactDraft { return &entity.ContactDraft{} },
		Prefill:   entity.ContactDraftFrom,
		Immutable: true,
	}

	Services = Config[entity.Service, *entity.ServiceDraft]{
		Name:  store.ServicesTable.Name,
		Label: "layanan",
		Search: func(s entity.Service) []string {
			return []string{s.Title, s.Description}
		},
		Category: func(s entity.Service) string { return string(s.Category) },
		Blank:    entity.NewServiceDraft,
		Prefill:  entity.ServiceDraftFrom,
	}

	Portfolios = Config[entity.Portfolio, *entity.PortfolioDraft]{
		Name:  store.PortfoliosTable.Name,
		Label: "portfolio",
		Search: func(p entity.Portfolio) []string {
			return append([]string{p.Title, p.ClientName, p.Description}, p.Tags...)
		},
		Category: func(p entity.Portfolio) string { return string(p.Category) },
		Blank:    entity.NewPortfolioDraft,
		Prefill:  entity.PortfolioDraftFrom,
	}

	Testimonials = Config[entity.Testimonial, *entity.TestimonialDraft]{
		Name:  store.TestimonialsTable.Name,
		Label: "testimoni",
		Search: func(t entity.Testimonial) []string {
			return []string{t.ClientName, t.ClientCompany, t.Testimonial}
		},
		Category: func(t entity.Testimonial) string { return string(t.ServiceCategory) },
		Blank:    entity.NewTestimonialDraft,
		Prefill:  entity.TestimonialDraftFrom,
	}

	PricingPackages = Config[entity.PricingPackage, *entity.PricingPackageDraft]{
		Name:  store.PricingPackagesTable.Name,
		Label: "paket harga",
		Search: func(p entity.PricingPackage) []string {
			return []string{p.Name, p.Description, p.PriceRange}
		},
		Category: func(p entity.PricingPackage) string { return string(p.Category) },
		Blank:    entity.NewPricingPackageDraft,
		Prefill:  entity.PricingPackageDraftFrom,
	}

	BrandPartners = Config[entity.BrandPartner, *entity.BrandPartnerDraft]{
		Name:  store.BrandPartnersTable.Name,
		Label: "partner",
		Search: func(b entity.BrandPartner) []string {
			return []string{b.Name, b.Description}
		},
		Category: func(b entity.BrandPartner) string { return string(b.Category) },
		Blank:    entity.NewBrandPartnerDraft,
		Prefill:  entity.BrandPartnerDraftFrom,
	}
)
