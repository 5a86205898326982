package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
)

// Per-entity repository types.
type (
	ContactRepository        = Repository[entity.Contact, *entity.Contact]
	ServiceRepository        = Repository[entity.Service, *entity.Service]
	PortfolioRepository      = Repository[entity.Portfolio, *entity.Portfolio]
	TestimonialRepository    = Repository[entity.Testimonial, *entity.Testimonial]
	PricingPackageRepository = Repository[entity.PricingPackage, *entity.PricingPackage]
	BrandPartnerRepository   = Repository[entity.BrandPartner, *entity.BrandPartner]
)

// Set holds one repository per content table, all sharing one pool.
type Set struct {
	Contacts        *ContactRepository
	Services        *ServiceRepository
	Portfolios      *PortfolioRepository
	Testimonials    *TestimonialRepository
	PricingPackages *PricingPackageRepository
	BrandPartners   *BrandPartnerRepository
}

// NewSet builds the six repositories on db.
func NewSet(db *sqlx.DB) *Set {
	return &Set{
		Contacts:        New[entity.Contact](db, ContactsTable),
		Services:        New[entity.Service](db, ServicesTable),
		Portfolios:      New[entity.Portfolio](db, PortfoliosTable),
		Testimonials:    New[entity.Testimonial](db, TestimonialsTable),
		PricingPackages: New[entity.PricingPackage](db, PricingPackagesTable),
		BrandPartners:   New[entity.BrandPartner](db, BrandPartnersTable),
	}
}

// TableCounter pairs a table name with its count probe.
type TableCounter struct {
	Table string
	Count func(ctx context.Context) (int, error)
}

// Counters returns the count probes in Tables order, contacts first.
func (s *Set) Counters() []TableCounter {
	return []TableCounter{
		{ContactsTable.Name, s.Contacts.Count},
		{ServicesTable.Name, s.Services.Count},
		{PortfoliosTable.Name, s.Portfolios.Count},
		{TestimonialsTable.Name, s.Testimonials.Count},
		{PricingPackagesTable.Name, s.PricingPackages.Count},
		{BrandPartnersTable.Name, s.BrandPartners.Count},
	}
}
