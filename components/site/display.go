package site

import (
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
)

// Display limits on the public page.
const (
	PortfolioPreview    = 6
	TestimonialGrid     = 6
	TestimonialFallback = 3
)

// category narrows to a valid category; "", "all", or an unknown value
// yields "" (no filter).
func category(v string) entity.Category {
	c := entity.Category(v)
	if !c.Valid() {
		return ""
	}
	return c
}

func keep[T any](in []T, ok func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if ok(v) {
			out = append(out, v)
		}
	}
	return out
}

func head[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}

// ActiveServices keeps active services in c, or all active ones when c is
// empty.
func ActiveServices(in []entity.Service, c entity.Category) []entity.Service {
	return keep(in, func(s entity.Service) bool {
		return s.IsActive && (c == "" || s.Category == c)
	})
}

// PortfolioPage is the portfolio grid.
type PortfolioPage struct {
	Items []entity.Portfolio `json:"items"`
	Total int                `json:"total"`
}

// Portfolios filters by c and keeps the first PortfolioPreview unless
// all is set.  Total counts the filtered set.
func Portfolios(in []entity.Portfolio, c entity.Category, all bool) PortfolioPage {
	f := keep(in, func(p entity.Portfolio) bool { return c == "" || p.Category == c })
	page := PortfolioPage{Items: f, Total: len(f)}
	if !all {
		page.Items = head(f, PortfolioPreview)
	}
	return page
}

// TestimonialPage splits testimonials into the highlighted carousel and
// the grid below it.
type TestimonialPage struct {
	Display []entity.Testimonial `json:"display"`
	Items   []entity.Testimonial `json:"items"`
}

// Testimonials filters by c, counting "both" as matching every category.
// Display holds the featured ones, or the first three when none is
// featured.
func Testimonials(in []entity.Testimonial, c entity.Category) TestimonialPage {
	f := keep(in, func(t entity.Testimonial) bool { return c == "" || t.ServiceCategory.Covers(c) })
	display := keep(f, func(t entity.Testimonial) bool { return t.IsFeatured })
	if len(display) == 0 {
		display = head(f, TestimonialFallback)
	}
	return TestimonialPage{Display: display, Items: head(f, TestimonialGrid)}
}

// ActivePackages keeps active pricing packages in c.
func ActivePackages(in []entity.PricingPackage, c entity.Category) []entity.PricingPackage {
	return keep(in, func(p entity.PricingPackage) bool {
		return p.IsActive && (c == "" || p.Category == c)
	})
}

// PartnerGroups is the logo wall.
type PartnerGroups struct {
	Clients   []entity.BrandPartner `json:"clients"`
	Partners  []entity.BrandPartner `json:"partners"`
	Suppliers []entity.BrandPartner `json:"suppliers"`
}

// GroupPartners splits active brand partners by kind, keeping order.
func GroupPartners(in []entity.BrandPartner) PartnerGroups {
	g := PartnerGroups{
		Clients:   []entity.BrandPartner{},
		Partners:  []entity.BrandPartner{},
		Suppliers: []entity.BrandPartner{},
	}
	for _, b := range in {
		if !b.IsActive {
			continue
		}
		switch b.Category {
		case entity.PartnerClient:
			g.Clients = append(g.Clients, b)
		case entity.PartnerPartner:
			g.Partners = append(g.Partners, b)
		case entity.PartnerSupplier:
			g.Suppliers = append(g.Suppliers, b)
		}
	}
	return g
}
