// components/site/site.go
//
// Public read-only display endpoints.
//
// Context
// -------
// Each section of the public page fetches its table in the default order
// and applies the display rules in display.go.  When the table is not
// provisioned yet the section still renders, from the static content in
// internal/seed; any other store failure is a 500.
//
// Routes
// ------
//	GET /api/services?category=
//	GET /api/portfolios?category=&all=true
//	GET /api/testimonials?category=
//	GET /api/pricing?category=
//	GET /api/partners
//	GET /api/site/config       {url, anon_key}; never the service-role key
//
//------------------------------------------------------------------------------

package site

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/component"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/seed"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// MsgLoadFailed is returned when a section cannot be read.
const MsgLoadFailed = "Gagal memuat data. Silakan coba lagi."

var _ component.Component = (*Component)(nil)

// Lister reads a whole table.
type Lister[T any] interface {
	List(ctx context.Context, o store.Order) ([]T, error)
}

// PublicConfig is what browser code may know about the backend.
type PublicConfig struct {
	URL     string `json:"url"`
	AnonKey string `json:"anon_key"`
}

// Component serves the public display API.
type Component struct {
	Services        Lister[entity.Service]
	Portfolios      Lister[entity.Portfolio]
	Testimonials    Lister[entity.Testimonial]
	PricingPackages Lister[entity.PricingPackage]
	BrandPartners   Lister[entity.BrandPartner]
	Public          PublicConfig
}

func (c *Component) Name() string { return "site" }

func (c *Component) Init(d component.Deps) error {
	c.Services = d.Store.Services
	c.Portfolios = d.Store.Portfolios
	c.Testimonials = d.Store.Testimonials
	c.PricingPackages = d.Store.PricingPackages
	c.BrandPartners = d.Store.BrandPartners
	if d.Config != nil {
		c.Public = PublicConfig{URL: d.Config.Backend.URL, AnonKey: d.Config.Backend.AnonKey}
	}
	return nil
}

func (c *Component) Routes(r chi.Router) {
	r.Get("/api/services", c.handleServices)
	r.Get("/api/portfolios", c.handlePortfolios)
	r.Get("/api/testimonials", c.handleTestimonials)
	r.Get("/api/pricing", c.handlePricing)
	r.Get("/api/partners", c.handlePartners)
	r.Get("/api/site/config", c.handleConfig)
}

func init() { component.Register(&Component{}) }

// load lists l, falling back to fallback() when the table is missing.
func load[T any](ctx context.Context, table string, l Lister[T], fallback func() []T) ([]T, error) {
	rows, err := l.List(ctx, store.Order{})
	if errors.Is(err, store.ErrUnavailable) {
		logger.FromContext(ctx).Debugw("display fallback to seed content", "table", table)
		return fallback(), nil
	}
	return rows, err
}

func fail(w http.ResponseWriter, r *http.Request, table string, err error) {
	logger.FromContext(r.Context()).Errorw("display load failed", "table", table, "err", err)
	respond.Error(w, http.StatusInternalServerError, MsgLoadFailed)
}

type itemsOf[T any] struct {
	Items []T `json:"items"`
}

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) handleServices(w http.ResponseWriter, r *http.Request) {
	rows, err := load(r.Context(), store.ServicesTable.Name, c.Services, seed.Services)
	if err != nil {
		fail(w, r, store.ServicesTable.Name, err)
		return
	}
	cat := category(r.URL.Query().Get("category"))
	respond.JSON(w, http.StatusOK, itemsOf[entity.Service]{Items: ActiveServices(rows, cat)})
}

func (c *Component) handlePortfolios(w http.ResponseWriter, r *http.Request) {
	rows, err := load(r.Context(), store.PortfoliosTable.Name, c.Portfolios, seed.Portfolios)
	if err != nil {
		fail(w, r, store.PortfoliosTable.Name, err)
		return
	}
	q := r.URL.Query()
	respond.JSON(w, http.StatusOK, Portfolios(rows, category(q.Get("category")), q.Get("all") == "true"))
}

func (c *Component) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	rows, err := load(r.Context(), store.TestimonialsTable.Name, c.Testimonials, seed.Testimonials)
	if err != nil {
		fail(w, r, store.TestimonialsTable.Name, err)
		return
	}
	respond.JSON(w, http.StatusOK, Testimonials(rows, category(r.URL.Query().Get("category"))))
}

func (c *Component) handlePricing(w http.ResponseWriter, r *http.Request) {
	rows, err := load(r.Context(), store.PricingPackagesTable.Name, c.PricingPackages, seed.PricingPackages)
	if err != nil {
		fail(w, r, store.PricingPackagesTable.Name, err)
		return
	}
	cat := category(r.URL.Query().Get("category"))
	respond.JSON(w, http.StatusOK, itemsOf[entity.PricingPackage]{Items: ActivePackages(rows, cat)})
}

func (c *Component) handlePartners(w http.ResponseWriter, r *http.Request) {
	rows, err := load(r.Context(), store.BrandPartnersTable.Name, c.BrandPartners, seed.BrandPartners)
	if err != nil {
		fail(w, r, store.BrandPartnersTable.Name, err)
		return
	}
	respond.JSON(w, http.StatusOK, GroupPartners(rows))
}

func (c *Component) handleConfig(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, c.Public)
}
