// components/admin/admin.go
//
// Admin JSON API.
//
// Context
// -------
// Everything under /api/admin requires the admin principal; mutations also
// need the X-CSRF-Token header.  The six entity resources and the
// dashboard routes sit behind the readiness gate: while the contacts table
// is missing every one of them answers 503 with the setup steps, without
// touching the store.  /status is outside the gate since it is how the
// operator finds out what is missing.
//
// Routes
// ------
//	GET /api/admin/status          per-table existence and row counts
//	GET /api/admin/stats           six totals
//	GET /api/admin/export.json     export-all bundle
//	    /api/admin/<table>/...     see resource.go
//
//------------------------------------------------------------------------------

package admin

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/acl"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/component"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/export"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/manager"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
)

var _ component.Component = (*Component)(nil)

// Dashboard is the readiness gate plus the aggregate reports.
// *manager.Dashboard implements it.
type Dashboard interface {
	manager.Gate
	Probe(ctx context.Context) (bool, error)
	Stats(ctx context.Context) (manager.Stats, error)
	Status(ctx context.Context) (manager.Status, error)
}

// Repos are the six repositories the admin drives.
type Repos struct {
	Contacts        manager.Repo[entity.Contact]
	Services        manager.Repo[entity.Service]
	Portfolios      manager.Repo[entity.Portfolio]
	Testimonials    manager.Repo[entity.Testimonial]
	PricingPackages manager.Repo[entity.PricingPackage]
	BrandPartners   manager.Repo[entity.BrandPartner]
}

func (r Repos) sources() export.Sources {
	return export.Sources{
		Contacts:        r.Contacts,
		Services:        r.Services,
		Portfolios:      r.Portfolios,
		Testimonials:    r.Testimonials,
		PricingPackages: r.PricingPackages,
		BrandPartners:   r.BrandPartners,
	}
}

// Component serves /api/admin.
type Component struct {
	dash      Dashboard
	sources   export.Sources
	resources []mountable
	protect   func(http.Handler) http.Handler
	now       func() time.Time
}

// New wires the admin API.  protect wraps every route after the role
// check; pass nil to skip CSRF (tests).
func New(repos Repos, dash Dashboard, protect func(http.Handler) http.Handler) *Component {
	c := &Component{}
	c.wire(repos, dash, protect)
	return c
}

func (c *Component) wire(repos Repos, dash Dashboard, protect func(http.Handler) http.Handler) {
	c.dash = dash
	c.sources = repos.sources()
	c.protect = protect
	if c.now == nil {
		c.now = time.Now
	}
	now := func() time.Time { return c.now() }
	c.resources = []mountable{
		newResource(manager.Contacts, repos.Contacts, dash, export.ContactColumns, now),
		newResource(manager.Services, repos.Services, dash, export.ServiceColumns, now),
		newResource(manager.Portfolios, repos.Portfolios, dash, export.PortfolioColumns, now),
		newResource(manager.Testimonials, repos.Testimonials, dash, export.TestimonialColumns, now),
		newResource(manager.PricingPackages, repos.PricingPackages, dash, export.PricingPackageColumns, now),
		newResource(manager.BrandPartners, repos.BrandPartners, dash, export.BrandPartnerColumns, now),
	}
}

func (c *Component) Name() string { return "admin" }

func (c *Component) Init(d component.Deps) error {
	s := d.Store
	var protect func(http.Handler) http.Handler
	if d.CSRF != nil {
		protect = d.CSRF.Require
	}
	c.wire(Repos{
		Contacts:        s.Contacts,
		Services:        s.Services,
		Portfolios:      s.Portfolios,
		Testimonials:    s.Testimonials,
		PricingPackages: s.PricingPackages,
		BrandPartners:   s.BrandPartners,
	}, d.Dashboard, protect)
	return nil
}

func (c *Component) Routes(r chi.Router) {
	r.Route("/api/admin", func(api chi.Router) {
		api.Use(acl.RequireRole(auth.RoleAdmin))
		if c.protect != nil {
			api.Use(c.protect)
		}
		api.Get("/status", c.handleStatus)

		api.Group(func(g chi.Router) {
			g.Use(c.requireReady)
			g.Get("/stats", c.handleStats)
			g.Get("/export.json", c.handleExportAll)
			for _, res := range c.resources {
				g.Route("/"+res.name(), res.routes)
			}
		})
	})
}

func init() { component.Register(&Component{}) }

// requireReady probes the tables when the last probe was negative.
func (c *Component) requireReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.dash.Ready() {
			ok, err := c.dash.Probe(r.Context())
			if err != nil {
				logger.FromContext(r.Context()).Errorw("readiness probe failed", "err", err)
				writeError(w, r, err, MsgProbeFailed)
				return
			}
			if !ok {
				writeNotReady(w)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (c *Component) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := c.dash.Status(r.Context())
	if err != nil {
		writeError(w, r, err, MsgProbeFailed)
		return
	}
	respond.JSON(w, http.StatusOK, st)
}

func (c *Component) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := c.dash.Stats(r.Context())
	if err != nil {
		writeError(w, r, err, MsgStatsFailed)
		return
	}
	respond.JSON(w, http.StatusOK, st)
}

func (c *Component) handleExportAll(w http.ResponseWriter, r *http.Request) {
	now := c.now()
	b, err := export.Collect(r.Context(), c.sources, now)
	if err != nil {
		writeError(w, r, err, MsgExportFailed)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, b); err != nil {
		writeError(w, r, err, MsgExportFailed)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.JSONFilename(now)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	logger.FromContext(r.Context()).Infow("data exported", "contacts", len(b.Contacts), "services", len(b.Services))
}
