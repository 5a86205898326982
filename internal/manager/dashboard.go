// internal/manager/dashboard.go
//
// Dashboard aggregation and the global readiness gate.
//
// Context
// -------
// The six tables are provisioned together, so one probe decides whether
// the admin surface can work at all: count(contacts).  A missing-table
// answer flips the dashboard to not-ready and every manager gated on it
// reports DatabaseNotReady without touching the store.
//
// Workflow
// --------
//   - Probe()  – count(contacts); coalesced with singleflight so a burst of
//     admin requests issues one query.
//   - Stats()  – six counts concurrently (errgroup).  A contacts
//     ErrUnavailable fails the whole call; any other count failure is
//     logged and reported as 0, and readiness only moves to true when the
//     contacts count succeeded.
//   - Status() – per-table existence and row counts plus setup steps.
//
// Notes
// -----
// • Ready() is false until the first successful Probe().
// • database_ready gauge mirrors Ready().
// • Coalesced work runs on context.WithoutCancel, so one caller going away
//   does not fail the others sharing its result.
package manager

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/metrics"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// Stats are the six dashboard totals.
type Stats struct {
	TotalContacts        int `json:"totalContacts"`
	TotalServices        int `json:"totalServices"`
	TotalPortfolios      int `json:"totalPortfolios"`
	TotalTestimonials    int `json:"totalTestimonials"`
	TotalPricingPackages int `json:"totalPricingPackages"`
	TotalPartners        int `json:"totalPartners"`
}

// TableStatus is one row of the database status report.
type TableStatus struct {
	Table  string `json:"table"`
	Exists bool   `json:"exists"`
	Rows   int    `json:"rows"`
}

// Status is the database status report.
type Status struct {
	Tables         []TableStatus `json:"tables"`
	ExistingTables []string      `json:"existing_tables"`
	MissingTables  []string      `json:"missing_tables"`
	AllTablesExist bool          `json:"all_tables_exist"`
	Setup          []string      `json:"setup,omitempty"`
}

// SetupSteps are the operator steps shown while tables are missing.
var SetupSteps = []string{
	"Jalankan bkt-provision untuk membuat tabel (create tables).",
	"Jalankan bkt-seed untuk mengisi data awal (insert initial data).",
	"Pastikan akun database aplikasi hanya memiliki hak SELECT, INSERT, UPDATE, dan DELETE pada keenam tabel (access policies).",
}

// Dashboard aggregates counts across the six tables.
type Dashboard struct {
	counters []store.TableCounter
	group    singleflight.Group
	ready    atomic.Bool
}

// NewDashboard takes the count probes in store.Tables order; the first
// one (contacts) is the readiness probe.
func NewDashboard(counters []store.TableCounter) *Dashboard {
	return &Dashboard{counters: counters}
}

// Ready reports the last probe result.
func (d *Dashboard) Ready() bool { return d.ready.Load() }

func (d *Dashboard) setReady(ok bool) {
	d.ready.Store(ok)
	if ok {
		metrics.DatabaseReady.Set(1)
	} else {
		metrics.DatabaseReady.Set(0)
	}
}

// Probe counts contacts and updates readiness.  It returns (false, nil)
// for missing tables and (false, err) for any other failure, in which
// case readiness is left unchanged.
func (d *Dashboard) Probe(ctx context.Context) (bool, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := d.group.Do("probe", func() (any, error) {
		_, err := d.counters[0].Count(shared)
		switch {
		case err == nil:
			d.setReady(true)
			return true, nil
		case errors.Is(err, store.ErrUnavailable):
			d.setReady(false)
			return false, nil
		}
		return false, err
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Stats returns the six totals.
func (d *Dashboard) Stats(ctx context.Context) (Stats, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := d.group.Do("stats", func() (any, error) {
		counts := make([]int, len(d.counters))
		var probed atomic.Bool
		g, gctx := errgroup.WithContext(shared)
		for i, c := range d.counters {
			g.Go(func() error {
				n, err := c.Count(gctx)
				if err == nil {
					counts[i] = n
					if i == 0 {
						probed.Store(true)
					}
					return nil
				}
				if i == 0 && errors.Is(err, store.ErrUnavailable) {
					return err
				}
				zap.L().Warn("dashboard count failed", zap.String("table", c.Table), zap.Error(err))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			d.setReady(false)
			return Stats{}, err
		}
		if probed.Load() {
			d.setReady(true)
		}
		return statsFrom(counts), nil
	})
	if err != nil {
		return Stats{}, err
	}
	return v.(Stats), nil
}

func statsFrom(c []int) Stats {
	at := func(i int) int {
		if i < len(c) {
			return c[i]
		}
		return 0
	}
	return Stats{
		TotalContacts:        at(0),
		TotalServices:        at(1),
		TotalPortfolios:      at(2),
		TotalTestimonials:    at(3),
		TotalPricingPackages: at(4),
		TotalPartners:        at(5),
	}
}

// Status reports, per table, whether it exists and how many rows it holds.
// Only a failure other than a missing table aborts the report.
func (d *Dashboard) Status(ctx context.Context) (Status, error) {
	rows := make([]TableStatus, len(d.counters))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range d.counters {
		g.Go(func() error {
			n, err := c.Count(gctx)
			switch {
			case err == nil:
				rows[i] = TableStatus{Table: c.Table, Exists: true, Rows: n}
			case errors.Is(err, store.ErrUnavailable):
				rows[i] = TableStatus{Table: c.Table}
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Status{}, err
	}

	st := Status{Tables: rows, ExistingTables: []string{}, MissingTables: []string{}}
	for _, r := range rows {
		if r.Exists {
			st.ExistingTables = append(st.ExistingTables, r.Table)
		} else {
			st.MissingTables = append(st.MissingTables, r.Table)
		}
	}
	st.AllTablesExist = len(st.MissingTables) == 0
	if !st.AllTablesExist {
		st.Setup = SetupSteps
	}
	if len(rows) > 0 {
		d.setReady(rows[0].Exists)
	}
	return st, nil
}
