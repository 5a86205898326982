package seed

import (
	"context"
	"fmt"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// Target is the write side of one repository.
type Target[T any] interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, rec T) (T, error)
}

// Report holds rows inserted per table; a table that already had rows is
// reported as -1.
type Report map[string]int

// Apply inserts the display content into every empty table.  ctx must
// carry the admin principal.
func Apply(ctx context.Context, s *store.Set) (Report, error) {
	rep := Report{}
	steps := []func() error{
		func() error {
			return fill(ctx, rep, store.ServicesTable.Name, s.Services, Services())
		},
		func() error {
			return fill(ctx, rep, store.PortfoliosTable.Name, s.Portfolios, Portfolios())
		},
		func() error {
			return fill(ctx, rep, store.TestimonialsTable.Name, s.Testimonials, Testimonials())
		},
		func() error {
			return fill(ctx, rep, store.PricingPackagesTable.Name, s.PricingPackages, PricingPackages())
		},
		func() error {
			return fill(ctx, rep, store.BrandPartnersTable.Name, s.BrandPartners, BrandPartners())
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func fill[T any](ctx context.Context, rep Report, table string, t Target[T], rows []T) error {
	n, err := t.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", table, err)
	}
	if n > 0 {
		logger.FromContext(ctx).Infow("seed skipped, table not empty", "table", table, "rows", n)
		rep[table] = -1
		return nil
	}
	for _, r := range rows {
		if _, err := t.Create(ctx, r); err != nil {
			return fmt.Errorf("seed %s: %w", table, err)
		}
	}
	rep[table] = len(rows)
	logger.FromContext(ctx).Infow("seeded", "table", table, "rows", len(rows))
	return nil
}
