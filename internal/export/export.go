// internal/export/export.go
//
// CSV and JSON downloads of content lists.
//
// Context
// -------
// CSV export writes whatever list the caller already holds (the manager's
// visible subset); it never queries.  JSON export-all fetches every table
// fresh and wraps them in one object with an exported_at stamp.  Neither
// path mutates state or paginates.
//
// CSV format
// ----------
//   - UTF-8 byte-order mark first, so spreadsheet tools pick the encoding.
//   - Every field, header included, is wrapped in double quotes with
//     internal quotes doubled.
//   - Fields joined by ",", rows by "\n", no trailing newline.
//
// Notes
// -----
// • encoding/csv is not used: it quotes only when needed and terminates
//   every record, and the files must match the format above byte for byte.
package export

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// BOM is the UTF-8 byte-order mark.
const BOM = "\uFEFF"

// Column is one CSV column.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Quote wraps s in double quotes, doubling any inside.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteCSV writes rows under cols to w.
func WriteCSV[T any](w io.Writer, cols []Column[T], rows []T) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(BOM); err != nil {
		return err
	}

	fields := make([]string, len(cols))
	for i, c := range cols {
		fields[i] = Quote(c.Header)
	}
	if _, err := bw.WriteString(strings.Join(fields, ",")); err != nil {
		return err
	}

	for _, r := range rows {
		for i, c := range cols {
			fields[i] = Quote(c.Value(r))
		}
		if _, err := bw.WriteString("\n" + strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CSVFilename returns "<base>-YYYY-MM-DD.csv" for the UTC date of now.
func CSVFilename(base string, now time.Time) string {
	return base + "-" + now.UTC().Format("2006-01-02") + ".csv"
}

// JSONFilename returns "bkt-data-export-YYYY-MM-DD.json".
func JSONFilename(now time.Time) string {
	return "bkt-data-export-" + now.UTC().Format("2006-01-02") + ".json"
}

/*──────────────────────────── export all ───────────────────────────*/

// Lister is the read side of a repository.
type Lister[T any] interface {
	List(ctx context.Context, o store.Order) ([]T, error)
}

// Sources are the six lists fetched by Collect.
type Sources struct {
	Contacts        Lister[entity.Contact]
	Services        Lister[entity.Service]
	Portfolios      Lister[entity.Portfolio]
	Testimonials    Lister[entity.Testimonial]
	PricingPackages Lister[entity.PricingPackage]
	BrandPartners   Lister[entity.BrandPartner]
}

// SourcesFrom wires Sources to a store.Set.
func SourcesFrom(s *store.Set) Sources {
	return Sources{
		Contacts:        s.Contacts,
		Services:        s.Services,
		Portfolios:      s.Portfolios,
		Testimonials:    s.Testimonials,
		PricingPackages: s.PricingPackages,
		BrandPartners:   s.BrandPartners,
	}
}

// Bundle is the export-all document.  Field order is the key order in the
// file.
type Bundle struct {
	Contacts        []entity.Contact        `json:"contacts"`
	Services        []entity.Service        `json:"services"`
	Portfolios      []entity.Portfolio      `json:"portfolios"`
	Testimonials    []entity.Testimonial    `json:"testimonials"`
	PricingPackages []entity.PricingPackage `json:"pricing_packages"`
	BrandPartners   []entity.BrandPartner   `json:"brand_partners"`
	ExportedAt      time.Time               `json:"exported_at"`
}

// Collect fetches all six tables concurrently.  Any failure fails the
// export: a partial backup would look complete.
func Collect(ctx context.Context, src Sources, now time.Time) (Bundle, error) {
	b := Bundle{ExportedAt: now.UTC()}
	g, gctx := errgroup.WithContext(ctx)
	fetch(g, gctx, src.Contacts, &b.Contacts)
	fetch(g, gctx, src.Services, &b.Services)
	fetch(g, gctx, src.Portfolios, &b.Portfolios)
	fetch(g, gctx, src.Testimonials, &b.Testimonials)
	fetch(g, gctx, src.PricingPackages, &b.PricingPackages)
	fetch(g, gctx, src.BrandPartners, &b.BrandPartners)
	if err := g.Wait(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

func fetch[T any](g *errgroup.Group, ctx context.Context, l Lister[T], dst *[]T) {
	g.Go(func() error {
		rows, err := l.List(ctx, store.Order{})
		if err != nil {
			return err
		}
		if rows == nil {
			rows = []T{}
		}
		*dst = rows
		return nil
	})
}

// WriteJSON writes b with two-space indentation.
func WriteJSON(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}
