// internal/schema/schema.go
//
// Provisioning DDL for the six content tables.
//
// Context
// -------
// Provisioning is an operator step (cmd/provision); the web binary never
// creates tables, it only detects whether they exist.  Statements are
// idempotent (IF NOT EXISTS) so re-running provision is harmless.
//
// Notes
// -----
// • features and tags are JSON arrays in TEXT columns on both drivers.
// • project_date is "YYYY-MM-DD" text, not a DATE, so no driver converts
//   it through a time zone.
// • Enumerations and the rating range are CHECK constraints.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/database"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

// dialect holds the per-driver column types.
type dialect struct {
	id, ts, text, short, boolean, integer, tableSuffix string
}

var dialects = map[string]dialect{
	database.DriverMySQL: {
		id: "CHAR(36)", ts: "DATETIME(6)", text: "TEXT", short: "VARCHAR(255)",
		boolean: "BOOLEAN", integer: "INT",
		tableSuffix: " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci",
	},
	database.DriverPgx: {
		id: "UUID", ts: "TIMESTAMPTZ", text: "TEXT", short: "VARCHAR(255)",
		boolean: "BOOLEAN", integer: "INTEGER",
	},
}

const (
	categoryCheck = "IN ('advertising', 'building_me')"
	audienceCheck = "IN ('advertising', 'building_me', 'both')"
	partnerCheck  = "IN ('client', 'partner', 'supplier')"
	iconCheck     = "IN ('Billboard', 'Lightbulb', 'Palette', 'Printer', 'Wind', 'Zap', 'Settings', 'Wrench')"
)

// Statements returns the CREATE TABLE and CREATE INDEX statements for
// driver, contacts first.
func Statements(driver string) ([]string, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("schema: unsupported driver %q", driver)
	}

	base := func(cols ...string) []string {
		return append([]string{
			"id " + d.id + " PRIMARY KEY",
			"created_at " + d.ts + " NOT NULL",
			"updated_at " + d.ts + " NOT NULL",
		}, cols...)
	}
	order := "sort_order " + d.integer + " NOT NULL DEFAULT 0 CHECK (sort_order >= 0)"

	tables := []struct {
		name  string
		cols  []string
		index string
	}{
		{store.ContactsTable.Name, []string{
			"id " + d.id + " PRIMARY KEY",
			"name " + d.short + " NOT NULL",
			"email " + d.short + " NOT NULL",
			"phone VARCHAR(32) NOT NULL",
			"company " + d.short + " NULL",
			"service_type VARCHAR(32) NOT NULL CHECK (service_type " + categoryCheck + ")",
			"message " + d.text + " NOT NULL",
			"created_at " + d.ts + " NOT NULL",
		}, "created_at"},
		{store.ServicesTable.Name, base(
			"title "+d.short+" NOT NULL",
			"description "+d.text+" NOT NULL",
			"category VARCHAR(32) NOT NULL CHECK (category "+categoryCheck+")",
			"icon VARCHAR(32) NOT NULL CHECK (icon "+iconCheck+")",
			"features "+d.text+" NOT NULL",
			"image_url "+d.text+" NOT NULL",
			"is_active "+d.boolean+" NOT NULL DEFAULT TRUE",
			order,
		), "sort_order"},
		{store.PortfoliosTable.Name, base(
			"title "+d.short+" NOT NULL",
			"description "+d.text+" NOT NULL",
			"category VARCHAR(32) NOT NULL CHECK (category "+categoryCheck+")",
			"client_name "+d.short+" NOT NULL",
			"project_date CHAR(10) NOT NULL",
			"image_url "+d.text+" NOT NULL",
			"thumbnail_url "+d.text+" NOT NULL",
			"tags "+d.text+" NOT NULL",
			"is_featured "+d.boolean+" NOT NULL DEFAULT FALSE",
			order,
		), "sort_order"},
		{store.TestimonialsTable.Name, base(
			"client_name "+d.short+" NOT NULL",
			"client_position "+d.short+" NOT NULL",
			"client_company "+d.short+" NOT NULL",
			"testimonial "+d.text+" NOT NULL",
			"rating "+d.integer+" NOT NULL CHECK (rating BETWEEN 1 AND 5)",
			"avatar_url "+d.text+" NOT NULL",
			"service_category VARCHAR(32) NOT NULL CHECK (service_category "+audienceCheck+")",
			"is_featured "+d.boolean+" NOT NULL DEFAULT FALSE",
		), "created_at"},
		{store.PricingPackagesTable.Name, base(
			"name "+d.short+" NOT NULL",
			"description "+d.text+" NOT NULL",
			"category VARCHAR(32) NOT NULL CHECK (category "+categoryCheck+")",
			"price_range "+d.short+" NOT NULL",
			"features "+d.text+" NOT NULL",
			"is_popular "+d.boolean+" NOT NULL DEFAULT FALSE",
			"is_active "+d.boolean+" NOT NULL DEFAULT TRUE",
			order,
		), "sort_order"},
		{store.BrandPartnersTable.Name, base(
			"name "+d.short+" NOT NULL",
			"logo_url "+d.text+" NOT NULL",
			"website_url "+d.text+" NOT NULL",
			"description "+d.text+" NOT NULL",
			"category VARCHAR(32) NOT NULL CHECK (category "+partnerCheck+")",
			"is_active "+d.boolean+" NOT NULL DEFAULT TRUE",
			order,
		), "sort_order"},
	}

	out := make([]string, 0, 2*len(tables))
	for _, t := range tables {
		out = append(out, "CREATE TABLE IF NOT EXISTS "+t.name+" (\n  "+
			strings.Join(t.cols, ",\n  ")+"\n)"+d.tableSuffix)
		out = append(out, createIndex(driver, t.name, t.index))
	}
	return out, nil
}

func createIndex(driver, table, col string) string {
	name := "idx_" + table + "_" + col
	if driver == database.DriverMySQL {
		// MySQL has no CREATE INDEX IF NOT EXISTS; Apply tolerates 1061.
		return "CREATE INDEX " + name + " ON " + table + " (" + col + ")"
	}
	return "CREATE INDEX IF NOT EXISTS " + name + " ON " + table + " (" + col + ")"
}

// Grants returns the access-policy statements giving role row-level DML
// on every table and nothing else.
func Grants(role string) []string {
	out := make([]string, 0, len(store.Tables))
	for _, t := range store.Tables {
		out = append(out, "GRANT SELECT, INSERT, UPDATE, DELETE ON "+t.Name+" TO "+role)
	}
	return out
}

// Apply runs stmts in order.
func Apply(ctx context.Context, db *sqlx.DB, stmts []string) error {
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			if database.IsDuplicateIndex(err) {
				continue
			}
			return fmt.Errorf("schema: %w\n%s", err, s)
		}
	}
	return nil
}
