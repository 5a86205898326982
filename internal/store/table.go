// internal/store/table.go
//
// Table catalogue.
//
// Context
// -------
// Each Table lists its columns explicitly: SELECT and INSERT never use *,
// and only Mutable columns may appear in an UPDATE patch.  Ordering
// columns are whitelisted by Columns, so an Order is never interpolated
// unchecked.
//
// Notes
// -----
// • Column order is the order rows are scanned and inserted.
// • Contacts have no Mutable columns and no updated_at.
package store

import (
	"slices"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/acl"
)

// Order is a list ordering.
type Order struct {
	Column    string
	Ascending bool
}

// Table describes one content table.
type Table struct {
	Name    string
	Columns []string
	Mutable []string
	Order   Order
	Touch   bool // has updated_at
}

func (t Table) hasColumn(c string) bool { return slices.Contains(t.Columns, c) }

func (t Table) isMutable(c string) bool { return slices.Contains(t.Mutable, c) }

// Default orderings.
var (
	SortOrderAsc  = Order{Column: "sort_order", Ascending: true}
	CreatedAtDesc = Order{Column: "created_at", Ascending: false}
)

func withBase(cols ...string) []string {
	return append([]string{"id", "created_at", "updated_at"}, cols...)
}

var (
	ContactsTable = Table{
		Name:    acl.Contacts,
		Columns: []string{"id", "name", "email", "phone", "company", "service_type", "message", "created_at"},
		Order:   CreatedAtDesc,
	}

	ServicesTable = Table{
		Name: acl.Services,
		Columns: withBase("title", "description", "category", "icon", "features",
			"image_url", "is_active", "sort_order"),
		Mutable: []string{"title", "description", "category", "icon", "features",
			"image_url", "is_active", "sort_order"},
		Order: SortOrderAsc,
		Touch: true,
	}

	PortfoliosTable = Table{
		Name: acl.Portfolios,
		Columns: withBase("title", "description", "category", "client_name", "project_date",
			"image_url", "thumbnail_url", "tags", "is_featured", "sort_order"),
		Mutable: []string{"title", "description", "category", "client_name", "project_date",
			"image_url", "thumbnail_url", "tags", "is_featured", "sort_order"},
		Order: SortOrderAsc,
		Touch: true,
	}

	TestimonialsTable = Table{
		Name: acl.Testimonials,
		Columns: withBase("client_name", "client_position", "client_company", "testimonial",
			"rating", "avatar_url", "service_category", "is_featured"),
		Mutable: []string{"client_name", "client_position", "client_company", "testimonial",
			"rating", "avatar_url", "service_category", "is_featured"},
		Order: CreatedAtDesc,
		Touch: true,
	}

	PricingPackagesTable = Table{
		Name: acl.PricingPackages,
		Columns: withBase("name", "description", "category", "price_range", "features",
			"is_popular", "is_active", "sort_order"),
		Mutable: []string{"name", "description", "category", "price_range", "features",
			"is_popular", "is_active", "sort_order"},
		Order: SortOrderAsc,
		Touch: true,
	}

	BrandPartnersTable = Table{
		Name: acl.BrandPartners,
		Columns: withBase("name", "logo_url", "website_url", "description", "category",
			"is_active", "sort_order"),
		Mutable: []string{"name", "logo_url", "website_url", "description", "category",
			"is_active", "sort_order"},
		Order: SortOrderAsc,
		Touch: true,
	}
)

// Tables lists every content table, contacts first.  Contacts is the
// readiness probe: the tables are provisioned together.
var Tables = []Table{
	ContactsTable,
	ServicesTable,
	PortfoliosTable,
	TestimonialsTable,
	PricingPackagesTable,
	BrandPartnersTable,
}
