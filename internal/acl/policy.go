// internal/acl/policy.go
//
// Row-level access policy for the six content tables.
//
// Context
// -------
// The public site reads display tables and writes exactly one thing, a
// contact enquiry.  Everything else belongs to the admin:
//
//	table              anon            admin
//	contacts           create          read, create, delete
//	services …         read            read, create, update, delete
//
// Contacts have no update action for anyone.  The store checks Allowed()
// before every statement, so a handler that forgets a middleware still
// cannot reach rows it should not.
//
// Notes
// -----
// • The table is static.  Adding a role means adding a row here.
package acl

import "github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"

// Action is one repository operation class.
type Action string

const (
	Read   Action = "read"
	Create Action = "create"
	Update Action = "update"
	Delete Action = "delete"
)

// Table names.
const (
	Contacts        = "contacts"
	Services        = "services"
	Portfolios      = "portfolios"
	Testimonials    = "testimonials"
	PricingPackages = "pricing_packages"
	BrandPartners   = "brand_partners"
)

type grant map[Action]bool

var (
	display = grant{Read: true}
	manage  = grant{Read: true, Create: true, Update: true, Delete: true}
)

var policy = map[auth.Role]map[string]grant{
	auth.RoleAnon: {
		Contacts:        {Create: true},
		Services:        display,
		Portfolios:      display,
		Testimonials:    display,
		PricingPackages: display,
		BrandPartners:   display,
	},
	auth.RoleAdmin: {
		Contacts:        {Read: true, Create: true, Delete: true},
		Services:        manage,
		Portfolios:      manage,
		Testimonials:    manage,
		PricingPackages: manage,
		BrandPartners:   manage,
	},
}

// Allowed reports whether role may perform action on table.
func Allowed(role auth.Role, table string, action Action) bool {
	return policy[role][table][action]
}
