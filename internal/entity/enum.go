// internal/entity/enum.go
//
// Closed enumerations shared by the six content entities.
//
// Context
// -------
// Every categorical column is a named string type with a fixed value set.
// Drafts decode into these types straight from JSON, so an unknown value
// survives decoding but is rejected by Valid() before any write.  The
// `enum` validator tag in internal/form calls Valid() through the Enum
// interface.
//
// Notes
// -----
//   - Labels are the Indonesian display names used by exports.
//   - "all" is a filter keyword, never a stored value.
package entity

// Enum is satisfied by every closed enumeration in this package.
type Enum interface {
	Valid() bool
}

// FilterAll is the category-filter keyword meaning "no restriction".
const FilterAll = "all"

// Category is the business line of a service, portfolio, pricing package,
// or contact enquiry.
type Category string

const (
	CategoryAdvertising Category = "advertising"
	CategoryBuildingME  Category = "building_me"
)

// Categories lists every Category in display order.
var Categories = []Category{CategoryAdvertising, CategoryBuildingME}

func (c Category) Valid() bool {
	switch c {
	case CategoryAdvertising, CategoryBuildingME:
		return true
	}
	return false
}

// Label returns the Indonesian display name.
func (c Category) Label() string {
	switch c {
	case CategoryAdvertising:
		return "Periklanan"
	case CategoryBuildingME:
		return "Building ME"
	}
	return string(c)
}

// Audience is the service line a testimonial speaks for.  Unlike
// Category it admits "both".
type Audience string

const (
	AudienceAdvertising Audience = "advertising"
	AudienceBuildingME  Audience = "building_me"
	AudienceBoth        Audience = "both"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceAdvertising, AudienceBuildingME, AudienceBoth:
		return true
	}
	return false
}

// Label returns the Indonesian display name.
func (a Audience) Label() string {
	switch a {
	case AudienceAdvertising:
		return "Periklanan"
	case AudienceBuildingME:
		return "Building ME"
	case AudienceBoth:
		return "Keduanya"
	}
	return string(a)
}

// Covers reports whether a testimonial tagged a should be shown under the
// category filter c.  "both" matches every category.
func (a Audience) Covers(c Category) bool {
	return a == AudienceBoth || string(a) == string(c)
}

// PartnerKind classifies a brand partner.
type PartnerKind string

const (
	PartnerClient   PartnerKind = "client"
	PartnerPartner  PartnerKind = "partner"
	PartnerSupplier PartnerKind = "supplier"
)

func (k PartnerKind) Valid() bool {
	switch k {
	case PartnerClient, PartnerPartner, PartnerSupplier:
		return true
	}
	return false
}

// Label returns the Indonesian display name.
func (k PartnerKind) Label() string {
	switch k {
	case PartnerClient:
		return "Klien"
	case PartnerPartner:
		return "Partner"
	case PartnerSupplier:
		return "Supplier"
	}
	return string(k)
}

// Icon is the symbolic name of a service icon.  The public site maps each
// name to a glyph; anything outside this set has no glyph.
type Icon string

const (
	IconBillboard Icon = "Billboard"
	IconLightbulb Icon = "Lightbulb"
	IconPalette   Icon = "Palette"
	IconPrinter   Icon = "Printer"
	IconWind      Icon = "Wind"
	IconZap       Icon = "Zap"
	IconSettings  Icon = "Settings"
	IconWrench    Icon = "Wrench"
)

func (i Icon) Valid() bool {
	switch i {
	case IconBillboard, IconLightbulb, IconPalette, IconPrinter,
		IconWind, IconZap, IconSettings, IconWrench:
		return true
	}
	return false
}
