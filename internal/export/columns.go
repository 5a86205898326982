package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
)

// WIB is Western Indonesia Time, the zone dates are shown in.
var WIB = time.FixedZone("WIB", 7*60*60)

// Date formats t as an Indonesian short date, e.g. "5/3/2024".
func Date(t time.Time) string { return t.In(WIB).Format("2/1/2006") }

func yesNo(b bool) string {
	if b {
		return "Ya"
	}
	return "Tidak"
}

func list(l entity.StringList) string { return strings.Join(l, "; ") }

var ContactColumns = []Column[entity.Contact]{
	{"Nama", func(c entity.Contact) string { return c.Name }},
	{"Email", func(c entity.Contact) string { return c.Email }},
	{"Telepon", func(c entity.Contact) string { return c.Phone }},
	{"Perusahaan", func(c entity.Contact) string { return c.CompanyName() }},
	{"Jenis Layanan", func(c entity.Contact) string { return c.ServiceType.Label() }},
	{"Pesan", func(c entity.Contact) string { return c.Message }},
	{"Tanggal", func(c entity.Contact) string { return Date(c.CreatedAt) }},
}

var ServiceColumns = []Column[entity.Service]{
	{"Judul", func(s entity.Service) string { return s.Title }},
	{"Deskripsi", func(s entity.Service) string { return s.Description }},
	{"Kategori", func(s entity.Service) string { return s.Category.Label() }},
	{"Ikon", func(s entity.Service) string { return string(s.Icon) }},
	{"Fitur", func(s entity.Service) string { return list(s.Features) }},
	{"Gambar", func(s entity.Service) string { return s.ImageURL }},
	{"Aktif", func(s entity.Service) string { return yesNo(s.IsActive) }},
	{"Urutan", func(s entity.Service) string { return strconv.Itoa(s.SortOrder) }},
	{"Tanggal", func(s entity.Service) string { return Date(s.CreatedAt) }},
}

var PortfolioColumns = []Column[entity.Portfolio]{
	{"Judul", func(p entity.Portfolio) string { return p.Title }},
	{"Klien", func(p entity.Portfolio) string { return p.ClientName }},
	{"Kategori", func(p entity.Portfolio) string { return p.Category.Label() }},
	{"Tanggal Proyek", func(p entity.Portfolio) string { return p.ProjectDate }},
	{"Deskripsi", func(p entity.Portfolio) string { return p.Description }},
	{"Gambar", func(p entity.Portfolio) string { return p.ImageURL }},
	{"Tag", func(p entity.Portfolio) string { return list(p.Tags) }},
	{"Unggulan", func(p entity.Portfolio) string { return yesNo(p.IsFeatured) }},
	{"Urutan", func(p entity.Portfolio) string { return strconv.Itoa(p.SortOrder) }},
}

var TestimonialColumns = []Column[entity.Testimonial]{
	{"Nama Klien", func(t entity.Testimonial) string { return t.ClientName }},
	{"Jabatan", func(t entity.Testimonial) string { return t.ClientPosition }},
	{"Perusahaan", func(t entity.Testimonial) string { return t.ClientCompany }},
	{"Testimoni", func(t entity.Testimonial) string { return t.Testimonial }},
	{"Rating", func(t entity.Testimonial) string { return strconv.Itoa(t.Rating) }},
	{"Kategori", func(t entity.Testimonial) string { return t.ServiceCategory.Label() }},
	{"Unggulan", func(t entity.Testimonial) string { return yesNo(t.IsFeatured) }},
	{"Tanggal", func(t entity.Testimonial) string { return Date(t.CreatedAt) }},
}

var PricingPackageColumns = []Column[entity.PricingPackage]{
	{"Nama Paket", func(p entity.PricingPackage) string { return p.Name }},
	{"Kategori", func(p entity.PricingPackage) string { return p.Category.Label() }},
	{"Kisaran Harga", func(p entity.PricingPackage) string { return p.PriceRange }},
	{"Deskripsi", func(p entity.PricingPackage) string { return p.Description }},
	{"Fitur", func(p entity.PricingPackage) string { return list(p.Features) }},
	{"Populer", func(p entity.PricingPackage) string { return yesNo(p.IsPopular) }},
	{"Aktif", func(p entity.PricingPackage) string { return yesNo(p.IsActive) }},
	{"Urutan", func(p entity.PricingPackage) string { return strconv.Itoa(p.SortOrder) }},
}

var BrandPartnerColumns = []Column[entity.BrandPartner]{
	{"Nama", func(b entity.BrandPartner) string { return b.Name }},
	{"Kategori", func(b entity.BrandPartner) string { return b.Category.Label() }},
	{"Logo", func(b entity.BrandPartner) string { return b.LogoURL }},
	{"Website", func(b entity.BrandPartner) string { return b.WebsiteURL }},
	{"Deskripsi", func(b entity.BrandPartner) string { return b.Description }},
	{"Aktif", func(b entity.BrandPartner) string { return yesNo(b.IsActive) }},
	{"Urutan", func(b entity.BrandPartner) string { return strconv.Itoa(b.SortOrder) }},
}
