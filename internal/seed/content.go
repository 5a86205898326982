// Package seed holds the company's initial display content.  cmd/seed
// inserts it through the repositories; components/site serves it directly
// while the tables are not provisioned yet.
package seed

import (
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
)

func base(id string) entity.Base { return entity.Base{ID: id} }

// Services returns the eight standard services.
func Services() []entity.Service {
	return []entity.Service{
		{
			Base:        base("1"),
			Title:       "Billboard & Signage",
			Description: "Pembuatan dan pemasangan billboard, papan nama, dan signage berkualitas tinggi dengan desain menarik dan tahan lama.",
			Category:    entity.CategoryAdvertising,
			Icon:        entity.IconBillboard,
			Features: entity.StringList{
				"Desain kreatif dan profesional",
				"Material berkualitas tinggi",
				"Pemasangan yang aman dan rapi",
				"Maintenance berkala",
				"Garansi 1 tahun",
			},
			IsActive:  true,
			SortOrder: 1,
		},
		{
			Base:        base("2"),
			Title:       "Neon Box & LED Display",
			Description: "Solusi pencahayaan modern dengan neon box dan LED display untuk meningkatkan visibilitas brand Anda 24/7.",
			Category:    entity.CategoryAdvertising,
			Icon:        entity.IconLightbulb,
			Features: entity.StringList{
				"LED berkualitas tinggi",
				"Hemat energi",
				"Tahan cuaca ekstrem",
				"Remote control system",
				"Garansi 2 tahun",
			},
			IsActive:  true,
			SortOrder: 2,
		},
		{
			Base:        base("3"),
			Title:       "Branding & Graphic Design",
			Description: "Layanan lengkap branding mulai dari logo design, corporate identity, hingga material promosi.",
			Category:    entity.CategoryAdvertising,
			Icon:        entity.IconPalette,
			Features: entity.StringList{
				"Logo dan brand identity",
				"Desain kemasan produk",
				"Material promosi",
				"Digital marketing design",
				"Brand guideline",
			},
			IsActive:  true,
			SortOrder: 3,
		},
		{
			Base:        base("4"),
			Title:       "Digital Printing",
			Description: "Layanan cetak digital berkualitas tinggi untuk berbagai kebutuhan promosi dan branding.",
			Category:    entity.CategoryAdvertising,
			Icon:        entity.IconPrinter,
			Features: entity.StringList{
				"Cetak indoor & outdoor",
				"Berbagai material",
				"Resolusi tinggi",
				"Finishing berkualitas",
				"Harga kompetitif",
			},
			IsActive:  true,
			SortOrder: 4,
		},
		{
			Base:        base("5"),
			Title:       "AC Installation & Maintenance",
			Description: "Pemasangan, perawatan, dan perbaikan sistem AC untuk gedung komersial dan residensial.",
			Category:    entity.CategoryBuildingME,
			Icon:        entity.IconWind,
			Features: entity.StringList{
				"Pemasangan AC split & central",
				"Maintenance rutin",
				"Perbaikan darurat 24/7",
				"Cleaning dan service",
				"Garansi service 6 bulan",
			},
			IsActive:  true,
			SortOrder: 5,
		},
		{
			Base:        base("6"),
			Title:       "Electrical System",
			Description: "Instalasi dan maintenance sistem kelistrikan gedung dengan standar keamanan tinggi.",
			Category:    entity.CategoryBuildingME,
			Icon:        entity.IconZap,
			Features: entity.StringList{
				"Instalasi listrik gedung",
				"Panel listrik & MCB",
				"Grounding system",
				"Emergency lighting",
				"Sertifikat SLO",
			},
			IsActive:  true,
			SortOrder: 6,
		},
		{
			Base:        base("7"),
			Title:       "Mechanical Engineering",
			Description: "Solusi engineering untuk sistem mekanikal gedung termasuk plumbing dan ventilasi.",
			Category:    entity.CategoryBuildingME,
			Icon:        entity.IconSettings,
			Features: entity.StringList{
				"Sistem plumbing",
				"Ventilasi udara",
				"Fire protection system",
				"Lift maintenance",
				"Konsultasi engineering",
			},
			IsActive:  true,
			SortOrder: 7,
		},
		{
			Base:        base("8"),
			Title:       "Building Maintenance",
			Description: "Layanan maintenance terpadu untuk menjaga kondisi optimal gedung dan fasilitasnya.",
			Category:    entity.CategoryBuildingME,
			Icon:        entity.IconWrench,
			Features: entity.StringList{
				"Preventive maintenance",
				"Corrective maintenance",
				"Facility management",
				"Cleaning service",
				"Security system",
			},
			IsActive:  true,
			SortOrder: 8,
		},
	}
}

// Portfolios returns the six showcase projects.
func Portfolios() []entity.Portfolio {
	return []entity.Portfolio{
		{
			Base:        base("1"),
			Title:       "Billboard Mega Mall Jakarta",
			Description: "Pemasangan billboard berukuran 8x4 meter dengan LED backlighting untuk promosi grand opening mall.",
			Category:    entity.CategoryAdvertising,
			ClientName:  "PT Mega Mall Indonesia",
			ProjectDate: "2024-01-15",
			ImageURL:    "/modern-billboard-mall-jakarta.jpg",
			Tags:        entity.StringList{"Billboard", "LED", "Mall"},
			IsFeatured:  true,
			SortOrder:   1,
		},
		{
			Base:        base("2"),
			Title:       "Neon Box Restaurant Chain",
			Description: "Pembuatan dan pemasangan neon box untuk 15 cabang restaurant dengan desain konsisten.",
			Category:    entity.CategoryAdvertising,
			ClientName:  "Warung Padang Sederhana",
			ProjectDate: "2024-02-20",
			ImageURL:    "/neon-box-restaurant-signage.jpg",
			Tags:        entity.StringList{"Neon Box", "Restaurant", "Chain"},
			IsFeatured:  true,
			SortOrder:   2,
		},
		{
			Base:        base("3"),
			Title:       "AC Central Gedung Perkantoran",
			Description: "Instalasi sistem AC central 50 PK untuk gedung perkantoran 15 lantai dengan sistem kontrol otomatis.",
			Category:    entity.CategoryBuildingME,
			ClientName:  "PT Graha Perkantoran",
			ProjectDate: "2024-03-10",
			ImageURL:    "/office-building-ac-central-system.jpg",
			Tags:        entity.StringList{"AC Central", "Office Building", "Automation"},
			IsFeatured:  true,
			SortOrder:   3,
		},
		{
			Base:        base("4"),
			Title:       "Sistem Kelistrikan Apartemen",
			Description: "Instalasi lengkap sistem kelistrikan untuk kompleks apartemen 200 unit dengan standar SNI.",
			Category:    entity.CategoryBuildingME,
			ClientName:  "Green Valley Apartment",
			ProjectDate: "2024-01-05",
			ImageURL:    "/apartment-electrical-system-installation.jpg",
			Tags:        entity.StringList{"Electrical", "Apartment", "SNI Standard"},
			SortOrder:   4,
		},
		{
			Base:        base("5"),
			Title:       "Corporate Branding Bank",
			Description: "Desain dan implementasi complete branding untuk 25 cabang bank termasuk signage dan interior.",
			Category:    entity.CategoryAdvertising,
			ClientName:  "Bank Mandiri Syariah",
			ProjectDate: "2023-12-15",
			ImageURL:    "/bank-corporate-branding-signage.jpg",
			Tags:        entity.StringList{"Branding", "Bank", "Corporate"},
			SortOrder:   5,
		},
		{
			Base:        base("6"),
			Title:       "Maintenance Gedung Hotel",
			Description: "Kontrak maintenance terpadu untuk hotel bintang 5 meliputi AC, listrik, dan mechanical system.",
			Category:    entity.CategoryBuildingME,
			ClientName:  "Grand Hyatt Jakarta",
			ProjectDate: "2024-02-01",
			ImageURL:    "/luxury-hotel-building-maintenance.jpg",
			Tags:        entity.StringList{"Maintenance", "Hotel", "Luxury"},
			SortOrder:   6,
		},
	}
}

// Testimonials returns the six client quotes.
func Testimonials() []entity.Testimonial {
	return []entity.Testimonial{
		{
			Base:            base("1"),
			ClientName:      "Budi Santoso",
			ClientPosition:  "General Manager",
			ClientCompany:   "PT Maju Bersama",
			Testimonial:     "Pelayanan PT Bakti Karya Teknik sangat memuaskan. Signage yang dibuat berkualitas tinggi dan pemasangannya rapi. Tim mereka sangat profesional dan responsif terhadap kebutuhan kami.",
			Rating:          5,
			ServiceCategory: entity.AudienceAdvertising,
			IsFeatured:      true,
		},
		{
			Base:            base("2"),
			ClientName:      "Sari Dewi",
			ClientPosition:  "Owner",
			ClientCompany:   "Warung Sari Rasa",
			Testimonial:     "Neon box yang dibuat untuk warung saya sangat menarik dan membuat pelanggan lebih mudah menemukan lokasi. Harga juga terjangkau untuk UMKM seperti saya. Terima kasih BKT!",
			Rating:          5,
			ServiceCategory: entity.AudienceAdvertising,
		},
		{
			Base:            base("3"),
			ClientName:      "Ahmad Rahman",
			ClientPosition:  "Facility Manager",
			ClientCompany:   "Gedung Perkantoran Sudirman",
			Testimonial:     "Maintenance AC central gedung kami ditangani dengan sangat baik. Tim teknisi berpengalaman dan selalu siap 24/7 untuk emergency. Sangat recommended untuk building maintenance!",
			Rating:          5,
			ServiceCategory: entity.AudienceBuildingME,
			IsFeatured:      true,
		},
		{
			Base:            base("4"),
			ClientName:      "Linda Kusuma",
			ClientPosition:  "Property Manager",
			ClientCompany:   "Apartemen Green Valley",
			Testimonial:     "Sistem kelistrikan apartemen kami dipasang oleh PT Bakti Karya Teknik dengan standar yang tinggi. Tidak pernah ada masalah dan maintenance rutin selalu tepat waktu.",
			Rating:          4,
			ServiceCategory: entity.AudienceBuildingME,
		},
		{
			Base:            base("5"),
			ClientName:      "Rudi Hartono",
			ClientPosition:  "Marketing Director",
			ClientCompany:   "Bank Mandiri Syariah",
			Testimonial:     "Proyek branding untuk 25 cabang bank kami diselesaikan dengan sempurna. Dari signage hingga interior, semuanya konsisten dan berkualitas. Project management yang sangat baik!",
			Rating:          5,
			ServiceCategory: entity.AudienceAdvertising,
			IsFeatured:      true,
		},
		{
			Base:            base("6"),
			ClientName:      "Maya Sari",
			ClientPosition:  "Operations Manager",
			ClientCompany:   "Grand Hyatt Jakarta",
			Testimonial:     "Kontrak maintenance hotel kami dengan BKT sudah berjalan 2 tahun. Pelayanan sangat profesional, response time cepat, dan kualitas kerja yang konsisten. Highly recommended!",
			Rating:          5,
			ServiceCategory: entity.AudienceBuildingME,
		},
	}
}

// PricingPackages returns the six standard packages.
func PricingPackages() []entity.PricingPackage {
	return []entity.PricingPackage{
		{
			Base:        base("1"),
			Name:        "Paket Signage Dasar",
			Category:    entity.CategoryAdvertising,
			PriceRange:  "Rp 2.500.000 - 5.000.000",
			Description: "Paket hemat untuk UMKM dan usaha kecil",
			Features: entity.StringList{
				"Desain 2 konsep",
				"Material acrylic 3mm",
				"Ukuran maksimal 2x1 meter",
				"Pemasangan gratis area Jakarta",
				"Garansi 6 bulan",
			},
			IsActive:  true,
			SortOrder: 1,
		},
		{
			Base:        base("2"),
			Name:        "Paket Signage Premium",
			Category:    entity.CategoryAdvertising,
			PriceRange:  "Rp 5.000.000 - 15.000.000",
			Description: "Paket lengkap untuk bisnis menengah",
			Features: entity.StringList{
				"Desain unlimited revisi",
				"Material premium (acrylic 5mm)",
				"LED backlighting",
				"Ukuran fleksibel",
				"Pemasangan se-Jabodetabek",
				"Garansi 1 tahun",
				"Maintenance 3x",
			},
			IsPopular: true,
			IsActive:  true,
			SortOrder: 2,
		},
		{
			Base:        base("3"),
			Name:        "Paket Corporate Branding",
			Category:    entity.CategoryAdvertising,
			PriceRange:  "Rp 15.000.000 - 50.000.000",
			Description: "Solusi branding menyeluruh untuk perusahaan",
			Features: entity.StringList{
				"Complete brand identity",
				"Multiple signage locations",
				"Digital display integration",
				"Brand guideline lengkap",
				"Project management dedicated",
				"Garansi 2 tahun",
				"Maintenance unlimited",
			},
			IsActive:  true,
			SortOrder: 3,
		},
		{
			Base:        base("4"),
			Name:        "Paket AC Residensial",
			Category:    entity.CategoryBuildingME,
			PriceRange:  "Rp 3.000.000 - 8.000.000",
			Description: "Solusi AC untuk rumah tinggal",
			Features: entity.StringList{
				"Survey dan konsultasi gratis",
				"AC split 1-2 PK",
				"Instalasi lengkap",
				"Pipa dan kabel included",
				"Garansi instalasi 1 tahun",
			},
			IsActive:  true,
			SortOrder: 4,
		},
		{
			Base:        base("5"),
			Name:        "Paket AC Komersial",
			Category:    entity.CategoryBuildingME,
			PriceRange:  "Rp 10.000.000 - 30.000.000",
			Description: "Sistem AC untuk gedung komersial",
			Features: entity.StringList{
				"Desain sistem AC central",
				"Unit AC kapasitas besar",
				"Ducting dan ventilasi",
				"Control system otomatis",
				"Maintenance contract 1 tahun",
				"Emergency service 24/7",
			},
			IsPopular: true,
			IsActive:  true,
			SortOrder: 5,
		},
		{
			Base:        base("6"),
			Name:        "Paket Building Maintenance",
			Category:    entity.CategoryBuildingME,
			PriceRange:  "Rp 20.000.000 - 100.000.000",
			Description: "Maintenance terpadu gedung komersial",
			Features: entity.StringList{
				"Electrical system maintenance",
				"AC central maintenance",
				"Plumbing system care",
				"Fire safety system",
				"Lift maintenance",
				"Cleaning service",
				"Security system",
				"24/7 emergency response",
			},
			IsActive:  true,
			SortOrder: 6,
		},
	}
}

// BrandPartners returns the client and partner logos.
func BrandPartners() []entity.BrandPartner {
	p := func(id, name, text string, kind entity.PartnerKind, order int) entity.BrandPartner {
		return entity.BrandPartner{
			Base:      base(id),
			Name:      name,
			LogoURL:   "/placeholder.svg?height=80&width=120&text=" + text,
			Category:  kind,
			IsActive:  true,
			SortOrder: order,
		}
	}
	return []entity.BrandPartner{
		p("1", "PT Indofood Sukses Makmur", "Indofood", entity.PartnerClient, 1),
		p("2", "Bank Mandiri", "Mandiri", entity.PartnerClient, 2),
		p("3", "Tzu Chi Foundation", "Tzu+Chi", entity.PartnerClient, 3),
		p("4", "Mitsubishi Electric", "Mitsubishi", entity.PartnerPartner, 4),
		p("5", "Daikin", "Daikin", entity.PartnerPartner, 5),
		p("6", "Schneider Electric", "Schneider", entity.PartnerPartner, 6),
		p("7", "Panasonic", "Panasonic", entity.PartnerPartner, 7),
		p("8", "LG Electronics", "LG", entity.PartnerPartner, 8),
	}
}
