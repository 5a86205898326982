package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

func TestQuote(t *testing.T) {
	cases := map[string]string{
		"":             `""`,
		"plain":        `"plain"`,
		`He said "hi"`: `"He said ""hi"""`,
		"a,b\nc":       "\"a,b\nc\"",
	}
	for in, want := range cases {
		if got := Quote(in); got != want {
			t.Errorf("Quote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestWriteCSV_Contacts(t *testing.T) {
	company := "PT Maju"
	rows := []entity.Contact{
		{
			Name: "Budi", Email: "budi@test.com", Phone: "08123456789",
			Company: &company, ServiceType: entity.CategoryAdvertising,
			Message:   `He said "hi"`,
			CreatedAt: time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC),
		},
		{
			Name: "Sari", Email: "sari@warung.id", Phone: "628123456789",
			ServiceType: entity.CategoryBuildingME, Message: "AC rusak",
			CreatedAt: time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC),
		},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, ContactColumns, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := BOM +
		`"Nama","Email","Telepon","Perusahaan","Jenis Layanan","Pesan","Tanggal"` + "\n" +
		`"Budi","budi@test.com","08123456789","PT Maju","Periklanan","He said ""hi""","5/3/2024"` + "\n" +
		`"Sari","sari@warung.id","628123456789","","Building ME","AC rusak","6/3/2024"`
	if got := buf.String(); got != want {
		t.Fatalf("csv mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, BrandPartnerColumns, nil); err != nil {
		t.Fatal(err)
	}
	got := strings.TrimPrefix(buf.String(), BOM)
	if strings.Contains(got, "\n") || !strings.HasPrefix(got, `"Nama","Kategori"`) {
		t.Fatalf("header-only csv = %q", got)
	}
}

func TestWriteCSV_ListsAndFlags(t *testing.T) {
	rows := []entity.Service{{
		Title: "Billboard", Category: entity.CategoryAdvertising, Icon: "megaphone",
		Features: entity.StringList{"Desain", "Instalasi"}, IsActive: true, SortOrder: 2,
	}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, ServiceColumns, rows); err != nil {
		t.Fatal(err)
	}
	line := strings.Split(buf.String(), "\n")[1]
	if !strings.Contains(line, `"Desain; Instalasi"`) || !strings.Contains(line, `"Ya","2"`) {
		t.Fatalf("row = %s", line)
	}
}

func TestFilenames(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 30, 0, 0, time.FixedZone("X", -3*3600))
	if got := CSVFilename("contacts", now); got != "contacts-2025-01-01.csv" {
		t.Errorf("CSVFilename = %s", got)
	}
	if got := JSONFilename(now); got != "bkt-data-export-2025-01-01.json" {
		t.Errorf("JSONFilename = %s", got)
	}
}

type staticLister[T any] struct {
	rows []T
	err  error
}

func (s staticLister[T]) List(context.Context, store.Order) ([]T, error) { return s.rows, s.err }

func sources() Sources {
	return Sources{
		Contacts:        staticLister[entity.Contact]{rows: []entity.Contact{{ID: "c1", Name: "Budi"}}},
		Services:        staticLister[entity.Service]{},
		Portfolios:      staticLister[entity.Portfolio]{},
		Testimonials:    staticLister[entity.Testimonial]{},
		PricingPackages: staticLister[entity.PricingPackage]{},
		BrandPartners:   staticLister[entity.BrandPartner]{},
	}
}

func TestCollectAndWriteJSON(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	b, err := Collect(context.Background(), sources(), now)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, b); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	order := []string{`"contacts"`, `"services"`, `"portfolios"`, `"testimonials"`,
		`"pricing_packages"`, `"brand_partners"`, `"exported_at"`}
	last := -1
	for _, k := range order {
		i := strings.Index(out, k)
		if i <= last {
			t.Fatalf("key %s out of order in %s", k, out)
		}
		last = i
	}
	if !strings.Contains(out, "\n  \"services\": []") {
		t.Fatalf("empty table not rendered as [] with two-space indent:\n%s", out)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if string(doc["exported_at"]) != `"2024-03-05T10:00:00Z"` {
		t.Fatalf("exported_at = %s", doc["exported_at"])
	}
}

func TestCollect_FailureFailsExport(t *testing.T) {
	src := sources()
	boom := errors.New("timeout")
	src.Testimonials = staticLister[entity.Testimonial]{err: boom}
	if _, err := Collect(context.Background(), src, time.Now()); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
