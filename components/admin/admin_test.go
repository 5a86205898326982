package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/entity"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/export"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/manager"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/store"
)

/*──────────────────────────── fakes ────────────────────────────────*/

type memRepo[T manager.Keyed] struct {
	rows    []T
	err     error
	created []T
	patches map[string]store.Patch
	deleted []string
	setID   func(*T, string)
}

func (m *memRepo[T]) List(context.Context, store.Order) ([]T, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]T(nil), m.rows...), nil
}

func (m *memRepo[T]) Create(_ context.Context, rec T) (T, error) {
	if m.err != nil {
		return rec, m.err
	}
	m.setID(&rec, "new-1")
	m.created = append(m.created, rec)
	m.rows = append(m.rows, rec)
	return rec, nil
}

func (m *memRepo[T]) Update(_ context.Context, id string, p store.Patch) (T, error) {
	if m.patches == nil {
		m.patches = map[string]store.Patch{}
	}
	m.patches[id] = p
	for _, r := range m.rows {
		if r.Key() == id {
			return r, nil
		}
	}
	var zero T
	return zero, &store.Error{Op: "update", Kind: store.ErrNotFound}
}

func (m *memRepo[T]) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func setBaseID[T any](get func(*T) *entity.Base) func(*T, string) {
	return func(t *T, id string) { get(t).ID = id }
}

type fixture struct {
	contacts *memRepo[entity.Contact]
	services *memRepo[entity.Service]
	dash     *manager.Dashboard
	comp     *Component
	router   chi.Router
}

func newFixture(t *testing.T, contactsErr error) *fixture {
	t.Helper()
	company := "PT Maju"
	f := &fixture{
		contacts: &memRepo[entity.Contact]{
			rows: []entity.Contact{
				{ID: "c1", Name: "Budi", Email: "budi@test.com", Phone: "08123456789", Company: &company,
					ServiceType: entity.CategoryAdvertising, Message: `He said "hi"`,
					CreatedAt: time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)},
				{ID: "c2", Name: "Sari", Email: "sari@test.com", Phone: "08123456780",
					ServiceType: entity.CategoryBuildingME, Message: "AC"},
			},
			setID: func(c *entity.Contact, id string) { c.ID = id },
		},
		services: &memRepo[entity.Service]{
			rows: []entity.Service{
				{Base: entity.Base{ID: "s1"}, Title: "Billboard", Description: "Reklame", Category: entity.CategoryAdvertising,
					Icon: entity.IconBillboard, IsActive: true},
			},
			setID: setBaseID(func(s *entity.Service) *entity.Base { return &s.Base }),
		},
	}

	count := func(err error, n int) func(context.Context) (int, error) {
		return func(context.Context) (int, error) { return n, err }
	}
	f.dash = manager.NewDashboard([]store.TableCounter{
		{Table: "contacts", Count: count(contactsErr, 2)},
		{Table: "services", Count: count(nil, 1)},
		{Table: "portfolios", Count: count(nil, 0)},
		{Table: "testimonials", Count: count(nil, 0)},
		{Table: "pricing_packages", Count: count(nil, 0)},
		{Table: "brand_partners", Count: count(nil, 0)},
	})

	empty := func() Repos {
		return Repos{
			Portfolios:      &memRepo[entity.Portfolio]{},
			Testimonials:    &memRepo[entity.Testimonial]{},
			PricingPackages: &memRepo[entity.PricingPackage]{},
			BrandPartners:   &memRepo[entity.BrandPartner]{},
		}
	}
	repos := empty()
	repos.Contacts = f.contacts
	repos.Services = f.services

	f.comp = New(repos, f.dash, nil)
	f.comp.now = func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }
	f.router = chi.NewRouter()
	f.comp.Routes(f.router)
	return f
}

func (f *fixture) do(method, path, body string, p auth.Principal) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(auth.WithPrincipal(req.Context(), p))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

var admin = auth.Admin("admin@bakti.co.id")

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("body %q: %v", rec.Body.String(), err)
	}
}

/*──────────────────────────── tests ────────────────────────────────*/

func TestRequiresAdmin(t *testing.T) {
	f := newFixture(t, nil)
	if rec := f.do(http.MethodGet, "/api/admin/services", "", auth.Anonymous()); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestList_Filters(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodGet, "/api/admin/contacts?q=SARI&category=building_me", "", admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		State string
		Total int
		Items []entity.Contact
	}
	decode(t, rec, &out)
	if out.State != string(manager.StateReady) || out.Total != 2 || len(out.Items) != 1 || out.Items[0].ID != "c2" {
		t.Errorf("list = %+v", out)
	}

	rec = f.do(http.MethodGet, "/api/admin/contacts?q=nobody", "", admin)
	decode(t, rec, &out)
	if len(out.Items) != 0 || out.Items == nil {
		t.Errorf("no-match list = %#v", out.Items)
	}
}

func TestNotReady(t *testing.T) {
	f := newFixture(t, &store.Error{Op: "count", Table: "contacts", Kind: store.ErrUnavailable})
	rec := f.do(http.MethodGet, "/api/admin/services", "", admin)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	var out notReady
	decode(t, rec, &out)
	if out.Error != manager.MsgNotReady || len(out.Setup) != len(manager.SetupSteps) {
		t.Errorf("body = %+v", out)
	}

	rec = f.do(http.MethodGet, "/api/admin/status", "", admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status endpoint = %d", rec.Code)
	}
	var st manager.Status
	decode(t, rec, &st)
	if st.AllTablesExist || len(st.MissingTables) != 1 || st.MissingTables[0] != "contacts" {
		t.Errorf("status = %+v", st)
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodPost, "/api/admin/services",
		`{"title":" Neon Box ","description":"Lampu","features":["","Terang","  "]}`, admin)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(f.services.created) != 1 {
		t.Fatalf("created %d", len(f.services.created))
	}
	got := f.services.created[0]
	if got.Title != "Neon Box" || len(got.Features) != 1 || got.Features[0] != "Terang" || !got.IsActive {
		t.Errorf("created = %+v", got)
	}
}

func TestCreate_Invalid(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodPost, "/api/admin/services", `{"title":"","description":"x"}`, admin)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var out invalid
	decode(t, rec, &out)
	if out.Error == "" || len(out.Fields) == 0 {
		t.Errorf("body = %+v", out)
	}
	if len(f.services.created) != 0 {
		t.Error("invalid draft reached the store")
	}
}

func TestCreate_BadBody(t *testing.T) {
	f := newFixture(t, nil)
	if rec := f.do(http.MethodPost, "/api/admin/services", `{"title":`, admin); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestContactsAreImmutable(t *testing.T) {
	f := newFixture(t, nil)
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/admin/contacts"},
		{http.MethodPatch, "/api/admin/contacts/c1"},
	} {
		if rec := f.do(tc.method, tc.path, `{"name":"x"}`, admin); rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s = %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestUpdate(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodPatch, "/api/admin/services/s1", `{"title":"Billboard Besar"}`, admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	p := f.services.patches["s1"]
	if p["title"] != "Billboard Besar" || p["description"] != "Reklame" {
		t.Errorf("patch = %v", p)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	f := newFixture(t, nil)
	if rec := f.do(http.MethodPatch, "/api/admin/services/zz", `{"title":"x"}`, admin); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t, nil)
	if rec := f.do(http.MethodDelete, "/api/admin/services/s1", "", admin); rec.Code != http.StatusPreconditionRequired {
		t.Fatalf("unconfirmed status = %d", rec.Code)
	}
	if len(f.services.deleted) != 0 {
		t.Fatal("unconfirmed delete dispatched")
	}
	for i := 0; i < 2; i++ {
		if rec := f.do(http.MethodDelete, "/api/admin/services/s1?confirm=true", "", admin); rec.Code != http.StatusOK {
			t.Fatalf("delete #%d status = %d", i+1, rec.Code)
		}
	}
	if len(f.services.deleted) != 2 {
		t.Errorf("deleted = %v", f.services.deleted)
	}
}

func TestStoreFailure(t *testing.T) {
	f := newFixture(t, nil)
	f.services.err = &store.Error{Op: "list", Table: "services", Err: errors.New("dial tcp: refused")}
	rec := f.do(http.MethodGet, "/api/admin/services", "", admin)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "refused") {
		t.Error("driver error leaked")
	}
}

func TestExportCSV(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodGet, "/api/admin/contacts/export.csv?category=advertising", "", admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "contacts-2024-03-05.csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, export.BOM+`"Nama"`) {
		t.Errorf("csv head = %q", body[:min(len(body), 40)])
	}
	if !strings.Contains(body, `"He said ""hi"""`) || strings.Contains(body, "Sari") {
		t.Errorf("csv body = %q", body)
	}
}

func TestExportJSON(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodGet, "/api/admin/export.json", "", admin)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "bkt-data-export-2024-03-05.json") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	var b export.Bundle
	decode(t, rec, &b)
	if len(b.Contacts) != 2 || len(b.Services) != 1 || b.Portfolios == nil {
		t.Errorf("bundle = %+v", b)
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodGet, "/api/admin/stats", "", admin)
	var st manager.Stats
	decode(t, rec, &st)
	if st.TotalContacts != 2 || st.TotalServices != 1 {
		t.Errorf("stats = %+v", st)
	}
}
