// internal/acl/policy_test.go
//
// Unit-tests for the static policy table and the role middleware.
//
// Run: go test ./internal/acl -v

package acl

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		role   auth.Role
		table  string
		action Action
		want   bool
	}{
		{auth.RoleAnon, Contacts, Create, true},
		{auth.RoleAnon, Contacts, Read, false},
		{auth.RoleAnon, Contacts, Delete, false},
		{auth.RoleAnon, Services, Read, true},
		{auth.RoleAnon, Services, Update, false},
		{auth.RoleAdmin, Contacts, Read, true},
		{auth.RoleAdmin, Contacts, Update, false},
		{auth.RoleAdmin, Contacts, Delete, true},
		{auth.RoleAdmin, BrandPartners, Update, true},
		{auth.RoleAdmin, "users", Read, false},
		{auth.Role("editor"), Services, Read, false},
	}
	for _, c := range cases {
		if got := Allowed(c.role, c.table, c.action); got != c.want {
			t.Errorf("Allowed(%s, %s, %s) = %v, want %v", c.role, c.table, c.action, got, c.want)
		}
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RequireRole(auth.RoleAdmin)(next)

	cases := []struct {
		p    auth.Principal
		want int
	}{
		{auth.Anonymous(), http.StatusUnauthorized},
		{auth.Principal{Role: "editor"}, http.StatusForbidden},
		{auth.Admin("a@b.co"), http.StatusOK},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req = req.WithContext(auth.WithPrincipal(req.Context(), c.p))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != c.want {
			t.Errorf("role %q: status = %d, want %d", c.p.Role, rr.Code, c.want)
		}
	}
}

func TestRequirePermission(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RequirePermission(Contacts, Create)(next)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("anon create contact: status = %d", rr.Code)
	}
}
