package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatal(err)
	}
	return New([]byte("test-session-secret"), "Admin@Bakti.co.id", hash, false)
}

func TestAuthenticate(t *testing.T) {
	m := newManager(t)
	if err := m.Authenticate(" admin@bakti.co.id ", "rahasia123"); err != nil {
		t.Fatalf("valid login: %v", err)
	}
	for _, tc := range []struct{ email, pw string }{
		{"admin@bakti.co.id", "wrong"},
		{"other@bakti.co.id", "rahasia123"},
		{"", ""},
	} {
		if err := m.Authenticate(tc.email, tc.pw); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate(%q, %q) = %v", tc.email, tc.pw, err)
		}
	}
}

func TestAuthenticate_NoAdminConfigured(t *testing.T) {
	m := New([]byte("s"), "", "", false)
	if err := m.Authenticate("", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	m := newManager(t)

	rec := httptest.NewRecorder()
	if err := m.Login(rec, httptest.NewRequest(http.MethodPost, "/admin/login", nil)); err != nil {
		t.Fatalf("Login: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName || !cookies[0].HttpOnly {
		t.Fatalf("cookies = %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(cookies[0])

	var got auth.Principal
	m.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = auth.FromContext(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), req)
	if !got.IsAdmin() || got.Email != "admin@bakti.co.id" {
		t.Fatalf("principal = %+v", got)
	}

	rec = httptest.NewRecorder()
	if err := m.Logout(rec, req); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	out := rec.Result().Cookies()
	if len(out) != 1 || out[0].MaxAge >= 0 {
		t.Fatalf("logout cookie = %+v", out)
	}
}

func TestPrincipal_ForeignCookie(t *testing.T) {
	m := newManager(t)
	other := New([]byte("another-secret"), "admin@bakti.co.id", "", false)

	rec := httptest.NewRecorder()
	_ = other.Login(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	if p := m.Principal(req); p.IsAdmin() {
		t.Fatal("cookie signed with another secret accepted")
	}
	if p := m.Principal(httptest.NewRequest(http.MethodGet, "/", nil)); p.IsAdmin() {
		t.Fatal("no cookie yielded admin")
	}
}
