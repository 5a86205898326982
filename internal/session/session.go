// internal/session/session.go
//
// Admin login session.
//
// Context
// -------
// There is exactly one admin identity, configured as an email plus a
// bcrypt hash.  A successful login stores the email in a signed and
// encrypted gorilla/sessions cookie named "bkt_session".  Middleware reads
// the cookie on every request and attaches the resulting auth.Principal to
// the request context, so repository calls see either Admin or Anonymous.
//
// Notes
// -----
// • Email comparison is case-insensitive.  bcrypt runs even for an unknown
//   email so both failures take the same path.
// • A cookie naming any email other than the configured one yields the
//   anonymous principal.
package session

import (
	"crypto/sha256"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
)

const (
	cookieName = "bkt_session"
	emailKey   = "email"
	maxAge     = 7 * 24 * 60 * 60
)

// ErrInvalidCredentials is returned for any failed login.
var ErrInvalidCredentials = errors.New("Email atau password salah.")

// Manager issues and reads admin sessions.
type Manager struct {
	store sessions.Store
	email string
	hash  []byte
}

// New builds a Manager.  secret keys the cookie; its SHA-256 digest is the
// encryption key, so any length works.
func New(secret []byte, adminEmail, passwordHash string, secure bool) *Manager {
	enc := sha256.Sum256(secret)
	cs := sessions.NewCookieStore(secret, enc[:])
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{
		store: cs,
		email: strings.ToLower(strings.TrimSpace(adminEmail)),
		hash:  []byte(passwordHash),
	}
}

// HashPassword returns a bcrypt hash for admin.password_hash.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// Authenticate checks email and password against the configured admin.
func (m *Manager) Authenticate(email, password string) error {
	err := bcrypt.CompareHashAndPassword(m.hash, []byte(password))
	if m.email == "" || strings.ToLower(strings.TrimSpace(email)) != m.email || err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login stores the admin email in the session cookie.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, cookieName)
	s.Values[emailKey] = m.email
	s.Options.MaxAge = maxAge
	return s.Save(r, w)
}

// Logout expires the session cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, cookieName)
	delete(s.Values, emailKey)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// Principal returns the identity carried by r's cookie.
func (m *Manager) Principal(r *http.Request) auth.Principal {
	s, err := m.store.Get(r, cookieName)
	if err != nil {
		return auth.Anonymous()
	}
	email, _ := s.Values[emailKey].(string)
	if email == "" || email != m.email {
		return auth.Anonymous()
	}
	return auth.Admin(email)
}

// Middleware attaches the request's principal to its context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := m.Principal(r)
		ctx := auth.WithPrincipal(r.Context(), p)
		if p.IsAdmin() {
			ctx = logger.WithContext(ctx, logger.FromContext(ctx).With("admin", p.Email))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
