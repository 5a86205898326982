// components/auth/auth.go
//
// Admin authentication component: login, logout, session probe.
//
// Routes
// ------
//	POST /admin/login     {email, password} → {redirect, csrf_token, email}
//	POST /admin/logout    requires X-CSRF-Token
//	GET  /admin/session   {authenticated, email, csrf_token}
//
// There is no signup: the single admin identity comes from configuration.
//
//------------------------------------------------------------------------------

package auth

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/component"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/form"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/metrics"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/requestinfo"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
)

// Response messages.
const (
	MsgMissing      = "Email dan password wajib diisi."
	MsgServerError  = "Terjadi kesalahan server. Silakan coba lagi."
	MsgLoggedOut    = "Anda telah keluar."
	DefaultRedirect = "/admin"
)

// Compile-time assertion: *Component satisfies component.Component.
var _ component.Component = (*Component)(nil)

// Sessions issues the admin cookie.  *session.Manager implements it.
type Sessions interface {
	Authenticate(email, password string) error
	Login(w http.ResponseWriter, r *http.Request) error
	Logout(w http.ResponseWriter, r *http.Request) error
}

// Tokens mints CSRF tokens.  *form.CSRF implements it.
type Tokens interface {
	Generate() (string, error)
	Require(next http.Handler) http.Handler
}

// Component encapsulates login functionality.
type Component struct {
	Sessions Sessions
	Tokens   Tokens
	Redirect string
}

/*────────────────── component.Component methods ───────────────────────────*/

// Name returns the canonical component key.
func (c *Component) Name() string { return "auth" }

// Init takes the session manager, the CSRF signer, and the post-login
// redirect.
func (c *Component) Init(d component.Deps) error {
	c.Sessions = d.Sessions
	c.Tokens = d.CSRF
	c.Redirect = DefaultRedirect
	if d.Config != nil {
		c.Redirect = d.Config.RedirectAfterLogin()
	}
	return nil
}

// Routes attaches the /admin session endpoints.
func (c *Component) Routes(r chi.Router) {
	r.Post("/admin/login", c.handleLogin)
	r.Get("/admin/session", c.handleSession)
	r.With(c.Tokens.Require).Post("/admin/logout", c.handleLogout)
}

// Register component at program start.
func init() { component.Register(&Component{}) }

/*──────────────────────────── Handlers ─────────────────────────────────────*/

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loggedIn struct {
	Redirect  string `json:"redirect"`
	CSRFToken string `json:"csrf_token"`
	Email     string `json:"email"`
}

type sessionState struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	CSRFToken     string `json:"csrf_token,omitempty"`
}

func (c *Component) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx).With(requestinfo.FromContext(ctx).Fields()...)

	var in credentials
	if err := form.DecodeJSON(w, r, &in); err != nil {
		metrics.AdminLogins.WithLabelValues(metrics.ResultInvalid).Inc()
		respond.Error(w, http.StatusBadRequest, MsgMissing)
		return
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		metrics.AdminLogins.WithLabelValues(metrics.ResultInvalid).Inc()
		respond.Error(w, http.StatusBadRequest, MsgMissing)
		return
	}

	if err := c.Sessions.Authenticate(in.Email, in.Password); err != nil {
		log.Warnw("admin login rejected", "email", in.Email)
		metrics.AdminLogins.WithLabelValues(metrics.ResultForbidden).Inc()
		respond.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	tok, err := c.Tokens.Generate()
	if err == nil {
		err = c.Sessions.Login(w, r)
	}
	if err != nil {
		log.Errorw("admin session issue failed", "err", err)
		metrics.AdminLogins.WithLabelValues(metrics.ResultError).Inc()
		respond.Error(w, http.StatusInternalServerError, MsgServerError)
		return
	}

	log.Infow("admin logged in", "email", in.Email)
	metrics.AdminLogins.WithLabelValues(metrics.ResultOK).Inc()
	respond.JSON(w, http.StatusOK, loggedIn{Redirect: c.Redirect, CSRFToken: tok, Email: in.Email})
}

func (c *Component) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.Logout(w, r); err != nil {
		logger.FromContext(r.Context()).Errorw("admin logout failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, MsgServerError)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": MsgLoggedOut})
}

// handleSession reports the current principal.  An admin gets a fresh
// CSRF token so a reloaded page can keep mutating.
func (c *Component) handleSession(w http.ResponseWriter, r *http.Request) {
	p := auth.FromContext(r.Context())
	if !p.IsAdmin() {
		respond.JSON(w, http.StatusOK, sessionState{})
		return
	}
	tok, err := c.Tokens.Generate()
	if err != nil {
		logger.FromContext(r.Context()).Errorw("csrf token failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, MsgServerError)
		return
	}
	respond.JSON(w, http.StatusOK, sessionState{Authenticated: true, Email: p.Email, CSRFToken: tok})
}
