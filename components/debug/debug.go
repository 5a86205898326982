// components/debug/debug.go
//
// Admin-only request echo at GET /admin/debug: the parsed user agent,
// geolocation, request id, and principal as the middleware chain saw
// them.  Useful when checking proxy headers and the GeoLite2 database on
// a new deployment.
package debug

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/acl"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/component"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/requestinfo"
)

type Component struct{}

func (Component) Name() string              { return "debug" }
func (Component) Init(component.Deps) error { return nil }

func (c Component) Routes(r chi.Router) {
	r.With(acl.RequireRole(auth.RoleAdmin)).Get("/admin/debug", handler)
}

func init() { component.Register(Component{}) }

// handler writes a JSON blob with selected context fields.
func handler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out := map[string]any{
		"request_id": chimw.GetReqID(ctx),
		"remote":     r.RemoteAddr,
		"proto":      r.Header.Get("X-Forwarded-Proto"),
		"principal":  auth.FromContext(ctx),
	}
	if info := requestinfo.FromContext(ctx); info != nil {
		out["ua_parsed"] = info.UA
		out["geo"] = info.Geo
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
