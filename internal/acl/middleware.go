// internal/acl/middleware.go
//
// Chi middleware helpers that enforce roles.

package acl

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/respond"
)

// RequireRole ensures the current principal holds ANY of the supplied roles.
// Anonymous requests get 401, other roles 403.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	if len(roles) == 0 {
		panic("acl.RequireRole: at least one role must be supplied")
	}
	allowSet := make(map[auth.Role]struct{}, len(roles))
	for _, r := range roles {
		allowSet[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := auth.FromContext(r.Context())
			if _, ok := allowSet[p.Role]; ok {
				next.ServeHTTP(w, r)
				return
			}
			if p.Role == auth.RoleAnon {
				respond.Error(w, http.StatusUnauthorized, "Silakan login terlebih dahulu.")
				return
			}
			zap.L().Warn("acl role denied", zap.String("role", string(p.Role)), zap.String("path", r.URL.Path))
			respond.Error(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
		})
	}
}

// RequirePermission verifies that the principal's role may perform action
// on table.
func RequirePermission(table string, action Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := auth.FromContext(r.Context())
			if !Allowed(p.Role, table, action) {
				respond.Error(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
