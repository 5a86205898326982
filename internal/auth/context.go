// internal/auth/context.go
//
// Request principal carried in context.Context.
//
// Usage
// -----
//     // The session middleware attaches the admin after login.
//     ctx = auth.WithPrincipal(ctx, auth.Admin("admin@bakti.co.id"))
//
//     // Repositories read it on every call.
//     p := auth.FromContext(ctx)   // Anonymous() when none is set
//
// Notes
// -----
// • There is no ambient "current user".  Code that writes to the store
//   must have a context that went through the session middleware, or one
//   built explicitly by an operator tool.

package auth

import "context"

// Role is the coarse permission class of a principal.
type Role string

const (
	RoleAnon  Role = "anon"
	RoleAdmin Role = "admin"
)

// Principal identifies who is acting.
type Principal struct {
	Role  Role
	Email string
}

// Anonymous is the principal of every unauthenticated request.
func Anonymous() Principal { return Principal{Role: RoleAnon} }

// Admin returns the admin principal for email.
func Admin(email string) Principal { return Principal{Role: RoleAdmin, Email: email} }

// IsAdmin reports whether p is the admin.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// principalKey is unexported to avoid context-key collisions.
type principalKey struct{}

// WithPrincipal returns a new context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext extracts the principal from ctx.  It returns Anonymous() if
// none is set.
func FromContext(ctx context.Context) Principal {
	if p, ok := ctx.Value(principalKey{}).(Principal); ok {
		return p
	}
	return Anonymous()
}
