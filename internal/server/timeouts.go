// internal/server/timeouts.go
//
// HTTP server helper with explicit timeouts.
//
//   • ReadTimeout   – abort slow-loris headers (default 10 s)
//   • WriteTimeout  – cap total response time (default 15 s)
//   • IdleTimeout   – close keep-alives on idle clients (default 60 s)
//
// Zero values in Timeouts fall back to those defaults, so cmd/web passes
// config straight through.

package server

import (
	"net/http"
	"time"
)

// Timeouts mirrors the http.* config block.
type Timeouts struct {
	Read, Write, Idle time.Duration
}

// New constructs an *http.Server with t applied.
func New(addr string, handler http.Handler, t Timeouts) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       or(t.Read, 10*time.Second),
		ReadHeaderTimeout: or(t.Read, 10*time.Second),
		WriteTimeout:      or(t.Write, 15*time.Second),
		IdleTimeout:       or(t.Idle, 60*time.Second),
	}
}

func or(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}
