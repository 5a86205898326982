// internal/requestinfo/middleware.go
//
// Enrich: per-request audit metadata for intake and login events.
//
/*
Context
--------
Enrich runs after the session middleware so it can record who is acting.
For every request it collects:

  1. The chi request id, so intake and login log lines can be joined
     with the access log.
  2. The principal role (anon or admin) set by internal/session.
  3. The client IP: the left-most public address in X-Forwarded-For,
     then X-Real-Ip, then RemoteAddr.  Private and loopback hops are
     skipped, since they are our own proxies.
  4. The parsed User-Agent, the primary Accept-Language tag, and a
     best-effort GeoLite2 lookup.

The result is stored as *RequestInfo in the request context.
components/contact and components/auth attach Fields() to their log
lines; components/debug echoes it back to the admin.

Instrumentation
---------------
One DEBUG line per request: request id, role, ip, country, bot flag,
and path.  The admin email is not repeated here; session already adds it
to the request logger.
*/
package requestinfo

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/auth"
	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
)

// Enrich attaches *RequestInfo to the request context.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ip := clientIP(r)

		info := &RequestInfo{
			RequestID: chimw.GetReqID(ctx),
			Role:      auth.FromContext(ctx).Role,
			UA:        parseUA(r.UserAgent(), r.Header.Get("Accept-Language")),
			Geo:       lookupGeo(ip),
			URL:       r.URL,
			Timestamp: time.Now().UTC(),
		}

		logger.FromContext(ctx).Debugw("request enriched",
			"request_id", info.RequestID,
			"role", info.Role,
			"ip", info.Geo.IP,
			"country", info.Geo.CountryISO,
			"bot", info.UA.IsBot,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxKey{}, info)))
	})
}

// clientIP returns the left-most public address from the proxy headers,
// or the RemoteAddr host.
func clientIP(r *http.Request) net.IP {
	var hops []string
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops = strings.Split(xff, ",")
	}
	hops = append(hops, r.Header.Get("X-Real-Ip"))

	for _, h := range hops {
		if ip := net.ParseIP(strings.TrimSpace(h)); ip != nil && public(ip) {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return net.ParseIP(r.RemoteAddr)
}

func public(ip net.IP) bool {
	return !ip.IsPrivate() && !ip.IsLoopback() && !ip.IsUnspecified() && !ip.IsLinkLocalUnicast()
}
