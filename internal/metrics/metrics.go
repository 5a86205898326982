// Package metrics holds Prometheus instruments that are used across the
// site.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK          = "ok"
	ResultInvalid     = "invalid"
	ResultUnavailable = "unavailable"
	ResultNotFound    = "not_found"
	ResultForbidden   = "forbidden"
	ResultError       = "error"
)

var (
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Repository calls by table, operation, and result.",
		}, []string{"table", "op", "result"})

	ContactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Public contact form submissions by result.",
		}, []string{"result"})

	MediaUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_uploads_total",
			Help: "Media uploads by result.",
		}, []string{"result"})

	AdminLogins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_logins_total",
			Help: "Admin login attempts by result.",
		}, []string{"result"})

	DatabaseReady = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_ready",
			Help: "1 when the content tables exist, 0 when setup is pending.",
		})
)

func init() {
	prometheus.MustRegister(
		StoreOperations,
		ContactSubmissions,
		MediaUploads,
		AdminLogins,
		DatabaseReady,
	)
}
