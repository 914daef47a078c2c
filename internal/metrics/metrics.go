// AngelaMos | 2026
// metrics.go

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskvault_users_registered_total",
			Help: "Total number of registered users",
		},
	)

	ProUpgrades = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskvault_pro_upgrades_total",
			Help: "Total number of pro upgrades",
		},
	)

	TodosCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskvault_todos_created_total",
			Help: "Total number of todos created",
		},
	)

	TodosCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskvault_todos_completed_total",
			Help: "Total number of todos marked done",
		},
	)

	TodosDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskvault_todos_deleted_total",
			Help: "Total number of todos deleted",
		},
	)

	QuotaRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskvault_quota_rejections_total",
			Help: "Total number of todo creations blocked by the free quota",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskvault_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RateLimitBlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskvault_rate_limit_blocked_total",
			Help: "Total number of requests blocked by the rate limiter",
		},
		[]string{"limiter_type"},
	)
)
