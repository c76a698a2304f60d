package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the two observable side channels: outbound dependency calls
// and the user cache. Registered once on the default registry; every service
// exposes them on /metrics.
var (
	dependencyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leagueops_dependency_requests_total",
		Help: "Outbound requests to dependent services, by service and outcome.",
	}, []string{"service", "outcome"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leagueops_user_cache_hits_total",
		Help: "Single-id user lookups served from the cache.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leagueops_user_cache_misses_total",
		Help: "Single-id user lookups that fell through to the store.",
	})

	cacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leagueops_user_cache_errors_total",
		Help: "Cache operations that failed and were absorbed.",
	})
)

const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

func DependencyRequest(service, outcome string) {
	dependencyRequests.WithLabelValues(service, outcome).Inc()
}

func CacheHit()   { cacheHits.Inc() }
func CacheMiss()  { cacheMisses.Inc() }
func CacheError() { cacheErrors.Inc() }
