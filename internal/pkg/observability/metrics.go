package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RidesRequestedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "dispatch", Name: "rides_requested_total", Help: "Total ride requests accepted"})

	DispatchAttemptsTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "dispatch", Name: "attempts_total", Help: "Total nearest-driver selection attempts"})
	DispatchAssignedTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "dispatch", Name: "assigned_total", Help: "Total successful driver assignments"})
	DispatchUnmatchedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "dispatch", Name: "unmatched_total", Help: "Total selection attempts that found no candidate"})

	RideTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dispatch", Name: "ride_transitions_total", Help: "Ride lifecycle transitions by target status"},
		[]string{"to"},
	)

	PingsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "dispatch", Name: "pings_recorded_total", Help: "Total driver location pings recorded"})
	RidesExpiredTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "dispatch", Name: "rides_expired_total", Help: "Total assignments released by the expiry check"})
)
