// Package observability holds client metrics. Collectors register into
// the default prometheus registry; the embedding process decides
// whether and where to expose them.
package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	packetsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rconctl",
			Subsystem: "rcon",
			Name:      "packets_sent_total",
			Help:      "Total RCON packets written to servers.",
		},
	)
	packetsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rconctl",
			Subsystem: "rcon",
			Name:      "packets_received_total",
			Help:      "Total RCON packets read from servers.",
		},
	)
	authAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rconctl",
			Subsystem: "rcon",
			Name:      "auth_total",
			Help:      "Authentication handshakes by outcome.",
		},
		[]string{"outcome"},
	)
	roundTripDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rconctl",
			Subsystem: "rcon",
			Name:      "round_trip_duration_seconds",
			Help:      "Command round-trip duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(packetsSent, packetsReceived, authAttempts, roundTripDuration)
	})
}

func RecordPacketSent() {
	RegisterMetrics()
	packetsSent.Inc()
}

func RecordPacketReceived() {
	RegisterMetrics()
	packetsReceived.Inc()
}

func RecordAuth(outcome string) {
	RegisterMetrics()
	authAttempts.WithLabelValues(outcome).Inc()
}

func RecordRoundTrip(duration time.Duration) {
	RegisterMetrics()
	roundTripDuration.Observe(duration.Seconds())
}
