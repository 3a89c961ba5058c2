package provisioning

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	operationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamsfx",
			Subsystem: "provisioning",
			Name:      "operation_failures_total",
			Help:      "Total number of failed provisioning operations by error kind",
		},
		[]string{"kind"},
	)

	pollAttemptsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "teamsfx",
			Subsystem: "provisioning",
			Name:      "deploy_poll_attempts_total",
			Help:      "Total number of deployment status poll attempts that found the deployment pending",
		},
	)

	phaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "teamsfx",
			Subsystem: "provisioning",
			Name:      "phase_duration_seconds",
			Help:      "Duration of workflow phases in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3.5min
		},
		[]string{"phase"},
	)
)

// RegisterMetrics registers the provisioning metrics on the given
// registerer. Embedding applications that do not scrape simply never call
// this; the collectors still record.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(operationFailuresTotal, pollAttemptsTotal, phaseDuration)
}
