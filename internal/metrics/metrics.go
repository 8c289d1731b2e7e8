package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	// ReconcileOutcomes is a prometheus counter metrics which holds the total
	// number of reconciliation cycles per outcome.
	ReconcileOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auto_secret_reconcile_outcomes_total",
		Help: "Total number of reconciliation cycles per outcome",
	}, []string{"outcome"})

	// GeneratedKeys is a prometheus counter metrics which holds the total
	// number of secret data keys filled in with generated values.
	GeneratedKeys = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auto_secret_generated_keys_total",
		Help: "Total number of secret data keys filled in with generated values",
	})
)

// init will register metrics with the global prometheus registry
func init() {
	metrics.Registry.MustRegister(ReconcileOutcomes, GeneratedKeys)
}
