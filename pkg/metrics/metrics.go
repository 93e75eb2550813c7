package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Control loop metrics
	ControlLoopIterationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coordinator_control_loop_iterations_total",
			Help: "Total number of completed control loop iterations",
		},
	)

	ControlLoopDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coordinator_control_loop_duration_seconds",
			Help:    "Control loop iteration duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RegistryIndexersTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "coordinator_registry_indexers_total",
			Help: "Number of indexers in the last fetched registry snapshot",
		},
	)

	// Synchronisation pass metrics
	SynchroniseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coordinator_synchronise_duration_seconds",
			Help:    "Duration of one synchronisation pass in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"pass"},
	)

	SynchroniseFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coordinator_synchronise_failures_total",
			Help: "Total number of isolated per-indexer synchronisation failures",
		},
		[]string{"pass"},
	)

	// Block stream metrics
	StreamsStartedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coordinator_block_streams_started_total",
			Help: "Total number of block streams started",
		},
	)

	StreamsStoppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coordinator_block_streams_stopped_total",
			Help: "Total number of block streams stopped",
		},
	)

	// Executor metrics
	ExecutorsStartedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coordinator_executors_started_total",
			Help: "Total number of executors started",
		},
	)

	ExecutorsStoppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coordinator_executors_stopped_total",
			Help: "Total number of executors stopped",
		},
	)

	// Migration metrics
	AccountsMigratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coordinator_accounts_migrated_total",
			Help: "Total number of accounts migrated from the legacy system",
		},
	)

	AccountMigrationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "coordinator_account_migration_failures_total",
			Help: "Total number of failed account migrations",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(ControlLoopIterationsTotal)
	prometheus.MustRegister(ControlLoopDuration)
	prometheus.MustRegister(RegistryIndexersTotal)
	prometheus.MustRegister(SynchroniseDuration)
	prometheus.MustRegister(SynchroniseFailuresTotal)
	prometheus.MustRegister(StreamsStartedTotal)
	prometheus.MustRegister(StreamsStoppedTotal)
	prometheus.MustRegister(ExecutorsStartedTotal)
	prometheus.MustRegister(ExecutorsStoppedTotal)
	prometheus.MustRegister(AccountsMigratedTotal)
	prometheus.MustRegister(AccountMigrationFailuresTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
