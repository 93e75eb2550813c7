/*
Package metrics provides Prometheus metrics collection and exposition for the
coordinator.

All metrics are defined as package-level variables and registered with the
default Prometheus registry at package init, so they are available to every
package without setup. The /metrics endpoint is served with promhttp via
Handler().

# Metrics Catalog

Control loop:

coordinator_control_loop_iterations_total:
  - Type: Counter
  - Description: Completed control loop iterations

coordinator_control_loop_duration_seconds:
  - Type: Histogram
  - Description: Full iteration duration, including the throttle

coordinator_registry_indexers_total:
  - Type: Gauge
  - Description: Indexers in the latest registry snapshot

Synchronisation passes (labelled by pass, "block_streams" or "executors"):

coordinator_synchronise_duration_seconds{pass}:
  - Type: Histogram
  - Description: Duration of one synchronisation pass

coordinator_synchronise_failures_total{pass}:
  - Type: Counter
  - Description: Per-indexer failures isolated within a pass

Fleet actions:

coordinator_streams_started_total / coordinator_streams_stopped_total:
  - Type: Counter
  - Description: Block stream start and stop calls issued

coordinator_executors_started_total / coordinator_executors_stopped_total:
  - Type: Counter
  - Description: Executor start and stop calls issued

Migration:

coordinator_accounts_migrated_total:
  - Type: Counter
  - Description: Accounts successfully migrated from the legacy system

coordinator_account_migration_failures_total:
  - Type: Counter
  - Description: Account migrations that failed and were marked as such

# Usage

Recording a pass duration with the Timer helper:

	timer := metrics.NewTimer()
	// ... run the pass ...
	timer.ObserveDurationVec(metrics.SynchroniseDuration, "block_streams")

Exposing the endpoints:

	http.Handle("/metrics", metrics.Handler())
	http.Handle("/health", metrics.HealthHandler())
	http.Handle("/healthz", metrics.LivenessHandler())

# Health Checks

The package also tracks per-component health for the /health endpoint.
Components register themselves with RegisterComponent and update their state
with UpdateComponent; /health returns 503 as soon as any component reports
unhealthy. /healthz is a plain liveness probe and always returns 200 while
the process runs.

# Label Discipline

Labels are bounded to the two pass names. Per-indexer detail (account,
function name) belongs in logs, not labels, to keep cardinality flat no
matter how many indexers are registered.
*/
package metrics
