package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/robertlopezdev/queryapi/pkg/blockstreams"
	"github.com/robertlopezdev/queryapi/pkg/executors"
	"github.com/robertlopezdev/queryapi/pkg/log"
	"github.com/robertlopezdev/queryapi/pkg/metrics"
	"github.com/robertlopezdev/queryapi/pkg/migration"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// ControlLoopThrottle is the minimum duration of one control loop iteration.
// The throttle runs concurrently with the synchronisation passes, so an
// iteration takes max(pass durations, throttle).
const ControlLoopThrottle = time.Second

// Registry is the desired-state source for the control loop.
type Registry interface {
	Fetch(ctx context.Context) (types.IndexerRegistry, error)
}

// Store combines the durable state consumed by the block stream pass and the
// migration stage. *store.BoltStore satisfies it.
type Store interface {
	blockstreams.ProgressStore
	migration.Store
}

// Coordinator drives the control loop: it continuously reconciles the
// declared indexer set against the running block streams and executors.
type Coordinator struct {
	registry  Registry
	store     Store
	streams   blockstreams.StreamHandler
	executors executors.ExecutorHandler
	throttle  time.Duration
}

// New creates a Coordinator over the given collaborators.
func New(registry Registry, store Store, streams blockstreams.StreamHandler, executorHandler executors.ExecutorHandler) *Coordinator {
	return &Coordinator{
		registry:  registry,
		store:     store,
		streams:   streams,
		executors: executorHandler,
		throttle:  ControlLoopThrottle,
	}
}

// Run executes control loop iterations until one fails or ctx is cancelled.
// There is no retry: a fatal iteration error terminates the loop, and the
// process supervisor is expected to restart the coordinator. Reconciliation
// is re-derivable from durable state, so restarting is always safe.
func (c *Coordinator) Run(ctx context.Context) error {
	logger := log.WithComponent("coordinator")
	logger.Info().Msg("Starting control loop")

	for {
		if err := c.RunOnce(ctx); err != nil {
			return err
		}
	}
}

// RunOnce performs a single control loop iteration: fetch the registry
// snapshot, run the migration stage, filter the snapshot by the allowlist,
// then run the block stream and executor passes concurrently alongside the
// throttle.
func (c *Coordinator) RunOnce(ctx context.Context) error {
	timer := metrics.NewTimer()
	defer func() {
		timer.ObserveDuration(metrics.ControlLoopDuration)
		metrics.ControlLoopIterationsTotal.Inc()
	}()

	logger := log.WithComponent("coordinator").With().
		Str("iteration_id", uuid.NewString()).
		Logger()

	registrySnapshot, err := c.registry.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch registry: %w", err)
	}

	indexerCount := 0
	for _, indexers := range registrySnapshot {
		indexerCount += len(indexers)
	}
	metrics.RegistryIndexersTotal.Set(float64(indexerCount))

	allowlist, err := migration.FetchAllowlist(c.store)
	if err != nil {
		return err
	}

	if err := migration.MigratePendingAccounts(ctx, registrySnapshot, allowlist, c.store, c.executors); err != nil {
		return err
	}

	// Accounts migrated this iteration stay filtered out until the allowlist
	// is re-read next iteration.
	filtered := migration.FilterRegistryByAllowlist(registrySnapshot, allowlist)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		timer := metrics.NewTimer()
		defer timer.ObserveDurationVec(metrics.SynchroniseDuration, "block_streams")
		return blockstreams.Synchronise(gctx, filtered, c.store, c.streams)
	})

	g.Go(func() error {
		timer := metrics.NewTimer()
		defer timer.ObserveDurationVec(metrics.SynchroniseDuration, "executors")
		return executors.Synchronise(gctx, filtered, c.executors)
	})

	g.Go(func() error {
		select {
		case <-time.After(c.throttle):
			return nil
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug().
		Int("indexers", indexerCount).
		Msg("Control loop iteration complete")

	return nil
}
