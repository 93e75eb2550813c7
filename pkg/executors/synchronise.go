package executors

import (
	"context"
	"fmt"

	"github.com/robertlopezdev/queryapi/pkg/log"
	"github.com/robertlopezdev/queryapi/pkg/metrics"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// ExecutorHandler is the coordinator's handle on the runner fleet.
type ExecutorHandler interface {
	List(ctx context.Context) ([]types.ExecutorInfo, error)
	Start(ctx context.Context, config types.IndexerConfig) error
	Stop(ctx context.Context, executorID string) error
}

// Synchronise reconciles the registry snapshot against the running
// executors. Unlike the block stream pass there is no durable version state:
// an executor restarted at a new version picks up wherever its stream is,
// so reconciliation only compares the reported version with the registry.
//
// Per-indexer failures are isolated; a failure stopping an unregistered
// executor aborts the pass.
func Synchronise(ctx context.Context, registry types.IndexerRegistry, handler ExecutorHandler) error {
	activeExecutors, err := handler.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active executors: %w", err)
	}

	for accountID, indexers := range registry {
		for functionName, config := range indexers {
			activeExecutor := takeActiveExecutor(&activeExecutors, accountID, functionName)

			if err := synchroniseExecutor(ctx, activeExecutor, config, handler); err != nil {
				logger := log.WithIndexer(config)
				logger.Error().
					Err(err).
					Msg("failed to synchronise executor")
				metrics.SynchroniseFailuresTotal.WithLabelValues("executors").Inc()
			}
		}
	}

	for _, unregistered := range activeExecutors {
		log.Logger.Info().
			Str("account_id", unregistered.AccountID).
			Str("function_name", unregistered.FunctionName).
			Uint64("version", unregistered.Version).
			Str("status", unregistered.Status).
			Msg("Stopping unregistered executor")

		if err := handler.Stop(ctx, unregistered.ExecutorID); err != nil {
			return fmt.Errorf("failed to stop unregistered executor %s: %w", unregistered.ExecutorID, err)
		}
		metrics.ExecutorsStoppedTotal.Inc()
	}

	return nil
}

func takeActiveExecutor(executors *[]types.ExecutorInfo, accountID types.AccountID, functionName string) *types.ExecutorInfo {
	e := *executors
	for i := range e {
		if e[i].AccountID == string(accountID) && e[i].FunctionName == functionName {
			match := e[i]
			e[i] = e[len(e)-1]
			*executors = e[:len(e)-1]
			return &match
		}
	}
	return nil
}

func synchroniseExecutor(
	ctx context.Context,
	activeExecutor *types.ExecutorInfo,
	config types.IndexerConfig,
	handler ExecutorHandler,
) error {
	logger := log.WithIndexer(config)

	if activeExecutor != nil {
		if activeExecutor.Version == config.RegistryVersion() {
			return nil
		}

		logger.Info().
			Uint64("previous_version", activeExecutor.Version).
			Str("status", activeExecutor.Status).
			Msg("Stopping outdated executor")

		if err := handler.Stop(ctx, activeExecutor.ExecutorID); err != nil {
			return fmt.Errorf("failed to stop outdated executor %s: %w", activeExecutor.ExecutorID, err)
		}
		metrics.ExecutorsStoppedTotal.Inc()
	}

	logger.Info().Msg("Starting executor")

	if err := handler.Start(ctx, config); err != nil {
		return fmt.Errorf("failed to start executor: %w", err)
	}
	metrics.ExecutorsStartedTotal.Inc()

	return nil
}
