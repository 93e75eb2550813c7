package blockstreams

import (
	"context"
	"errors"
	"fmt"

	"github.com/robertlopezdev/queryapi/pkg/log"
	"github.com/robertlopezdev/queryapi/pkg/metrics"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// ErrNoLastPublishedBlock is returned when a stream must resume from its
// recorded progress but no last published block exists. Resuming such a
// stream would silently restart it from zero, so the indexer is skipped
// instead.
var ErrNoLastPublishedBlock = errors.New("indexer has no last published block")

// ProgressStore is the durable per-indexer state consulted and written while
// synchronising block streams.
type ProgressStore interface {
	GetStreamVersion(config types.IndexerConfig) (uint64, bool, error)
	SetStreamVersion(config types.IndexerConfig) error
	GetLastPublishedBlock(config types.IndexerConfig) (uint64, bool, error)
	ClearBlockStream(config types.IndexerConfig) error
}

// StreamHandler is the coordinator's handle on the block streamer fleet.
type StreamHandler interface {
	List(ctx context.Context) ([]types.StreamInfo, error)
	Start(ctx context.Context, startBlockHeight uint64, config types.IndexerConfig) error
	Stop(ctx context.Context, streamID string) error
}

// Synchronise reconciles the registry snapshot against the running block
// streams: streams whose reported version matches the registry are left
// alone, mismatched streams are stopped and restarted at the correct height,
// missing streams are started, and streams belonging to no registered
// indexer are stopped.
//
// Failures while synchronising one indexer's stream are logged and do not
// affect the remaining indexers. A failure to stop an unregistered stream
// aborts the pass.
func Synchronise(ctx context.Context, registry types.IndexerRegistry, store ProgressStore, handler StreamHandler) error {
	activeStreams, err := handler.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active block streams: %w", err)
	}

	for accountID, indexers := range registry {
		for functionName, config := range indexers {
			activeStream := takeActiveStream(&activeStreams, accountID, functionName)

			if err := synchroniseBlockStream(ctx, activeStream, config, store, handler); err != nil {
				logger := log.WithIndexer(config)
				logger.Error().
					Err(err).
					Msg("failed to synchronise block stream")
				metrics.SynchroniseFailuresTotal.WithLabelValues("block_streams").Inc()
			}
		}
	}

	for _, unregistered := range activeStreams {
		log.Logger.Info().
			Str("account_id", unregistered.AccountID).
			Str("function_name", unregistered.FunctionName).
			Uint64("version", unregistered.Version).
			Msg("Stopping unregistered block stream")

		if err := handler.Stop(ctx, unregistered.StreamID); err != nil {
			return fmt.Errorf("failed to stop unregistered block stream %s: %w", unregistered.StreamID, err)
		}
		metrics.StreamsStoppedTotal.Inc()
	}

	return nil
}

// takeActiveStream removes and returns the stream matching the indexer from
// the working copy of the active stream list. Matching is by account and
// function name only, so a stream survives rule or schema changes as long as
// its version still matches. Whatever remains in the list after the registry
// loop is unregistered.
func takeActiveStream(streams *[]types.StreamInfo, accountID types.AccountID, functionName string) *types.StreamInfo {
	s := *streams
	for i := range s {
		if s[i].AccountID == string(accountID) && s[i].FunctionName == functionName {
			match := s[i]
			s[i] = s[len(s)-1]
			*streams = s[:len(s)-1]
			return &match
		}
	}
	return nil
}

func synchroniseBlockStream(
	ctx context.Context,
	activeStream *types.StreamInfo,
	config types.IndexerConfig,
	store ProgressStore,
	handler StreamHandler,
) error {
	logger := log.WithIndexer(config)

	if activeStream != nil {
		if activeStream.Version == config.RegistryVersion() {
			return nil
		}

		logger.Info().
			Uint64("previous_version", activeStream.Version).
			Msg("Stopping outdated block stream")

		if err := handler.Stop(ctx, activeStream.StreamID); err != nil {
			return fmt.Errorf("failed to stop outdated block stream %s: %w", activeStream.StreamID, err)
		}
		metrics.StreamsStoppedTotal.Inc()
	}

	status, err := streamStatus(config, store)
	if err != nil {
		return err
	}

	if err := clearBlockStreamIfNeeded(status, config, store); err != nil {
		return err
	}

	startBlockHeight, err := determineStartBlockHeight(status, config, store)
	if err != nil {
		return err
	}

	if err := handler.Start(ctx, startBlockHeight, config); err != nil {
		return fmt.Errorf("failed to start block stream at height %d: %w", startBlockHeight, err)
	}
	metrics.StreamsStartedTotal.Inc()

	if err := store.SetStreamVersion(config); err != nil {
		return fmt.Errorf("failed to set stream version: %w", err)
	}

	return nil
}

// clearBlockStreamIfNeeded discards the stream's buffered entries before an
// outdated stream restarts under a new version. A Continue start policy opts
// out: the operator intends to resume exactly where the old version left
// off, unread entries included.
func clearBlockStreamIfNeeded(status StreamStatus, config types.IndexerConfig, store ProgressStore) error {
	if status == StreamStatusMigrated || status == StreamStatusSynced || status == StreamStatusNew {
		return nil
	}
	if config.StartBlock.Mode == types.StartBlockContinue {
		return nil
	}

	logger := log.WithIndexer(config)
	logger.Info().Msg("Clearing block stream")

	if err := store.ClearBlockStream(config); err != nil {
		return fmt.Errorf("failed to clear block stream: %w", err)
	}
	return nil
}

// determineStartBlockHeight resolves the height a (re)started stream begins
// at. Migrated and synced streams always resume from recorded progress
// regardless of start policy; otherwise the policy decides.
func determineStartBlockHeight(status StreamStatus, config types.IndexerConfig, store ProgressStore) (uint64, error) {
	logger := log.WithIndexer(config)

	if status == StreamStatusMigrated || status == StreamStatusSynced {
		logger.Info().Msg("Resuming block stream")

		return continuationBlockHeight(config, store)
	}

	logger.Info().
		Str("start_block", string(config.StartBlock.Mode)).
		Msg("Starting new block stream")

	switch config.StartBlock.Mode {
	case types.StartBlockLatest:
		return config.RegistryVersion(), nil
	case types.StartBlockHeight:
		return config.StartBlock.Height, nil
	case types.StartBlockContinue:
		return continuationBlockHeight(config, store)
	default:
		return 0, fmt.Errorf("unknown start block mode %q", config.StartBlock.Mode)
	}
}

func continuationBlockHeight(config types.IndexerConfig, store ProgressStore) (uint64, error) {
	height, found, err := store.GetLastPublishedBlock(config)
	if err != nil {
		return 0, fmt.Errorf("failed to get last published block: %w", err)
	}
	if !found {
		return 0, ErrNoLastPublishedBlock
	}
	return height + 1, nil
}
