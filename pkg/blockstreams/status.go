package blockstreams

import (
	"fmt"

	"github.com/robertlopezdev/queryapi/pkg/log"
	"github.com/robertlopezdev/queryapi/pkg/migration"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// StreamStatus classifies an indexer's stream by comparing the registry
// version against the version durably recorded in the progress store. The
// case set is closed; synchronisation dispatches on it with plain
// conditionals.
type StreamStatus string

const (
	// StreamStatusNew means no version has ever been recorded for the stream.
	StreamStatusNew StreamStatus = "new"
	// StreamStatusMigrated means the recorded version is the reserved
	// sentinel written when the stream was migrated from the legacy system.
	StreamStatusMigrated StreamStatus = "migrated"
	// StreamStatusSynced means the recorded version matches the registry.
	StreamStatusSynced StreamStatus = "synced"
	// StreamStatusOutdated means the recorded version differs from the
	// registry.
	StreamStatusOutdated StreamStatus = "outdated"
)

// streamStatus reads the recorded stream version and classifies it against
// the indexer's registry version. A recorded version greater than the
// registry version should not happen; it is logged and treated as outdated
// rather than failing the indexer.
func streamStatus(config types.IndexerConfig, store ProgressStore) (StreamStatus, error) {
	version, found, err := store.GetStreamVersion(config)
	if err != nil {
		return "", fmt.Errorf("failed to get stream version: %w", err)
	}

	if !found {
		return StreamStatusNew, nil
	}

	if version == migration.MigratedStreamVersion {
		return StreamStatusMigrated, nil
	}

	if version == config.RegistryVersion() {
		return StreamStatusSynced, nil
	}

	if version > config.RegistryVersion() {
		logger := log.WithIndexer(config)
		logger.Warn().
			Uint64("stream_version", version).
			Msg("Found stream with version greater than registry, treating as outdated")
	}

	return StreamStatusOutdated, nil
}
