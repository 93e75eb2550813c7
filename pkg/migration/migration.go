package migration

import (
	"context"
	"fmt"

	"github.com/robertlopezdev/queryapi/pkg/log"
	"github.com/robertlopezdev/queryapi/pkg/metrics"
	"github.com/robertlopezdev/queryapi/pkg/store"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// MigratedStreamVersion is the reserved stream version recorded for streams
// migrated from the legacy system. It marks the stream as synchronized while
// forcing resumption from the last published block, since no real registry
// version was ever recorded for it. Real versions are block heights and are
// always non-zero.
const MigratedStreamVersion uint64 = 0

// Store is the subset of the progress store the migration stage reads and
// writes.
type Store interface {
	GetAllowlist() ([]store.AllowlistEntry, error)
	SetAllowlistEntry(entry store.AllowlistEntry) error
	GetLastPublishedBlock(config types.IndexerConfig) (uint64, bool, error)
	SetMigratedStreamVersion(config types.IndexerConfig, sentinel uint64) error
}

// ExecutorHandler is the subset of the runner handle needed to tear down an
// account's legacy executors during migration.
type ExecutorHandler interface {
	List(ctx context.Context) ([]types.ExecutorInfo, error)
	Stop(ctx context.Context, executorID string) error
}

// FetchAllowlist returns the current account allowlist from the store.
func FetchAllowlist(s Store) ([]store.AllowlistEntry, error) {
	allowlist, err := s.GetAllowlist()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch allowlist: %w", err)
	}
	return allowlist, nil
}

// MigratePendingAccounts migrates every allowlisted account that has
// acknowledged the migration but has not been migrated yet: the account's
// legacy executors are stopped and any stream with recorded progress gets the
// migrated sentinel version, so the next synchronisation pass resumes it from
// its last published block. An account that fails to migrate is marked failed
// before the error propagates, so subsequent iterations skip it.
func MigratePendingAccounts(
	ctx context.Context,
	registry types.IndexerRegistry,
	allowlist []store.AllowlistEntry,
	s Store,
	executors ExecutorHandler,
) error {
	for _, entry := range allowlist {
		if entry.Migrated || entry.MigrationFailed || !entry.V1Acknowledged {
			continue
		}

		if err := migrateAccount(ctx, registry[entry.AccountID], entry.AccountID, s, executors); err != nil {
			metrics.AccountMigrationFailuresTotal.Inc()

			entry.MigrationFailed = true
			if setErr := s.SetAllowlistEntry(entry); setErr != nil {
				logger := log.WithAccountID(entry.AccountID)
				logger.Error().
					Err(setErr).
					Msg("failed to mark account migration as failed")
			}

			return fmt.Errorf("failed to migrate account %s: %w", entry.AccountID, err)
		}

		entry.Migrated = true
		if err := s.SetAllowlistEntry(entry); err != nil {
			return fmt.Errorf("failed to mark account %s as migrated: %w", entry.AccountID, err)
		}
		metrics.AccountsMigratedTotal.Inc()
	}

	return nil
}

func migrateAccount(
	ctx context.Context,
	indexers map[string]types.IndexerConfig,
	accountID types.AccountID,
	s Store,
	executors ExecutorHandler,
) error {
	logger := log.WithAccountID(accountID)
	logger.Info().Msg("Migrating account")

	running, err := executors.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list executors: %w", err)
	}

	for _, executor := range running {
		if executor.AccountID != string(accountID) {
			continue
		}

		logger.Info().
			Str("function_name", executor.FunctionName).
			Msg("Stopping legacy executor")

		if err := executors.Stop(ctx, executor.ExecutorID); err != nil {
			return fmt.Errorf("failed to stop executor %s: %w", executor.ExecutorID, err)
		}
	}

	for _, config := range indexers {
		_, found, err := s.GetLastPublishedBlock(config)
		if err != nil {
			return fmt.Errorf("failed to get last published block: %w", err)
		}
		if !found {
			// Never published anything under the legacy system; the stream
			// will start fresh under its declared start policy.
			continue
		}

		if err := s.SetMigratedStreamVersion(config, MigratedStreamVersion); err != nil {
			return fmt.Errorf("failed to set migrated stream version: %w", err)
		}
	}

	logger.Info().Msg("Migrated account")

	return nil
}

// FilterRegistryByAllowlist returns a registry snapshot containing only the
// accounts that have completed migration. Accounts still pending or failed
// are invisible to both synchronisation passes.
func FilterRegistryByAllowlist(registry types.IndexerRegistry, allowlist []store.AllowlistEntry) types.IndexerRegistry {
	filtered := make(types.IndexerRegistry)

	for _, entry := range allowlist {
		if !entry.Migrated || entry.MigrationFailed {
			continue
		}
		if indexers, ok := registry[entry.AccountID]; ok {
			filtered[entry.AccountID] = indexers
		}
	}

	log.Logger.Debug().
		Int("accounts", len(filtered)).
		Msg("Filtered registry by allowlist")

	return filtered
}
