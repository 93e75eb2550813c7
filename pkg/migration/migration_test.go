package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertlopezdev/queryapi/pkg/store"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// mockStore is a configurable Store for tests.
type mockStore struct {
	GetAllowlistFunc             func() ([]store.AllowlistEntry, error)
	SetAllowlistEntryFunc        func(entry store.AllowlistEntry) error
	GetLastPublishedBlockFunc    func(config types.IndexerConfig) (uint64, bool, error)
	SetMigratedStreamVersionFunc func(config types.IndexerConfig, sentinel uint64) error

	SetAllowlistEntryCalls        []store.AllowlistEntry
	SetMigratedStreamVersionCalls []types.IndexerConfig
}

func (m *mockStore) GetAllowlist() ([]store.AllowlistEntry, error) {
	if m.GetAllowlistFunc != nil {
		return m.GetAllowlistFunc()
	}
	return nil, nil
}

func (m *mockStore) SetAllowlistEntry(entry store.AllowlistEntry) error {
	m.SetAllowlistEntryCalls = append(m.SetAllowlistEntryCalls, entry)
	if m.SetAllowlistEntryFunc != nil {
		return m.SetAllowlistEntryFunc(entry)
	}
	return nil
}

func (m *mockStore) GetLastPublishedBlock(config types.IndexerConfig) (uint64, bool, error) {
	if m.GetLastPublishedBlockFunc != nil {
		return m.GetLastPublishedBlockFunc(config)
	}
	return 0, false, nil
}

func (m *mockStore) SetMigratedStreamVersion(config types.IndexerConfig, sentinel uint64) error {
	m.SetMigratedStreamVersionCalls = append(m.SetMigratedStreamVersionCalls, config)
	if m.SetMigratedStreamVersionFunc != nil {
		return m.SetMigratedStreamVersionFunc(config, sentinel)
	}
	return nil
}

// mockExecutorHandler is a configurable ExecutorHandler for tests.
type mockExecutorHandler struct {
	ListFunc func(ctx context.Context) ([]types.ExecutorInfo, error)
	StopFunc func(ctx context.Context, executorID string) error

	StopCalls []string
}

func (m *mockExecutorHandler) List(ctx context.Context) ([]types.ExecutorInfo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockExecutorHandler) Stop(ctx context.Context, executorID string) error {
	m.StopCalls = append(m.StopCalls, executorID)
	if m.StopFunc != nil {
		return m.StopFunc(ctx, executorID)
	}
	return nil
}

func testRegistry() types.IndexerRegistry {
	return types.IndexerRegistry{
		"morgs.near": {
			"test": types.IndexerConfig{
				AccountID:            "morgs.near",
				FunctionName:         "test",
				CreatedAtBlockHeight: 100,
				StartBlock:           types.Latest(),
			},
		},
	}
}

func TestMigratePendingAccountsStopsLegacyExecutorsAndMarksStreams(t *testing.T) {
	allowlist := []store.AllowlistEntry{
		{AccountID: "morgs.near", V1Acknowledged: true},
	}
	s := &mockStore{
		GetLastPublishedBlockFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 500, true, nil
		},
	}
	executors := &mockExecutorHandler{
		ListFunc: func(context.Context) ([]types.ExecutorInfo, error) {
			return []types.ExecutorInfo{
				{ExecutorID: "executor-1", AccountID: "morgs.near", FunctionName: "test"},
				{ExecutorID: "executor-2", AccountID: "darunrs.near", FunctionName: "other"},
			}, nil
		},
	}

	err := MigratePendingAccounts(context.Background(), testRegistry(), allowlist, s, executors)

	require.NoError(t, err)
	assert.Equal(t, []string{"executor-1"}, executors.StopCalls)
	assert.Len(t, s.SetMigratedStreamVersionCalls, 1)
	require.Len(t, s.SetAllowlistEntryCalls, 1)
	assert.True(t, s.SetAllowlistEntryCalls[0].Migrated)
}

func TestMigratePendingAccountsSkipsStreamsWithoutProgress(t *testing.T) {
	allowlist := []store.AllowlistEntry{
		{AccountID: "morgs.near", V1Acknowledged: true},
	}
	s := &mockStore{}
	executors := &mockExecutorHandler{}

	err := MigratePendingAccounts(context.Background(), testRegistry(), allowlist, s, executors)

	require.NoError(t, err)
	assert.Empty(t, s.SetMigratedStreamVersionCalls)
	require.Len(t, s.SetAllowlistEntryCalls, 1)
	assert.True(t, s.SetAllowlistEntryCalls[0].Migrated)
}

func TestMigratePendingAccountsSkipsUnacknowledgedAndSettledAccounts(t *testing.T) {
	allowlist := []store.AllowlistEntry{
		{AccountID: "pending.near", V1Acknowledged: false},
		{AccountID: "done.near", V1Acknowledged: true, Migrated: true},
		{AccountID: "failed.near", V1Acknowledged: true, MigrationFailed: true},
	}
	s := &mockStore{}
	executors := &mockExecutorHandler{}

	err := MigratePendingAccounts(context.Background(), testRegistry(), allowlist, s, executors)

	require.NoError(t, err)
	assert.Empty(t, executors.StopCalls)
	assert.Empty(t, s.SetAllowlistEntryCalls)
}

func TestMigratePendingAccountsMarksFailureAndPropagates(t *testing.T) {
	allowlist := []store.AllowlistEntry{
		{AccountID: "morgs.near", V1Acknowledged: true},
	}
	stopErr := errors.New("executor wedged")
	s := &mockStore{}
	executors := &mockExecutorHandler{
		ListFunc: func(context.Context) ([]types.ExecutorInfo, error) {
			return []types.ExecutorInfo{
				{ExecutorID: "executor-1", AccountID: "morgs.near", FunctionName: "test"},
			}, nil
		},
		StopFunc: func(context.Context, string) error {
			return stopErr
		},
	}

	err := MigratePendingAccounts(context.Background(), testRegistry(), allowlist, s, executors)

	require.Error(t, err)
	assert.ErrorIs(t, err, stopErr)
	require.Len(t, s.SetAllowlistEntryCalls, 1)
	assert.True(t, s.SetAllowlistEntryCalls[0].MigrationFailed)
	assert.False(t, s.SetAllowlistEntryCalls[0].Migrated)
}

func TestMigratePendingAccountsReturnsMigrationErrorWhenMarkingFailureFails(t *testing.T) {
	allowlist := []store.AllowlistEntry{
		{AccountID: "morgs.near", V1Acknowledged: true},
	}
	stopErr := errors.New("executor wedged")
	s := &mockStore{
		SetAllowlistEntryFunc: func(store.AllowlistEntry) error {
			return errors.New("database closed")
		},
	}
	executors := &mockExecutorHandler{
		ListFunc: func(context.Context) ([]types.ExecutorInfo, error) {
			return []types.ExecutorInfo{
				{ExecutorID: "executor-1", AccountID: "morgs.near", FunctionName: "test"},
			}, nil
		},
		StopFunc: func(context.Context, string) error {
			return stopErr
		},
	}

	err := MigratePendingAccounts(context.Background(), testRegistry(), allowlist, s, executors)

	// The migration failure wins; the bookkeeping failure is only logged.
	require.Error(t, err)
	assert.ErrorIs(t, err, stopErr)
}

func TestFetchAllowlistWrapsStoreErrors(t *testing.T) {
	readErr := errors.New("bucket missing")
	s := &mockStore{
		GetAllowlistFunc: func() ([]store.AllowlistEntry, error) {
			return nil, readErr
		},
	}

	_, err := FetchAllowlist(s)

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}

func TestFilterRegistryByAllowlist(t *testing.T) {
	registry := types.IndexerRegistry{
		"migrated.near": {"a": types.IndexerConfig{AccountID: "migrated.near", FunctionName: "a"}},
		"pending.near":  {"b": types.IndexerConfig{AccountID: "pending.near", FunctionName: "b"}},
		"failed.near":   {"c": types.IndexerConfig{AccountID: "failed.near", FunctionName: "c"}},
		"unlisted.near": {"d": types.IndexerConfig{AccountID: "unlisted.near", FunctionName: "d"}},
	}
	allowlist := []store.AllowlistEntry{
		{AccountID: "migrated.near", Migrated: true},
		{AccountID: "pending.near"},
		{AccountID: "failed.near", Migrated: true, MigrationFailed: true},
		{AccountID: "absent.near", Migrated: true},
	}

	filtered := FilterRegistryByAllowlist(registry, allowlist)

	require.Len(t, filtered, 1)
	assert.Contains(t, filtered, types.AccountID("migrated.near"))
}
