package blockstreams

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertlopezdev/queryapi/pkg/migration"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// mockProgressStore is a configurable ProgressStore for tests. Unset funcs
// fall back to empty-store behaviour.
type mockProgressStore struct {
	GetStreamVersionFunc      func(config types.IndexerConfig) (uint64, bool, error)
	SetStreamVersionFunc      func(config types.IndexerConfig) error
	GetLastPublishedBlockFunc func(config types.IndexerConfig) (uint64, bool, error)
	ClearBlockStreamFunc      func(config types.IndexerConfig) error

	SetStreamVersionCalls []types.IndexerConfig
	ClearBlockStreamCalls []types.IndexerConfig
}

func (m *mockProgressStore) GetStreamVersion(config types.IndexerConfig) (uint64, bool, error) {
	if m.GetStreamVersionFunc != nil {
		return m.GetStreamVersionFunc(config)
	}
	return 0, false, nil
}

func (m *mockProgressStore) SetStreamVersion(config types.IndexerConfig) error {
	m.SetStreamVersionCalls = append(m.SetStreamVersionCalls, config)
	if m.SetStreamVersionFunc != nil {
		return m.SetStreamVersionFunc(config)
	}
	return nil
}

func (m *mockProgressStore) GetLastPublishedBlock(config types.IndexerConfig) (uint64, bool, error) {
	if m.GetLastPublishedBlockFunc != nil {
		return m.GetLastPublishedBlockFunc(config)
	}
	return 0, false, nil
}

func (m *mockProgressStore) ClearBlockStream(config types.IndexerConfig) error {
	m.ClearBlockStreamCalls = append(m.ClearBlockStreamCalls, config)
	if m.ClearBlockStreamFunc != nil {
		return m.ClearBlockStreamFunc(config)
	}
	return nil
}

type startCall struct {
	StartBlockHeight uint64
	Config           types.IndexerConfig
}

// mockStreamHandler is a configurable StreamHandler for tests.
type mockStreamHandler struct {
	ListFunc  func(ctx context.Context) ([]types.StreamInfo, error)
	StartFunc func(ctx context.Context, startBlockHeight uint64, config types.IndexerConfig) error
	StopFunc  func(ctx context.Context, streamID string) error

	StartCalls []startCall
	StopCalls  []string
}

func (m *mockStreamHandler) List(ctx context.Context) ([]types.StreamInfo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockStreamHandler) Start(ctx context.Context, startBlockHeight uint64, config types.IndexerConfig) error {
	m.StartCalls = append(m.StartCalls, startCall{StartBlockHeight: startBlockHeight, Config: config})
	if m.StartFunc != nil {
		return m.StartFunc(ctx, startBlockHeight, config)
	}
	return nil
}

func (m *mockStreamHandler) Stop(ctx context.Context, streamID string) error {
	m.StopCalls = append(m.StopCalls, streamID)
	if m.StopFunc != nil {
		return m.StopFunc(ctx, streamID)
	}
	return nil
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func testConfig(version uint64, startBlock types.StartBlock) types.IndexerConfig {
	return types.IndexerConfig{
		AccountID:            "morgs.near",
		FunctionName:         "test",
		Code:                 "return block;",
		Schema:               "CREATE TABLE blocks (height numeric)",
		Rule: types.MatchingRule{
			AffectedAccountID: "social.near",
			Status:            types.RuleStatusSuccess,
		},
		CreatedAtBlockHeight: 1,
		UpdatedAtBlockHeight: uint64Ptr(version),
		StartBlock:           startBlock,
	}
}

func registryWith(configs ...types.IndexerConfig) types.IndexerRegistry {
	registry := types.IndexerRegistry{}
	for _, config := range configs {
		if registry[config.AccountID] == nil {
			registry[config.AccountID] = map[string]types.IndexerConfig{}
		}
		registry[config.AccountID][config.FunctionName] = config
	}
	return registry
}

func TestSynchroniseResumesSyncedStreamAfterLastPublishedBlock(t *testing.T) {
	config := testConfig(200, types.Latest())
	store := &mockProgressStore{
		GetStreamVersionFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 200, true, nil
		},
		GetLastPublishedBlockFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 500, true, nil
		},
	}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, uint64(501), handler.StartCalls[0].StartBlockHeight)
	assert.Empty(t, store.ClearBlockStreamCalls)
	assert.Len(t, store.SetStreamVersionCalls, 1)
}

func TestSynchroniseStartsNewStreamWithLatest(t *testing.T) {
	config := testConfig(200, types.Latest())
	store := &mockProgressStore{}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, uint64(200), handler.StartCalls[0].StartBlockHeight)
	assert.Empty(t, handler.StopCalls)
	assert.Empty(t, store.ClearBlockStreamCalls)
}

func TestSynchroniseStartsNewStreamWithFixedHeight(t *testing.T) {
	config := testConfig(200, types.Height(100))
	store := &mockProgressStore{}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, uint64(100), handler.StartCalls[0].StartBlockHeight)
	require.Len(t, store.SetStreamVersionCalls, 1)
	assert.Equal(t, uint64(200), store.SetStreamVersionCalls[0].RegistryVersion())
}

func TestSynchroniseStartsNewStreamWithContinue(t *testing.T) {
	config := testConfig(200, types.Continue())
	store := &mockProgressStore{
		GetLastPublishedBlockFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 100, true, nil
		},
	}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, uint64(101), handler.StartCalls[0].StartBlockHeight)
}

func TestSynchroniseSkipsContinueStreamWithoutProgress(t *testing.T) {
	config := testConfig(200, types.Continue())
	store := &mockProgressStore{}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	assert.Empty(t, handler.StartCalls)
	assert.Empty(t, store.SetStreamVersionCalls)
}

func TestSynchroniseIgnoresStreamWithMatchingVersion(t *testing.T) {
	config := testConfig(200, types.Latest())
	store := &mockProgressStore{}
	handler := &mockStreamHandler{
		ListFunc: func(context.Context) ([]types.StreamInfo, error) {
			return []types.StreamInfo{{
				StreamID:     "morgs.near/test:200",
				AccountID:    "morgs.near",
				FunctionName: "test",
				Version:      200,
			}}, nil
		},
	}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	assert.Empty(t, handler.StartCalls)
	assert.Empty(t, handler.StopCalls)
	assert.Empty(t, store.SetStreamVersionCalls)
}

func TestSynchroniseRestartsOutdatedStream(t *testing.T) {
	config := testConfig(200, types.Latest())
	store := &mockProgressStore{
		GetStreamVersionFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 1, true, nil
		},
	}
	handler := &mockStreamHandler{
		ListFunc: func(context.Context) ([]types.StreamInfo, error) {
			return []types.StreamInfo{{
				StreamID:     "morgs.near/test:1",
				AccountID:    "morgs.near",
				FunctionName: "test",
				Version:      1,
			}}, nil
		},
	}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	assert.Equal(t, []string{"morgs.near/test:1"}, handler.StopCalls)
	require.Len(t, store.ClearBlockStreamCalls, 1)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, uint64(200), handler.StartCalls[0].StartBlockHeight)
	assert.Len(t, store.SetStreamVersionCalls, 1)
}

func TestSynchroniseRestartsOutdatedStreamAtFixedHeight(t *testing.T) {
	config := testConfig(200, types.Height(1000))
	store := &mockProgressStore{
		GetStreamVersionFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 1, true, nil
		},
	}
	handler := &mockStreamHandler{
		ListFunc: func(context.Context) ([]types.StreamInfo, error) {
			return []types.StreamInfo{{
				StreamID:     "morgs.near/test:1",
				AccountID:    "morgs.near",
				FunctionName: "test",
				Version:      1,
			}}, nil
		},
	}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	assert.Len(t, handler.StopCalls, 1)
	assert.Len(t, store.ClearBlockStreamCalls, 1)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, uint64(1000), handler.StartCalls[0].StartBlockHeight)
}

func TestSynchroniseRestartedStreamWithContinueKeepsBuffer(t *testing.T) {
	config := testConfig(200, types.Continue())
	store := &mockProgressStore{
		GetStreamVersionFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 1, true, nil
		},
		GetLastPublishedBlockFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 100, true, nil
		},
	}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	assert.Empty(t, store.ClearBlockStreamCalls)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, uint64(101), handler.StartCalls[0].StartBlockHeight)
}

func TestSynchroniseResumesMigratedStream(t *testing.T) {
	config := testConfig(200, types.Latest())
	store := &mockProgressStore{
		GetStreamVersionFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return migration.MigratedStreamVersion, true, nil
		},
		GetLastPublishedBlockFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 100, true, nil
		},
	}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	require.NoError(t, err)
	assert.Empty(t, store.ClearBlockStreamCalls)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, uint64(101), handler.StartCalls[0].StartBlockHeight)
	assert.Len(t, store.SetStreamVersionCalls, 1)
}

func TestSynchroniseSkipsStreamWithoutLastPublishedBlock(t *testing.T) {
	config := testConfig(200, types.Latest())
	store := &mockProgressStore{
		GetStreamVersionFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 200, true, nil
		},
	}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(config), store, handler)

	// Per-indexer failures do not fail the pass.
	require.NoError(t, err)
	assert.Empty(t, handler.StartCalls)
	assert.Empty(t, store.SetStreamVersionCalls)
}

func TestSynchroniseStopsUnregisteredStream(t *testing.T) {
	store := &mockProgressStore{}
	handler := &mockStreamHandler{
		ListFunc: func(context.Context) ([]types.StreamInfo, error) {
			return []types.StreamInfo{{
				StreamID:     "morgs.near/test:1",
				AccountID:    "morgs.near",
				FunctionName: "test",
				Version:      1,
			}}, nil
		},
	}

	err := Synchronise(context.Background(), types.IndexerRegistry{}, store, handler)

	require.NoError(t, err)
	assert.Equal(t, []string{"morgs.near/test:1"}, handler.StopCalls)
	assert.Empty(t, handler.StartCalls)
}

func TestSynchroniseFailsWhenUnregisteredStreamCannotBeStopped(t *testing.T) {
	stopErr := errors.New("stream not draining")
	store := &mockProgressStore{}
	handler := &mockStreamHandler{
		ListFunc: func(context.Context) ([]types.StreamInfo, error) {
			return []types.StreamInfo{{
				StreamID:     "morgs.near/test:1",
				AccountID:    "morgs.near",
				FunctionName: "test",
				Version:      1,
			}}, nil
		},
		StopFunc: func(context.Context, string) error {
			return stopErr
		},
	}

	err := Synchronise(context.Background(), types.IndexerRegistry{}, store, handler)

	require.Error(t, err)
	assert.ErrorIs(t, err, stopErr)
}

func TestSynchroniseFailsWhenListFails(t *testing.T) {
	listErr := errors.New("connection refused")
	handler := &mockStreamHandler{
		ListFunc: func(context.Context) ([]types.StreamInfo, error) {
			return nil, listErr
		},
	}

	err := Synchronise(context.Background(), types.IndexerRegistry{}, &mockProgressStore{}, handler)

	require.Error(t, err)
	assert.ErrorIs(t, err, listErr)
}

func TestSynchroniseIsolatesIndexerFailures(t *testing.T) {
	broken := testConfig(200, types.Latest())
	healthy := testConfig(300, types.Latest())
	healthy.AccountID = "darunrs.near"

	store := &mockProgressStore{
		GetStreamVersionFunc: func(config types.IndexerConfig) (uint64, bool, error) {
			if config.AccountID == broken.AccountID {
				return 0, false, errors.New("disk read failed")
			}
			return 0, false, nil
		},
	}
	handler := &mockStreamHandler{}

	err := Synchronise(context.Background(), registryWith(broken, healthy), store, handler)

	require.NoError(t, err)
	require.Len(t, handler.StartCalls, 1)
	assert.Equal(t, types.AccountID("darunrs.near"), handler.StartCalls[0].Config.AccountID)
}

func TestSynchroniseIsIdempotent(t *testing.T) {
	config := testConfig(200, types.Latest())
	recordedVersion := uint64(0)
	recorded := false

	store := &mockProgressStore{
		GetStreamVersionFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return recordedVersion, recorded, nil
		},
		SetStreamVersionFunc: func(c types.IndexerConfig) error {
			recordedVersion = c.RegistryVersion()
			recorded = true
			return nil
		},
		GetLastPublishedBlockFunc: func(types.IndexerConfig) (uint64, bool, error) {
			return 199, true, nil
		},
	}

	var active []types.StreamInfo
	handler := &mockStreamHandler{
		ListFunc: func(context.Context) ([]types.StreamInfo, error) {
			return active, nil
		},
		StartFunc: func(_ context.Context, _ uint64, c types.IndexerConfig) error {
			active = []types.StreamInfo{{
				StreamID:     "morgs.near/test",
				AccountID:    string(c.AccountID),
				FunctionName: c.FunctionName,
				Version:      c.RegistryVersion(),
			}}
			return nil
		},
	}

	registry := registryWith(config)

	require.NoError(t, Synchronise(context.Background(), registry, store, handler))
	require.Len(t, handler.StartCalls, 1)

	// A converged fleet means further passes take no action.
	require.NoError(t, Synchronise(context.Background(), registry, store, handler))
	assert.Len(t, handler.StartCalls, 1)
	assert.Empty(t, handler.StopCalls)
}

func TestStreamStatusClassification(t *testing.T) {
	config := testConfig(200, types.Latest())

	tests := []struct {
		name     string
		version  uint64
		found    bool
		expected StreamStatus
	}{
		{name: "no recorded version", found: false, expected: StreamStatusNew},
		{name: "migrated sentinel", version: migration.MigratedStreamVersion, found: true, expected: StreamStatusMigrated},
		{name: "matching version", version: 200, found: true, expected: StreamStatusSynced},
		{name: "older version", version: 1, found: true, expected: StreamStatusOutdated},
		{name: "newer version", version: 300, found: true, expected: StreamStatusOutdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockProgressStore{
				GetStreamVersionFunc: func(types.IndexerConfig) (uint64, bool, error) {
					return tt.version, tt.found, nil
				},
			}

			status, err := streamStatus(config, store)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}
