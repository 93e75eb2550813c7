package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertlopezdev/queryapi/pkg/types"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()

	s, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func configFor(accountID types.AccountID, functionName string, version uint64) types.IndexerConfig {
	return types.IndexerConfig{
		AccountID:            accountID,
		FunctionName:         functionName,
		CreatedAtBlockHeight: version,
		StartBlock:           types.Latest(),
	}
}

func TestStreamVersionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	config := configFor("morgs.near", "test", 200)

	_, found, err := s.GetStreamVersion(config)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetStreamVersion(config))

	version, found, err := s.GetStreamVersion(config)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(200), version)
}

func TestSetMigratedStreamVersionWritesSentinel(t *testing.T) {
	s := openTestStore(t)
	config := configFor("morgs.near", "test", 200)

	require.NoError(t, s.SetMigratedStreamVersion(config, 0))

	version, found, err := s.GetStreamVersion(config)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(0), version)

	// The registry version overwrites the sentinel once the stream is
	// synchronised.
	require.NoError(t, s.SetStreamVersion(config))

	version, _, err = s.GetStreamVersion(config)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), version)
}

func TestLastPublishedBlockRoundTrip(t *testing.T) {
	s := openTestStore(t)
	config := configFor("morgs.near", "test", 200)

	_, found, err := s.GetLastPublishedBlock(config)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetLastPublishedBlock(config, 500))

	height, found, err := s.GetLastPublishedBlock(config)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(500), height)
}

func TestStreamVersionsAreIsolatedPerIndexer(t *testing.T) {
	s := openTestStore(t)
	first := configFor("morgs.near", "test", 200)
	second := configFor("morgs.near", "other", 300)

	require.NoError(t, s.SetStreamVersion(first))

	_, found, err := s.GetStreamVersion(second)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClearBlockStreamOnlyClearsOwnBuffer(t *testing.T) {
	s := openTestStore(t)
	cleared := configFor("morgs.near", "test", 200)
	kept := configFor("morgs.near", "test2", 200)

	require.NoError(t, s.AppendToBlockStream(cleared, []byte("a")))
	require.NoError(t, s.AppendToBlockStream(cleared, []byte("b")))
	require.NoError(t, s.AppendToBlockStream(kept, []byte("c")))

	require.NoError(t, s.ClearBlockStream(cleared))

	length, err := s.BlockStreamLength(cleared)
	require.NoError(t, err)
	assert.Zero(t, length)

	length, err = s.BlockStreamLength(kept)
	require.NoError(t, err)
	assert.Equal(t, 1, length)
}

func TestClearBlockStreamIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	config := configFor("morgs.near", "test", 200)

	require.NoError(t, s.ClearBlockStream(config))
	require.NoError(t, s.ClearBlockStream(config))
}

func TestAllowlistRoundTrip(t *testing.T) {
	s := openTestStore(t)

	allowlist, err := s.GetAllowlist()
	require.NoError(t, err)
	assert.Empty(t, allowlist)

	entry := AllowlistEntry{
		AccountID:      "morgs.near",
		V1Acknowledged: true,
	}
	require.NoError(t, s.SetAllowlistEntry(entry))

	entry.Migrated = true
	require.NoError(t, s.SetAllowlistEntry(entry))

	allowlist, err = s.GetAllowlist()
	require.NoError(t, err)
	require.Len(t, allowlist, 1)
	assert.Equal(t, types.AccountID("morgs.near"), allowlist[0].AccountID)
	assert.True(t, allowlist[0].Migrated)
	assert.True(t, allowlist[0].V1Acknowledged)
}

func TestStateSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBoltStore(dir)
	require.NoError(t, err)

	config := configFor("morgs.near", "test", 200)
	require.NoError(t, s.SetStreamVersion(config))
	require.NoError(t, s.SetLastPublishedBlock(config, 500))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(dir)
	require.NoError(t, err)
	defer s.Close()

	version, found, err := s.GetStreamVersion(config)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(200), version)

	height, found, err := s.GetLastPublishedBlock(config)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(500), height)
}
