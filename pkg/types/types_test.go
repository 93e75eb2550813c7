package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryVersionPrefersUpdateHeight(t *testing.T) {
	updated := uint64(200)
	config := IndexerConfig{
		CreatedAtBlockHeight: 100,
		UpdatedAtBlockHeight: &updated,
	}

	assert.Equal(t, uint64(200), config.RegistryVersion())
}

func TestRegistryVersionFallsBackToCreationHeight(t *testing.T) {
	config := IndexerConfig{CreatedAtBlockHeight: 100}

	assert.Equal(t, uint64(100), config.RegistryVersion())
}

func TestStartBlockConstructors(t *testing.T) {
	assert.Equal(t, StartBlock{Mode: StartBlockLatest}, Latest())
	assert.Equal(t, StartBlock{Mode: StartBlockContinue}, Continue())
	assert.Equal(t, StartBlock{Mode: StartBlockHeight, Height: 50}, Height(50))
}
