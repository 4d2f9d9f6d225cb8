package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcgkit-io/ptcg/pkg/ptcg"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	assert.ErrorIs(t, err, ptcg.ErrConfigRequired)
}

func TestNew_WiresSubClients(t *testing.T) {
	t.Parallel()

	client, err := New(&ptcg.Config{APIKey: "test-key"})
	require.NoError(t, err)

	assert.NotNil(t, client.Cards())
	assert.NotNil(t, client.Sets())
	assert.NotNil(t, client.Types())
	assert.NotNil(t, client.Supertypes())
	assert.NotNil(t, client.Subtypes())
	assert.NotNil(t, client.Rarities())
}

func TestNew_WithMemoryCache(t *testing.T) {
	t.Parallel()

	config := &ptcg.Config{
		APIKey: "test-key",
		Cache: &ptcg.CacheConfig{
			Type:   ptcg.CacheTypeMemory,
			Memory: &ptcg.MemoryCacheConfig{MaxSize: 100},
		},
	}

	client, err := New(config)
	require.NoError(t, err)
	assert.NotNil(t, client.Cards())
}

func TestNew_CacheDisabled(t *testing.T) {
	t.Parallel()

	client, err := New(&ptcg.Config{Cache: &ptcg.CacheConfig{Type: ptcg.CacheTypeNone}})
	require.NoError(t, err)
	assert.NotNil(t, client.Cards())
}
