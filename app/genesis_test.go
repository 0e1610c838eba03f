package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
)

type recordingInitializer struct {
	name  string
	calls *[]string
	err   error
}

func (r recordingInitializer) FromGenesis(opts vibe.Options, kv vibe.KVStore) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	init := ChainInitializers(
		recordingInitializer{name: "cash", calls: &calls},
		recordingInitializer{name: "escrow", calls: &calls, err: errors.ErrInput},
		recordingInitializer{name: "never", calls: &calls},
	)
	opts := vibe.Options{"cash": json.RawMessage(`[]`)}

	err := init.FromGenesis(opts, store.MemStore())
	assert.True(t, errors.ErrInput.Is(err))
	assert.Equal(t, []string{"cash", "escrow"}, calls)
}

func TestChainID(t *testing.T) {
	kv := store.MemStore()

	id, err := loadChainID(kv)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	err = saveChainID(kv, "a")
	assert.True(t, errors.ErrInput.Is(err))

	require.NoError(t, saveChainID(kv, "vibe-test-1"))
	id, err = loadChainID(kv)
	require.NoError(t, err)
	assert.Equal(t, "vibe-test-1", id)

	err = saveChainID(kv, "vibe-test-2")
	assert.True(t, errors.ErrUnauthorized.Is(err))
}
