package vibetest

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
)

// FailingStore wraps a store and fails the selected operations
// with an errors.ErrDatabase instance, simulating an unavailable backend.
type FailingStore struct {
	vibe.KVStore

	FailGet    bool
	FailSet    bool
	FailDelete bool
}

var _ vibe.KVStore = (*FailingStore)(nil)

// NewFailingStore returns a wrapper around a fresh memory store.
func NewFailingStore() *FailingStore {
	return &FailingStore{KVStore: store.MemStore()}
}

func (s *FailingStore) Get(key []byte) ([]byte, error) {
	if s.FailGet {
		return nil, errors.Wrap(errors.ErrDatabase, "get")
	}
	return s.KVStore.Get(key)
}

func (s *FailingStore) Has(key []byte) (bool, error) {
	if s.FailGet {
		return false, errors.Wrap(errors.ErrDatabase, "has")
	}
	return s.KVStore.Has(key)
}

func (s *FailingStore) Set(key, value []byte) error {
	if s.FailSet {
		return errors.Wrap(errors.ErrDatabase, "set")
	}
	return s.KVStore.Set(key, value)
}

func (s *FailingStore) Delete(key []byte) error {
	if s.FailDelete {
		return errors.Wrap(errors.ErrDatabase, "delete")
	}
	return s.KVStore.Delete(key)
}

// NewBatch routes batched writes through the failing methods.
func (s *FailingStore) NewBatch() vibe.Batch {
	return store.NewNonAtomicBatch(s)
}
