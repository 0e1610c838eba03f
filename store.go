package vibe

// ReadOnlyKVStore is the read side of every store. Backend failures are
// returned as errors rather than raised as panics.
type ReadOnlyKVStore interface {
	// Get returns a nil value when the key is absent.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// SetDeleter is the write side shared by stores and batches.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is what handlers and buckets read from and write to.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch queues writes and applies them together on Write.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore can open a scratch layer over itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch layer over a parent store. Reads see the
// pending writes. Write flushes them to the parent and Discard drops
// them. A cache wrap can itself be wrapped, which is how a transaction
// gets a savepoint inside a block.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the persistent root of the application state.
type CommitKVStore interface {
	// Reads see the last committed version only.
	ReadOnlyKVStore

	CacheWrap() KVCacheWrap

	// Commit persists a new version and returns its id.
	Commit() (CommitID, error)

	// LoadLatestVersion opens the newest complete version on disk.
	LoadLatestVersion() error

	LatestVersion() (CommitID, error)
}

// CommitID names one persisted version of the state tree.
type CommitID struct {
	Version int64
	Hash    []byte
}
