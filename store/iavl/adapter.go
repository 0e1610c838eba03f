package iavl

import (
	"fmt"

	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
)

// DefaultHistory is how many versions are kept on disk before pruning.
const DefaultHistory = 2

const cacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree       *iavl.MutableTree
	db         dbm.DB
	numHistory int64
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with a goleveldb backing
// stored under dir/name.db
func NewCommitStore(dir, name string) (CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return CommitStore{}, errors.Wrapf(errors.ErrDatabase, "open %s/%s: %s", dir, name, err)
	}
	return newCommitStore(db), nil
}

// NewMemCommitStore creates a store that holds all state in memory.
func NewMemCommitStore() CommitStore {
	return newCommitStore(dbm.NewMemDB())
}

func newCommitStore(db dbm.DB) CommitStore {
	return CommitStore{
		tree:       iavl.NewMutableTree(db, cacheSize),
		db:         db,
		numHistory: DefaultHistory,
	}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist.
func (s CommitStore) Get(key []byte) (val []byte, err error) {
	defer recoverDatabase(&err)
	_, val = s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Has returns true iff the key exists at the last committed state.
func (s CommitStore) Has(key []byte) (bool, error) {
	val, err := s.Get(key)
	return val != nil, err
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() (id store.CommitID, err error) {
	defer recoverDatabase(&err)
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return id, errors.Wrapf(errors.ErrDatabase, "save version: %s", err)
	}

	// cleanup older versions as needed
	if s.numHistory > 0 {
		toDel := version - s.numHistory
		if toDel > 0 && s.tree.VersionExists(toDel) {
			if err := s.tree.DeleteVersion(toDel); err != nil {
				return id, errors.Wrapf(errors.ErrDatabase, "delete version %d: %s", toDel, err)
			}
		}
	}

	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() (err error) {
	defer recoverDatabase(&err)
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "load: %s", err)
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// Close releases the underlying database.
func (s CommitStore) Close() {
	s.db.Close()
}

// CacheWrap wraps the working tree in a btree cache. Writing the cache
// modifies the working tree, which is persisted by Commit.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// Adapter returns a wrapper around the working (uncommitted) tree
// that implements KVStore.
func (s CommitStore) Adapter() store.CacheableKVStore {
	return adapter{tree: s.tree}
}

// adapter converts the working iavl.MutableTree to a KVStore
type adapter struct {
	tree *iavl.MutableTree
}

var _ store.CacheableKVStore = adapter{}

// Get returns nil iff key doesn't exist.
func (a adapter) Get(key []byte) (val []byte, err error) {
	defer recoverDatabase(&err)
	_, val = a.tree.Get(key)
	return val, nil
}

// Has checks if a key exists.
func (a adapter) Has(key []byte) (has bool, err error) {
	defer recoverDatabase(&err)
	return a.tree.Has(key), nil
}

// Set adds a new value
func (a adapter) Set(key, value []byte) (err error) {
	if value == nil {
		return errors.Wrap(errors.ErrInput, "nil value")
	}
	defer recoverDatabase(&err)
	a.tree.Set(key, value)
	return nil
}

// Delete removes from the tree
func (a adapter) Delete(key []byte) (err error) {
	defer recoverDatabase(&err)
	a.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically
func (a adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}

// CacheWrap wraps us once again, with btree
func (a adapter) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(a, a.NewBatch(), nil)
}

// recoverDatabase converts panics raised by the tree or the database
// driver into a database error.
func recoverDatabase(err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrap(errors.ErrDatabase, fmt.Sprint(r))
	}
}
