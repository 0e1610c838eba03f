package app

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// CommitStore keeps the persisted state together with the two scratch
// layers tendermint drives: one for the block being delivered and one
// for mempool checks.
type CommitStore struct {
	committed vibe.CommitKVStore
	deliver   vibe.KVCacheWrap
	check     vibe.KVCacheWrap
}

// NewCommitStore opens the latest version of db.
func NewCommitStore(db vibe.CommitKVStore) (*CommitStore, error) {
	if err := db.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "cannot load latest version")
	}
	cs := &CommitStore{committed: db}
	cs.reset()
	return cs, nil
}

// reset opens fresh layers over the committed state.
func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo is the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (vibe.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit persists the delivered block and drops pending checks, which
// tendermint replays against the new state.
func (cs *CommitStore) Commit() (vibe.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return vibe.CommitID{}, errors.Wrap(err, "flush block")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

func (cs *CommitStore) CheckStore() vibe.CacheableKVStore { return cs.check }

func (cs *CommitStore) DeliverStore() vibe.CacheableKVStore { return cs.deliver }

// Committed is the read only state that queries are answered from.
func (cs *CommitStore) Committed() vibe.ReadOnlyKVStore { return cs.committed }
