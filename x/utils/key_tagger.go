package utils

import (
	"fmt"
	"sort"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/store"
)

// KeyTagger tags a DeliverTx result with every key the stack below it
// wrote. Each tag key is the upper case hex of a store key, so indexers
// can search for txs that touched a given escrow or wallet. The value
// is "s" for a set and "d" for a delete.
//
// CheckTx is passed through untouched.
type KeyTagger struct{}

var _ vibe.Decorator = KeyTagger{}

func NewKeyTagger() KeyTagger { return KeyTagger{} }

func (KeyTagger) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Checker) (*vibe.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (KeyTagger) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Deliverer) (*vibe.DeliverResult, error) {
	rec := store.NewRecordingStore(db)
	res, err := next.Deliver(ctx, rec, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, changesToTags(rec.KVPairs())...)
	return res, nil
}

var (
	recordSet    = []byte("s")
	recordDelete = []byte("d")
)

// changesToTags maps a recorded change set, where a nil value marks a
// delete, to tags ordered by key.
func changesToTags(changes map[string][]byte) common.KVPairs {
	if len(changes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags := make(common.KVPairs, len(keys))
	for i, k := range keys {
		tags[i].Key = []byte(fmt.Sprintf("%X", k))
		if changes[k] == nil {
			tags[i].Value = recordDelete
		} else {
			tags[i].Value = recordSet
		}
	}
	return tags
}
