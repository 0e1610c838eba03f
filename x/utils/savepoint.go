package utils

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// Savepoint runs the rest of the stack on a cache of the store. The
// cache is written back only when the call succeeds, so a failing tx
// leaves no trace below the savepoint.
//
// A zero Savepoint is inactive. Enable it per phase with OnCheck and
// OnDeliver.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ vibe.Decorator = Savepoint{}

func NewSavepoint() Savepoint {
	return Savepoint{}
}

func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Checker) (*vibe.CheckResult, error) {
	var res *vibe.CheckResult
	err := isolate(s.onCheck, db, func(db vibe.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Deliverer) (*vibe.DeliverResult, error) {
	var res *vibe.DeliverResult
	err := isolate(s.onDeliver, db, func(db vibe.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn directly unless active and db can be cache wrapped.
func isolate(active bool, db vibe.KVStore, fn func(vibe.KVStore) error) error {
	cacheable, ok := db.(vibe.CacheableKVStore)
	if !active || !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return errors.Wrap(cache.Write(), "writing savepoint")
}
