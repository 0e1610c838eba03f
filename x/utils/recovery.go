package utils

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// Recovery converts a panic anywhere below it into an ErrPanic error.
// Put it near the top of the chain so Logging still sees the failure.
type Recovery struct{}

var _ vibe.Decorator = Recovery{}

func NewRecovery() Recovery { return Recovery{} }

func (Recovery) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Checker) (res *vibe.CheckResult, err error) {
	defer errors.Recover(&err)
	res, err = next.Check(ctx, db, tx)
	return res, err
}

func (Recovery) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Deliverer) (res *vibe.DeliverResult, err error) {
	defer errors.Recover(&err)
	res, err = next.Deliver(ctx, db, tx)
	return res, err
}
