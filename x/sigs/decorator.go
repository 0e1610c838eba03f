package sigs

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// Decorator authenticates signed transactions. Verified signers are
// put on the context for Authenticate to read, and their sequences are
// advanced in the store.
type Decorator struct {
	allowMissingSigs bool
}

var _ vibe.Decorator = Decorator{}

// NewDecorator rejects a signed tx that carries no signature at all.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs lets a signed tx through with an empty signer list.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

func (d Decorator) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Checker) (*vibe.CheckResult, error) {
	ctx, err := d.withVerifiedSigners(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d Decorator) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Deliverer) (*vibe.DeliverResult, error) {
	ctx, err := d.withVerifiedSigners(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

// withVerifiedSigners passes a tx without signature support through
// unchanged. Handlers behind it then see no signers.
func (d Decorator) withVerifiedSigners(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (vibe.Context, error) {
	signed, ok := tx.(SignedTx)
	if !ok {
		return ctx, nil
	}
	signers, err := VerifyTxSignatures(db, signed, vibe.GetChainID(ctx))
	switch {
	case err != nil:
		return nil, errors.Wrap(err, "cannot verify signatures")
	case len(signers) == 0 && !d.allowMissingSigs:
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), nil
}
