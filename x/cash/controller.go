package cash

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// Controller is the functionality other extensions use to move funds.
type Controller interface {
	// Balance returns the funds held by the address, zero if unknown.
	Balance(db vibe.ReadOnlyKVStore, addr vibe.Address) (uint64, error)
	// MoveCoins moves the given amount from src to dest.
	MoveCoins(db vibe.KVStore, src, dest vibe.Address, amount uint64) error
	// IssueCoins credits dest with newly created funds.
	IssueCoins(db vibe.KVStore, dest vibe.Address, amount uint64) error
}

// BaseController is a simple implementation of the Controller. It keeps
// all balances in a single bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller backed by the given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the funds held by the address, zero if unknown.
func (c BaseController) Balance(db vibe.ReadOnlyKVStore, addr vibe.Address) (uint64, error) {
	obj, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, errors.Wrap(err, "cannot get wallet")
	}
	return AsSet(obj).GetAmount(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db vibe.KVStore, src, dest vibe.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "cannot get sender")
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if err := AsSet(sender).subtract(amount); err != nil {
		return err
	}
	if src.Equals(dest) {
		return nil
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient")
	}
	if err := AsSet(recipient).add(amount); err != nil {
		return err
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}
	if err := c.bucket.Save(db, recipient); err != nil {
		return errors.Wrap(err, "cannot save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db vibe.KVStore, dest vibe.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient")
	}
	if err := AsSet(recipient).add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}
