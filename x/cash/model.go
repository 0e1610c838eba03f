package cash

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.CloneableData = (*Set)(nil)

// Validate only needs the metadata. Every uint64 is a valid balance.
func (s *Set) Validate() error {
	return errors.Wrap(s.Metadata.Validate(), "metadata")
}

func (s *Set) Copy() orm.CloneableData {
	return &Set{Metadata: s.Metadata.Copy(), Amount: s.Amount}
}

// add increases the balance, failing instead of wrapping around.
func (s *Set) add(amount uint64) error {
	total := s.Amount + amount
	if total < s.Amount {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	s.Amount = total
	return nil
}

// subtract decreases the balance, failing if it does not cover amount.
func (s *Set) subtract(amount uint64) error {
	if s.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "have %d, need %d", s.Amount, amount)
	}
	s.Amount -= amount
	return nil
}

// NewWallet is an empty wallet owned by key.
func NewWallet(key vibe.Address) orm.Object {
	return WalletWith(key, 0)
}

// WalletWith is a wallet owned by key holding amount.
func WalletWith(key vibe.Address, amount uint64) orm.Object {
	return orm.NewSimpleObj(key, &Set{
		Metadata: &vibe.Metadata{Schema: 1},
		Amount:   amount,
	})
}

// AsSet is the balance held by obj, or nil for a missing wallet.
func AsSet(obj orm.Object) *Set {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Set)
}

// Bucket stores one wallet per address. A wallet that drops to zero is
// deleted rather than kept around empty.
type Bucket struct {
	orm.Bucket
}

func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName, NewWallet(nil))}
}

// GetOrCreate loads the wallet of key, or an unsaved empty one.
func (b Bucket) GetOrCreate(db vibe.ReadOnlyKVStore, key vibe.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	switch {
	case err != nil:
		return nil, err
	case obj == nil:
		return NewWallet(key), nil
	}
	return obj, nil
}

// Save writes the wallet, or deletes it once empty.
func (b Bucket) Save(db vibe.KVStore, obj orm.Object) error {
	if AsSet(obj).GetAmount() == 0 {
		return b.Bucket.Delete(db, obj.Key())
	}
	return b.Bucket.Save(db, obj)
}
