package sigs

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/crypto"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// maxSequenceValue is Number.MAX_SAFE_INTEGER, the largest nonce a
// javascript wallet can still count to.
const maxSequenceValue = (1 << 53) - 1

var _ orm.CloneableData = (*UserData)(nil)

// Validate requires a public key once the account has signed anything.
func (u *UserData) Validate() error {
	if err := u.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	switch {
	case u.Sequence < 0:
		return errors.Wrap(ErrInvalidSequence, "negative")
	case u.Sequence > 0 && u.Pubkey == nil:
		return errors.Wrap(ErrInvalidSequence, "needs pubkey")
	}
	return nil
}

func (u *UserData) Copy() orm.CloneableData {
	dup := *u
	dup.Metadata = u.Metadata.Copy()
	return &dup
}

// CheckAndIncrementSequence advances the sequence when seq is the one
// expected next. Any other value leaves the account untouched.
func (u *UserData) CheckAndIncrementSequence(seq int64) error {
	if seq != u.Sequence {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", seq, u.Sequence)
	}
	if u.Sequence >= maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence++
	return nil
}

// SetPubkey binds the account to its key. An account key never changes
// once set, so a second call panics.
func (u *UserData) SetPubkey(pubkey *crypto.PublicKey) {
	if u.Pubkey != nil {
		panic("Cannot change pubkey for a user")
	}
	u.Pubkey = pubkey
}

// AsUser unwraps the account data of obj, or nil when obj is empty.
func AsUser(obj orm.Object) *UserData {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*UserData)
}

// NewUser is a fresh account at sequence zero, keyed by the address of
// pubkey.
func NewUser(pubkey *crypto.PublicKey) orm.Object {
	user := &UserData{Metadata: &vibe.Metadata{Schema: 1}}
	if pubkey == nil {
		return orm.NewSimpleObj(nil, user)
	}
	user.Pubkey = pubkey
	return orm.NewSimpleObj(pubkey.Address(), user)
}

// Bucket holds one account per signer address.
type Bucket struct {
	orm.Bucket
}

func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName, NewUser(nil))}
}

// GetOrCreate loads the account of pubkey, returning an unsaved fresh
// account if the key never signed before.
func (b Bucket) GetOrCreate(db vibe.KVStore, pubkey *crypto.PublicKey) (orm.Object, error) {
	obj, err := b.Get(db, pubkey.Address())
	switch {
	case err != nil:
		return nil, err
	case obj == nil:
		return NewUser(pubkey), nil
	}
	return obj, nil
}

// NextNonce is the sequence the next signature of signer must carry.
// Clients pass the address of their key:
//
//	seq, err := sigs.NextNonce(db, signer.PublicKey().Address())
func NextNonce(db vibe.ReadOnlyKVStore, signer vibe.Address) (int64, error) {
	obj, err := NewBucket().Get(db, signer)
	if err != nil {
		return 0, errors.Wrap(err, "bucket get")
	}
	if user := AsUser(obj); user != nil {
		return user.Sequence, nil
	}
	return 0, nil
}

// RegisterQuery exposes the accounts under "/auth".
func RegisterQuery(qr vibe.QueryRouter) {
	NewBucket().Register("auth", qr)
}
