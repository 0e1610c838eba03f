package escrow

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/orm"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/x/cash"
)

// RecordStore persists escrows together with their custody funds.
// CreateAndFund and TransferAndDestroy are atomic: on failure nothing
// is written.
type RecordStore interface {
	// DeriveKey returns the key of the escrow for the booking and
	// counterparty.
	DeriveKey(bookingID string, counterparty vibe.Address) ([]byte, error)
	// CreateAndFund stores the escrow under key and moves amount from
	// payer to its custody address.
	CreateAndFund(db vibe.KVStore, key []byte, esc *Escrow, amount uint64, payer vibe.Address) error
	// Read returns the escrow stored under key, or nil if there is none.
	Read(db vibe.ReadOnlyKVStore, key []byte) (*Escrow, error)
	// Locked returns the funds held in custody for the escrow stored
	// under key.
	Locked(db vibe.ReadOnlyKVStore, key []byte) (uint64, error)
	// TransferAndDestroy moves all custody funds of the escrow to
	// recipient, deletes the escrow and returns the moved amount.
	TransferAndDestroy(db vibe.KVStore, key []byte, recipient vibe.Address) (uint64, error)
}

// ledgerStore keeps escrows in a bucket and custody funds in the cash
// ledger, at the custody address of the escrow key.
type ledgerStore struct {
	bucket Bucket
	cash   cash.Controller
}

var _ RecordStore = (*ledgerStore)(nil)

// NewRecordStore returns a RecordStore keeping custody funds in the cash
// ledger managed by ctrl.
func NewRecordStore(bucket Bucket, ctrl cash.Controller) RecordStore {
	return &ledgerStore{bucket: bucket, cash: ctrl}
}

func (s *ledgerStore) DeriveKey(bookingID string, counterparty vibe.Address) ([]byte, error) {
	return DeriveKey(bookingID, counterparty)
}

func (s *ledgerStore) CreateAndFund(db vibe.KVStore, key []byte, esc *Escrow, amount uint64, payer vibe.Address) error {
	if amount == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero")
	}
	if !esc.Address.Equals(Condition(key).Address()) {
		return errors.Wrap(errors.ErrState, "custody address does not match the key")
	}

	cache := store.CacheWrap(db)
	defer cache.Discard()

	switch err := s.bucket.Create(cache, orm.NewSimpleObj(key, esc)); {
	case errors.ErrDuplicate.Is(err):
		return errors.Wrapf(ErrDuplicateEscrow, "booking %q", esc.BookingID)
	case err != nil:
		return errors.Wrap(err, "cannot store escrow")
	}

	switch err := s.cash.MoveCoins(cache, payer, esc.Address, amount); {
	case errors.ErrInsufficientAmount.Is(err), errors.ErrEmpty.Is(err):
		return errors.Wrap(ErrInsufficientFunds, err.Error())
	case err != nil:
		return errors.Wrap(err, "cannot deposit funds")
	}

	return cache.Write()
}

func (s *ledgerStore) Read(db vibe.ReadOnlyKVStore, key []byte) (*Escrow, error) {
	obj, err := s.bucket.Get(db, key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load escrow")
	}
	return AsEscrow(obj), nil
}

func (s *ledgerStore) Locked(db vibe.ReadOnlyKVStore, key []byte) (uint64, error) {
	return s.cash.Balance(db, Condition(key).Address())
}

func (s *ledgerStore) TransferAndDestroy(db vibe.KVStore, key []byte, recipient vibe.Address) (uint64, error) {
	cache := store.CacheWrap(db)
	defer cache.Discard()

	esc, err := s.Read(cache, key)
	if err != nil {
		return 0, err
	}
	if esc == nil {
		return 0, errors.Wrap(ErrEscrowNotFound, "no escrow under key")
	}

	amount, err := s.cash.Balance(cache, esc.Address)
	if err != nil {
		return 0, err
	}
	if amount > 0 {
		if err := s.cash.MoveCoins(cache, esc.Address, recipient, amount); err != nil {
			return 0, errors.Wrap(err, "cannot release funds")
		}
	}
	if err := s.bucket.Delete(cache, key); err != nil {
		return 0, errors.Wrap(err, "cannot delete escrow")
	}

	if err := cache.Write(); err != nil {
		return 0, err
	}
	return amount, nil
}
