package escrow

import (
	"unicode/utf8"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/orm"
)

const (
	// BucketName is where escrows are stored
	BucketName = "escrow"

	// MaxBookingIDLength is the longest accepted booking identifier.
	MaxBookingIDLength = 32
	// MaxCodeLength is the longest accepted verification code.
	MaxCodeLength = 6
)

var _ orm.CloneableData = (*Escrow)(nil)

// Validate ensures the escrow is valid
func (e *Escrow) Validate() error {
	if err := e.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := e.Depositor.Validate(); err != nil {
		return errors.Wrap(err, "depositor")
	}
	if err := e.Counterparty.Validate(); err != nil {
		return errors.Wrap(err, "counterparty")
	}
	if err := validateBookingID(e.BookingID, MaxBookingIDLength); err != nil {
		return err
	}
	if err := validateCode(e.VerifyCode, MaxCodeLength); err != nil {
		return err
	}
	if err := e.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy makes a new escrow with the same values
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Metadata:     e.Metadata.Copy(),
		Depositor:    e.Depositor.Clone(),
		Counterparty: e.Counterparty.Clone(),
		BookingID:    e.BookingID,
		VerifyCode:   e.VerifyCode,
		Address:      e.Address.Clone(),
	}
}

func validateBookingID(id string, max int) error {
	if n := len(id); n == 0 || n > max {
		return errors.Wrapf(errors.ErrInput, "booking id must be 1 to %d bytes, got %d", max, n)
	}
	if !utf8.ValidString(id) {
		return errors.Wrap(errors.ErrInput, "booking id is not valid utf-8")
	}
	return nil
}

func validateCode(code string, max int) error {
	if n := len(code); n == 0 || n > max {
		return errors.Wrapf(errors.ErrInput, "verification code must be 1 to %d bytes, got %d", max, n)
	}
	if !utf8.ValidString(code) {
		return errors.Wrap(errors.ErrInput, "verification code is not valid utf-8")
	}
	return nil
}

// DeriveKey returns the storage key of the escrow for the booking and
// counterparty. The key is the length prefixed booking identifier followed
// by the counterparty address, so distinct valid inputs never share a key.
func DeriveKey(bookingID string, counterparty vibe.Address) ([]byte, error) {
	if err := validateBookingID(bookingID, MaxBookingIDLength); err != nil {
		return nil, err
	}
	if err := counterparty.Validate(); err != nil {
		return nil, errors.Wrap(err, "counterparty")
	}
	key := make([]byte, 0, 1+len(bookingID)+len(counterparty))
	key = append(key, uint8(len(bookingID)))
	key = append(key, bookingID...)
	key = append(key, counterparty...)
	return key, nil
}

// Condition calculates the custody condition of an escrow given the key.
// Only this extension can act on behalf of it.
func Condition(key []byte) vibe.Condition {
	return vibe.NewCondition("escrow", "booking", key)
}

// NewEscrow creates an escrow orm.Object stored under key
func NewEscrow(key []byte, depositor, counterparty vibe.Address, bookingID, code string) orm.Object {
	esc := &Escrow{
		Metadata:     &vibe.Metadata{Schema: 1},
		Depositor:    depositor,
		Counterparty: counterparty,
		BookingID:    bookingID,
		VerifyCode:   code,
		Address:      Condition(key).Address(),
	}
	return orm.NewSimpleObj(key, esc)
}

// AsEscrow extracts an *Escrow value or nil from the object
// Must be called on a Bucket result that is an *Escrow,
// will panic on bad type.
func AsEscrow(obj orm.Object) *Escrow {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Escrow)
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a Bucket with the depositor and counterparty
// indexes.
func NewBucket() Bucket {
	b := orm.NewBucket(BucketName, NewEscrow(nil, nil, nil, "", "")).
		WithIndex("depositor", idxDepositor, false).
		WithIndex("counterparty", idxCounterparty, false)
	return Bucket{Bucket: b}
}

// ByDepositor returns all pending escrows opened by the address.
func (b Bucket) ByDepositor(db vibe.ReadOnlyKVStore, depositor vibe.Address) ([]orm.Object, error) {
	return b.GetIndexed(db, "depositor", depositor)
}

// ByCounterparty returns all pending escrows the address can release.
func (b Bucket) ByCounterparty(db vibe.ReadOnlyKVStore, counterparty vibe.Address) ([]orm.Object, error) {
	return b.GetIndexed(db, "counterparty", counterparty)
}

func toEscrow(obj orm.Object) (*Escrow, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "Cannot take index of nil")
	}
	esc, ok := obj.Value().(*Escrow)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "Can only take index of Escrow")
	}
	return esc, nil
}

func idxDepositor(obj orm.Object) ([]byte, error) {
	esc, err := toEscrow(obj)
	if err != nil {
		return nil, err
	}
	return esc.Depositor, nil
}

func idxCounterparty(obj orm.Object) ([]byte, error) {
	esc, err := toEscrow(obj)
	if err != nil {
		return nil, err
	}
	return esc.Counterparty, nil
}
