package escrow

import (
	"crypto/subtle"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/x"
)

// OpenParams describes a new escrow.
type OpenParams struct {
	BookingID    string
	VerifyCode   string
	Amount       uint64
	Depositor    vibe.Address
	Counterparty vibe.Address
}

// ReleaseParams identifies the escrow to release and proves the right to
// release it.
type ReleaseParams struct {
	BookingID  string
	VerifyCode string
	Releaser   vibe.Address
}

// Engine implements the escrow lifecycle. It holds no state of its own,
// every call reads and writes only the given store.
type Engine struct {
	auth    x.Authenticator
	records RecordStore
}

// NewEngine returns an engine authorizing callers with auth and keeping
// escrows in records.
func NewEngine(auth x.Authenticator, records RecordStore) Engine {
	return Engine{auth: auth, records: records}
}

// Open creates a pending escrow and locks the amount taken from the
// depositor. It returns the escrow key.
func (e Engine) Open(ctx vibe.Context, db vibe.KVStore, p OpenParams) ([]byte, error) {
	conf, err := loadConfiguration(db)
	if err != nil {
		return nil, err
	}
	if err := validateBookingID(p.BookingID, int(conf.MaxBookingIDLength)); err != nil {
		return nil, err
	}
	if err := validateCode(p.VerifyCode, int(conf.MaxCodeLength)); err != nil {
		return nil, err
	}
	if p.Amount == 0 {
		return nil, errors.Wrap(ErrInvalidAmount, "zero value escrow")
	}
	if err := p.Depositor.Validate(); err != nil {
		return nil, errors.Wrap(err, "depositor")
	}
	if !e.auth.HasAddress(ctx, p.Depositor) {
		return nil, errors.Wrap(ErrInvalidSigner, "depositor signature missing")
	}
	key, err := e.records.DeriveKey(p.BookingID, p.Counterparty)
	if err != nil {
		return nil, err
	}

	esc := NewEscrow(key, p.Depositor, p.Counterparty, p.BookingID, p.VerifyCode)
	cache := store.CacheWrap(db)
	defer cache.Discard()
	if err := e.records.CreateAndFund(cache, key, AsEscrow(esc), p.Amount, p.Depositor); err != nil {
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, err
	}

	vibe.GetLogger(ctx).Info("escrow opened",
		"booking", p.BookingID,
		"key", key,
		"amount", p.Amount)
	return key, nil
}

// Release moves all locked funds to the releaser and destroys the escrow.
// Only the counterparty presenting the verification code can release.
// It returns the escrow key and the released amount.
func (e Engine) Release(ctx vibe.Context, db vibe.KVStore, p ReleaseParams) ([]byte, uint64, error) {
	if len(p.Releaser) == 0 {
		return nil, 0, errors.Wrap(ErrInvalidSigner, "missing releaser")
	}
	key, err := e.records.DeriveKey(p.BookingID, p.Releaser)
	if err != nil {
		return nil, 0, err
	}

	cache := store.CacheWrap(db)
	defer cache.Discard()

	esc, err := e.records.Read(cache, key)
	if err != nil {
		return nil, 0, err
	}
	if esc == nil {
		return nil, 0, errors.Wrapf(ErrEscrowNotFound, "booking %q", p.BookingID)
	}
	if !esc.Counterparty.Equals(p.Releaser) || !e.auth.HasAddress(ctx, p.Releaser) {
		return nil, 0, errors.Wrap(ErrInvalidSigner, "counterparty signature missing")
	}
	if !codesMatch(esc.VerifyCode, p.VerifyCode) {
		return nil, 0, errors.Wrapf(ErrInvalidVerificationCode, "booking %q", p.BookingID)
	}

	amount, err := e.records.TransferAndDestroy(cache, key, p.Releaser)
	if err != nil {
		return nil, 0, err
	}
	if err := cache.Write(); err != nil {
		return nil, 0, err
	}

	vibe.GetLogger(ctx).Info("escrow released",
		"booking", p.BookingID,
		"key", key,
		"amount", amount)
	return key, amount, nil
}

// Lookup returns the pending escrow for the booking and counterparty
// together with the funds it holds.
func (e Engine) Lookup(db vibe.ReadOnlyKVStore, bookingID string, counterparty vibe.Address) (*Escrow, uint64, error) {
	key, err := e.records.DeriveKey(bookingID, counterparty)
	if err != nil {
		return nil, 0, err
	}
	esc, err := e.records.Read(db, key)
	if err != nil {
		return nil, 0, err
	}
	if esc == nil {
		return nil, 0, errors.Wrapf(ErrEscrowNotFound, "booking %q", bookingID)
	}
	locked, err := e.records.Locked(db, key)
	if err != nil {
		return nil, 0, err
	}
	return esc, locked, nil
}

// codesMatch compares verification codes byte for byte in constant time.
func codesMatch(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
