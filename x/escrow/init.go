package escrow

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/gconf"
	"github.com/vibe-network/vibe/x/cash"
)

const optKey = "escrow"

// GenesisEscrow is a pending escrow loaded from the genesis file.
type GenesisEscrow struct {
	Depositor    vibe.Address `json:"depositor"`
	Counterparty vibe.Address `json:"counterparty"`
	BookingID    string       `json:"booking_id"`
	VerifyCode   string       `json:"verify_code"`
	Amount       uint64       `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ vibe.Initializer = Initializer{}

// FromGenesis stores the escrow configuration, if given, and all pending
// escrows, crediting each custody address with the escrow amount.
// Escrows must respect the configured length limits.
func (Initializer) FromGenesis(opts vibe.Options, db vibe.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(db, opts, confPkg, &conf); {
	case errors.ErrNotFound.Is(err):
		conf = DefaultConfiguration()
	case err != nil:
		return err
	}

	var escrows []GenesisEscrow
	if err := opts.ReadOptions(optKey, &escrows); err != nil {
		return err
	}

	bucket := NewBucket()
	ctrl := cash.NewController(cash.NewBucket())
	for i, e := range escrows {
		if e.Amount == 0 {
			return errors.Wrapf(ErrInvalidAmount, "escrow %d", i)
		}
		if err := validateBookingID(e.BookingID, int(conf.MaxBookingIDLength)); err != nil {
			return errors.Wrapf(err, "escrow %d", i)
		}
		if err := validateCode(e.VerifyCode, int(conf.MaxCodeLength)); err != nil {
			return errors.Wrapf(err, "escrow %d", i)
		}
		key, err := DeriveKey(e.BookingID, e.Counterparty)
		if err != nil {
			return errors.Wrapf(err, "escrow %d", i)
		}
		obj := NewEscrow(key, e.Depositor, e.Counterparty, e.BookingID, e.VerifyCode)
		switch err := bucket.Create(db, obj); {
		case errors.ErrDuplicate.Is(err):
			return errors.Wrapf(ErrDuplicateEscrow, "escrow %d", i)
		case err != nil:
			return errors.Wrapf(err, "escrow %d", i)
		}
		if err := ctrl.IssueCoins(db, AsEscrow(obj).Address, e.Amount); err != nil {
			return errors.Wrapf(err, "escrow %d", i)
		}
	}
	return nil
}
