package escrow

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

const (
	pathOpenMsg    = "escrow/open"
	pathReleaseMsg = "escrow/release"
)

var _ vibe.Msg = (*OpenMsg)(nil)
var _ vibe.Msg = (*ReleaseMsg)(nil)

// Path returns the routing path for this message
func (OpenMsg) Path() string {
	return pathOpenMsg
}

// Validate makes sure that this is sensible
func (m *OpenMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Amount == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero value escrow")
	}
	if err := validateBookingID(m.BookingID, MaxBookingIDLength); err != nil {
		return err
	}
	if err := validateCode(m.VerifyCode, MaxCodeLength); err != nil {
		return err
	}
	if err := m.Counterparty.Validate(); err != nil {
		return errors.Wrap(err, "counterparty")
	}
	if m.Depositor != nil {
		if err := m.Depositor.Validate(); err != nil {
			return errors.Wrap(err, "depositor")
		}
	}
	return nil
}

// Path returns the routing path for this message
func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

// Validate makes sure that this is sensible
func (m *ReleaseMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateBookingID(m.BookingID, MaxBookingIDLength); err != nil {
		return err
	}
	if err := validateCode(m.VerifyCode, MaxCodeLength); err != nil {
		return err
	}
	if m.Releaser != nil {
		if err := m.Releaser.Validate(); err != nil {
			return errors.Wrap(err, "releaser")
		}
	}
	return nil
}
