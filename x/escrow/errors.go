package escrow

import "github.com/vibe-network/vibe/errors"

var (
	// ErrInvalidAmount is returned when an escrow would lock nothing.
	ErrInvalidAmount = errors.Register(1010, "invalid escrow amount")
	// ErrInsufficientFunds is returned when the depositor cannot cover
	// the amount.
	ErrInsufficientFunds = errors.Register(1011, "insufficient funds")
	// ErrDuplicateEscrow is returned when an escrow already exists for
	// the booking and counterparty.
	ErrDuplicateEscrow = errors.Register(1012, "duplicate escrow")
	// ErrEscrowNotFound is returned when no escrow exists for the booking
	// and counterparty.
	ErrEscrowNotFound = errors.Register(1013, "escrow not found")
	// ErrInvalidSigner is returned when the caller did not authorize the
	// operation.
	ErrInvalidSigner = errors.Register(1014, "invalid signer")
	// ErrInvalidVerificationCode is returned when the presented code
	// does not match the stored one.
	ErrInvalidVerificationCode = errors.Register(1015, "invalid verification code")
)
