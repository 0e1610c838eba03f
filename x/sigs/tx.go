package sigs

import (
	"github.com/vibe-network/vibe/errors"
)

// SignedTx is a transaction the Decorator can authenticate.
type SignedTx interface {
	// GetSignBytes is the payload every signature commits to. It must
	// not include the signatures themselves.
	GetSignBytes() ([]byte, error)
	GetSignatures() []*StdSignature
}

// Validate checks that the signature is complete. It does not verify it.
func (s *StdSignature) Validate() error {
	switch {
	case s.GetSequence() < 0:
		return errors.Wrap(ErrInvalidSequence, "negative")
	case s.Pubkey == nil || len(s.Pubkey.Ed25519) == 0:
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	case s.Signature == nil || len(s.Signature.Ed25519) == 0:
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
