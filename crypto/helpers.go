package crypto

import (
	"github.com/vibe-network/vibe"
)

// ExtensionName is used for the Conditions we get from signatures
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() vibe.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

var _ PubKey = (*PublicKey)(nil)
var _ Signer = (*PrivateKey)(nil)

// Address is the address of the condition fulfilled by signatures
// of this key. Returns nil for an empty key.
func (p *PublicKey) Address() vibe.Address {
	c := p.Condition()
	if c == nil {
		return nil
	}
	return c.Address()
}
