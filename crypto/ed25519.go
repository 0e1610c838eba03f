package crypto

import (
	"golang.org/x/crypto/ed25519"

	"github.com/vibe-network/vibe"
)

// Verify is false for a malformed key or signature, never an error.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	switch {
	case p == nil || len(p.Ed25519) != ed25519.PublicKeySize:
		return false
	case sig == nil || len(sig.Ed25519) != ed25519.SignatureSize:
		return false
	}
	return ed25519.Verify(p.Ed25519, message, sig.Ed25519)
}

// Condition is sigs/ed25519/<raw key>, or nil for an empty key.
func (p *PublicKey) Condition() vibe.Condition {
	if p == nil || len(p.Ed25519) == 0 {
		return nil
	}
	return vibe.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	return &Signature{Ed25519: ed25519.Sign(p.Ed25519, message)}, nil
}

func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 draws a fresh key from crypto/rand.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed derives a key from a 32 byte seed. Tests use
// it for reproducible accounts.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
