package vibetest

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/crypto"
)

// NewKey returns a random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a freshly generated key.
func NewCondition() vibe.Condition {
	return NewKey().PublicKey().Condition()
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation. The test fails if it cannot be parsed.
func ParseAddress(t Tester, encodedAddress string) vibe.Address {
	t.Helper()

	addr, err := vibe.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// Tester is the minimal subset of testing.TB used by helpers
type Tester interface {
	Helper()
	Fatalf(string, ...interface{})
}
