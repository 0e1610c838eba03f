package sigs

import (
	"context"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/x"
)

type signersKey struct{}

// withSigners stays unexported: only a verified signature may grant a
// condition.
func withSigners(ctx vibe.Context, signers []vibe.Condition) vibe.Context {
	return context.WithValue(ctx, signersKey{}, signers)
}

// Authenticate reports the signers verified by Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions is nil outside of a Decorator.
func (Authenticate) GetConditions(ctx vibe.Context) []vibe.Condition {
	signers, _ := ctx.Value(signersKey{}).([]vibe.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx vibe.Context, addr vibe.Address) bool {
	for _, signer := range a.GetConditions(ctx) {
		if signer.Address().Equals(addr) {
			return true
		}
	}
	return false
}
