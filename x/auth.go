package x

import "github.com/vibe-network/vibe"

// Authenticator tells a handler who signed the transaction in ctx.
// Handlers take it as a dependency instead of reading x/sigs directly,
// so tests can swap in a fixed set of signers.
type Authenticator interface {
	// GetConditions lists every satisfied condition, main signer first.
	GetConditions(vibe.Context) []vibe.Condition
	HasAddress(vibe.Context, vibe.Address) bool
}

// ChainAuth merges several authenticators. A condition satisfied by any
// of them counts.
func ChainAuth(auths ...Authenticator) Authenticator {
	return multiAuth(auths)
}

type multiAuth []Authenticator

func (m multiAuth) GetConditions(ctx vibe.Context) []vibe.Condition {
	var all []vibe.Condition
	for _, a := range m {
		all = append(all, a.GetConditions(ctx)...)
	}
	return all
}

func (m multiAuth) HasAddress(ctx vibe.Context, addr vibe.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner is the first satisfied condition, or nil.
func MainSigner(ctx vibe.Context, auth Authenticator) vibe.Condition {
	if conds := auth.GetConditions(ctx); len(conds) != 0 {
		return conds[0]
	}
	return nil
}

// AnySigner is the address of the main signer, or nil when nobody
// signed. Escrow messages default their depositor or releaser to it.
func AnySigner(ctx vibe.Context, auth Authenticator) vibe.Address {
	if signer := MainSigner(ctx, auth); signer != nil {
		return signer.Address()
	}
	return nil
}
