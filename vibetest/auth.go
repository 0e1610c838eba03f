package vibetest

import (
	"context"
	"fmt"

	"github.com/vibe-network/vibe"
)

// Auth is a fixed x.Authenticator: Signer and every entry of Signers
// count as having signed, whatever the context.
type Auth struct {
	Signer  vibe.Condition
	Signers []vibe.Condition
}

func (a *Auth) GetConditions(vibe.Context) []vibe.Condition {
	var conds []vibe.Condition
	conds = append(conds, a.Signers...)
	if a.Signer != nil {
		conds = append(conds, a.Signer)
	}
	return conds
}

func (a *Auth) HasAddress(ctx vibe.Context, addr vibe.Address) bool {
	return signedBy(a.GetConditions(ctx), addr)
}

// CtxAuth is an x.Authenticator reading its signers from the context
// value stored under Key, so one test can switch signers per call.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context in which conds have signed.
func (a *CtxAuth) SetConditions(ctx vibe.Context, conds ...vibe.Condition) vibe.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx vibe.Context) []vibe.Condition {
	switch v := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []vibe.Condition:
		return v
	default:
		panic(fmt.Sprintf("context key %q holds %T, not signers", a.Key, v))
	}
}

func (a *CtxAuth) HasAddress(ctx vibe.Context, addr vibe.Address) bool {
	return signedBy(a.GetConditions(ctx), addr)
}

func signedBy(conds []vibe.Condition, addr vibe.Address) bool {
	for _, c := range conds {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
