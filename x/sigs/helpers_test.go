package sigs

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/vibetest"
)

// StdTx is a signed transaction carrying a raw payload as sign bytes.
type StdTx struct {
	vibetest.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ vibe.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx:      vibetest.Tx{Msg: &vibetest.Msg{RoutePath: "test/sigs"}},
		Payload: payload,
	}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []vibe.Condition
}

var _ vibe.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx vibe.Context, store vibe.KVStore, tx vibe.Tx) (*vibe.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vibe.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx vibe.Context, store vibe.KVStore, tx vibe.Tx) (*vibe.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vibe.DeliverResult{}, nil
}
