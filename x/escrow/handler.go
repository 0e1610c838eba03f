package escrow

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/x"
	"github.com/vibe-network/vibe/x/cash"
)

var tagEscrow = []byte("escrow")

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r vibe.Registry, auth x.Authenticator, ctrl cash.Controller) {
	engine := NewEngine(auth, NewRecordStore(NewBucket(), ctrl))
	r.Handle(pathOpenMsg, OpenHandler{auth: auth, engine: engine})
	r.Handle(pathReleaseMsg, ReleaseHandler{auth: auth, engine: engine})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr vibe.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// OpenHandler locks funds of the depositor for a booking.
type OpenHandler struct {
	auth   x.Authenticator
	engine Engine
}

var _ vibe.Handler = OpenHandler{}

// Check verifies the message is well formed and signed by the depositor.
// Funds are only checked on delivery.
func (h OpenHandler) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &vibe.CheckResult{}, nil
}

// Deliver opens the escrow and returns its key as data.
func (h OpenHandler) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	key, err := h.engine.Open(ctx, db, OpenParams{
		BookingID:    msg.BookingID,
		VerifyCode:   msg.VerifyCode,
		Amount:       msg.Amount,
		Depositor:    msg.Depositor,
		Counterparty: msg.Counterparty,
	})
	if err != nil {
		return nil, err
	}
	return &vibe.DeliverResult{
		Data: key,
		Log:  fmt.Sprintf("escrow opened: %d locked", msg.Amount),
		Tags: escrowTags(key),
	}, nil
}

// validate loads the message and applies the main signer as the default
// depositor.
func (h OpenHandler) validate(ctx vibe.Context, tx vibe.Tx) (*OpenMsg, error) {
	var msg OpenMsg
	if err := vibe.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if msg.Depositor == nil {
		msg.Depositor = x.AnySigner(ctx, h.auth)
	}
	if msg.Depositor == nil || !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(ErrInvalidSigner, "depositor signature missing")
	}
	return &msg, nil
}

// ReleaseHandler moves the locked funds to the counterparty.
type ReleaseHandler struct {
	auth   x.Authenticator
	engine Engine
}

var _ vibe.Handler = ReleaseHandler{}

// Check verifies the message is well formed. The escrow itself is only
// inspected on delivery.
func (h ReleaseHandler) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &vibe.CheckResult{}, nil
}

// Deliver releases the escrow and returns its key as data.
func (h ReleaseHandler) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	key, amount, err := h.engine.Release(ctx, db, ReleaseParams{
		BookingID:  msg.BookingID,
		VerifyCode: msg.VerifyCode,
		Releaser:   msg.Releaser,
	})
	if err != nil {
		return nil, err
	}
	return &vibe.DeliverResult{
		Data: key,
		Log:  fmt.Sprintf("escrow released: %d paid", amount),
		Tags: escrowTags(key),
	}, nil
}

// validate loads the message and applies the main signer as the default
// releaser.
func (h ReleaseHandler) validate(ctx vibe.Context, tx vibe.Tx) (*ReleaseMsg, error) {
	var msg ReleaseMsg
	if err := vibe.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if msg.Releaser == nil {
		msg.Releaser = x.AnySigner(ctx, h.auth)
	}
	if msg.Releaser == nil {
		return nil, errors.Wrap(ErrInvalidSigner, "missing releaser")
	}
	return &msg, nil
}

func escrowTags(key []byte) []common.KVPair {
	return []common.KVPair{
		{Key: tagEscrow, Value: []byte(fmt.Sprintf("%X", key))},
	}
}
