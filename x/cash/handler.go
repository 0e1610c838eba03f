package cash

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/x"
)

// RegisterRoutes adds the "cash/send" route to r.
func RegisterRoutes(r vibe.Registry, auth x.Authenticator, control Controller) {
	r.Handle(pathSendMsg, NewSendHandler(auth, control))
}

// RegisterQuery exposes the wallets under "/wallets".
func RegisterQuery(qr vibe.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler moves funds between two wallets. Only the owner of the
// source wallet may send.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ vibe.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{auth: auth, control: control}
}

// Check does not look at balances. An underfunded send is only caught
// on delivery.
func (h SendHandler) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.CheckResult, error) {
	if _, err := h.authorizedMsg(ctx, tx); err != nil {
		return nil, err
	}
	return &vibe.CheckResult{}, nil
}

func (h SendHandler) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.DeliverResult, error) {
	msg, err := h.authorizedMsg(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.MoveCoins(db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &vibe.DeliverResult{}, nil
}

func (h SendHandler) authorizedMsg(ctx vibe.Context, tx vibe.Tx) (*SendMsg, error) {
	msg := new(SendMsg)
	if err := vibe.LoadMsg(tx, msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return msg, nil
}
