package app

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// BaseApp is a StoreApp that also runs transactions: it decodes them
// and passes them through the handler stack against the check or the
// deliver layer.
type BaseApp struct {
	*StoreApp
	decoder vibe.TxDecoder
	handler vibe.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp builds the application. With debug set, error responses
// carry full stack traces.
func NewBaseApp(store *StoreApp, decoder vibe.TxDecoder, handler vibe.Handler, debug bool) BaseApp {
	return BaseApp{StoreApp: store, decoder: decoder, handler: handler, debug: debug}
}

// CheckTx validates a transaction for the mempool.
func (b BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	ctx, tx, err := b.prepare("check_tx", raw)
	if err != nil {
		return checkResponse(nil, err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return checkResponse(res, err, b.debug)
}

// DeliverTx applies a transaction to the current block.
func (b BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	ctx, tx, err := b.prepare("deliver_tx", raw)
	if err != nil {
		return deliverResponse(nil, err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return deliverResponse(res, err, b.debug)
}

// prepare decodes raw and returns the block context tagged with the
// call and the message path. A panicking decoder is reported as
// ErrPanic.
func (b BaseApp) prepare(call string, raw []byte) (vibe.Context, vibe.Tx, error) {
	tx, err := b.decode(raw)
	if err != nil {
		return nil, nil, err
	}
	ctx := vibe.WithLogInfo(b.BlockContext(), "call", call, "path", vibe.GetPath(tx))
	return ctx, tx, nil
}

func (b BaseApp) decode(raw []byte) (tx vibe.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(raw)
}
