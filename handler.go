package vibe

import "github.com/tendermint/tendermint/libs/common"

// Handler runs one family of messages, such as opening a booking
// escrow or moving coins, in both the check and the deliver phase.
type Handler interface {
	Checker
	Deliverer
}

// Checker validates a transaction against the mempool state.
type Checker interface {
	Check(ctx Context, db KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer applies a transaction to the block state.
type Deliverer interface {
	Deliver(ctx Context, db KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around the next step of the chain: signature checks,
// savepoints, panic recovery and the like.
type Decorator interface {
	Check(ctx Context, db KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, db KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds message paths to handlers.
type Registry interface {
	Handle(path string, h Handler)
}

// CheckResult is what a successful check reports back to the node.
type CheckResult struct {
	// Data is machine readable, for example the key of a new escrow.
	Data []byte
	Log  string
}

// DeliverResult is what a successful delivery reports back to the node.
type DeliverResult struct {
	// Data is machine readable, for example the key of a new escrow.
	Data []byte
	Log  string
	// Tags index the transaction in the node's tx search.
	Tags []common.KVPair
}
