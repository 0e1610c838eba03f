package utils

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/vibe-network/vibe"
)

// Logging writes one line per transaction to the context logger: the
// message path, how long the stack took in microseconds, and the
// result log or error.
//
// Failures go out at error level. A successful DeliverTx is logged at
// info, a successful CheckTx only at debug.
type Logging struct{}

var _ vibe.Decorator = Logging{}

func NewLogging() Logging { return Logging{} }

func (Logging) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Checker) (*vibe.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logResult(ctx, tx, start, msg, err, log.Logger.Debug)
	return res, err
}

func (Logging) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Deliverer) (*vibe.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var msg string
	if err == nil {
		msg = res.Log
	}
	logResult(ctx, tx, start, msg, err, log.Logger.Info)
	return res, err
}

// logResult emits an entry even for an empty msg, as the path and the
// duration are still worth recording.
func logResult(ctx vibe.Context, tx vibe.Tx, start time.Time, msg string, err error, success func(log.Logger, string, ...interface{})) {
	logger := vibe.GetLogger(ctx).With(
		"path", vibe.GetPath(tx),
		"duration", time.Since(start)/time.Microsecond,
	)
	if err != nil {
		logger.Error(msg, "err", err)
		return
	}
	success(logger, msg)
}
