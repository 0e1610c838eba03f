package app

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// errorInfo is the response code and log for a failed call. The log
// names the phase, e.g. "cannot check tx: unauthorized". Outside debug
// mode a recovered panic is reported as a plain internal error.
func errorInfo(phase string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(errors.Redact(err, debug), debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, "cannot " + phase + " tx: " + log
}

func checkResponse(res *vibe.CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		code, log := errorInfo("check", err, debug)
		return abci.ResponseCheckTx{Code: code, Log: log}
	}
	return abci.ResponseCheckTx{Data: res.Data, Log: res.Log}
}

func deliverResponse(res *vibe.DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		code, log := errorInfo("deliver", err, debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	return abci.ResponseDeliverTx{Data: res.Data, Log: res.Log, Tags: res.Tags}
}

func queryFailure(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}
