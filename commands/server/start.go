package server

import (
	"flag"

	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/vibe-network/vibe/errors"
)

const (
	flagBind  = "bind"
	flagDebug = "debug"

	defaultBind = "tcp://localhost:26658"
)

// AppGenerator builds the application once the flags are parsed, so
// the home directory and the debug switch can reach it.
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

func parseStartFlags(args []string) (bind string, debug bool, err error) {
	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	fs.StringVar(&bind, flagBind, defaultBind, "address server listens on")
	fs.BoolVar(&debug, flagDebug, false, "call stack returned on error")
	err = fs.Parse(args)
	return bind, debug, err
}

// StartCmd serves the generated application over an ABCI socket and
// blocks until the process receives SIGINT or SIGTERM.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	bind, debug, err := parseStartFlags(args)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	app, err := gen(home, logger, debug)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", bind)
	srv, err := server.NewServer(bind, "socket", app)
	if err != nil {
		return errors.Wrap(err, "cannot create listener")
	}
	srv.SetLogger(logger.With("module", "abci-server"))
	if err := srv.Start(); err != nil {
		return errors.Wrap(err, "cannot start server")
	}

	// TrapSignal exits the process once the callback returns.
	cmn.TrapSignal(logger, func() {
		if err := srv.Stop(); err != nil {
			logger.Error("Stopping ABCI app", "err", err)
		}
	})
	select {}
}
