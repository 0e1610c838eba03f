/*
Package app assembles the vibed node: the transaction format, the
decorator chain in front of the cash and escrow handlers, the query
paths and the genesis loaders.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/app"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store/iavl"
	"github.com/vibe-network/vibe/x/cash"
	"github.com/vibe-network/vibe/x/escrow"
	"github.com/vibe-network/vibe/x/sigs"
	"github.com/vibe-network/vibe/x/utils"
)

const appName = "vibe"

// GenerateApp builds the node application. State lives in
// <home>/vibe.db, or only in memory for an empty home.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "vibe.db")
	}
	db, err := openStore(dbPath)
	if err != nil {
		return nil, err
	}
	state, err := app.NewStoreApp(appName, db, queryRouter(), context.Background())
	if err != nil {
		return nil, err
	}
	state.WithInit(Initializers()).WithLogger(logger)
	return app.NewBaseApp(state, TxDecoder, stack(), debug), nil
}

// Initializers loads the wallets, the escrow configuration and the
// pending escrows from genesis.
func Initializers() vibe.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		escrow.Initializer{},
	)
}

// stack puts every tx through, in order: logging, panic recovery, key
// tags, then signature checks. The CheckTx savepoint sits above the
// signatures so a rejected tx costs no nonce. The DeliverTx savepoint
// sits below them, so a tx that fails still consumes its nonce.
func stack() vibe.Handler {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(router())
}

func router() *app.Router {
	auth := sigs.Authenticate{}
	wallets := cash.NewController(cash.NewBucket())

	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, wallets)
	escrow.RegisterRoutes(r, auth, wallets)
	return r
}

// queryRouter serves /wallets, /auth and the /escrows paths.
func queryRouter() vibe.QueryRouter {
	qr := vibe.NewQueryRouter()
	qr.RegisterAll(cash.RegisterQuery, sigs.RegisterQuery, escrow.RegisterQuery)
	return qr
}

// openStore opens the iavl tree at dbPath. The backend adds its own
// ".db" suffix, so one given by the caller is dropped.
func openStore(dbPath string) (vibe.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	path = strings.TrimSuffix(path, filepath.Ext(path))
	db, err := iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return db, nil
}
