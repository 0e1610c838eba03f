package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// StoreApp is the storage half of the application: genesis loading,
// queries, block bookkeeping and commits. BaseApp adds transactions on
// top.
//
// Info, InitChain and Commit take no user input, so their failures are
// panics; tendermint offers no other way to report them.
type StoreApp struct {
	name        string
	logger      log.Logger
	store       *CommitStore
	initializer vibe.Initializer
	queryRouter vibe.QueryRouter

	// chainID is read from the store on start and written once by
	// InitChain.
	chainID string

	// baseContext holds what is fixed for the life of the process: the
	// logger and, once known, the chain id. blockContext adds the height
	// of the current block to it.
	baseContext  vibe.Context
	blockContext vibe.Context
}

// NewStoreApp opens the latest state of db.
func NewStoreApp(name string, db vibe.CommitKVStore, queries vibe.QueryRouter, ctx vibe.Context) (*StoreApp, error) {
	cs, err := NewCommitStore(db)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	info, err := cs.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(err, "cannot read commit info")
	}

	s := &StoreApp{
		name:        name,
		store:       cs,
		queryRouter: queries,
		chainID:     chainID,
		baseContext: ctx,
	}
	if chainID != "" {
		s.baseContext = vibe.WithChainID(s.baseContext, chainID)
	}
	s.WithLogger(log.NewNopLogger())
	s.blockContext = vibe.WithHeight(s.baseContext, info.Version)
	return s, nil
}

func (s *StoreApp) GetChainID() string { return s.chainID }

// WithInit sets the genesis initializer used by InitChain.
func (s *StoreApp) WithInit(init vibe.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger replaces the logger, in the contexts too.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.baseContext = vibe.WithLogger(s.baseContext, logger)
	s.resetBlockContext()
	return s
}

func (s *StoreApp) Logger() log.Logger { return s.logger }

// BlockContext is the context handlers run with.
func (s *StoreApp) BlockContext() vibe.Context { return s.blockContext }

func (s *StoreApp) DeliverStore() vibe.CacheableKVStore { return s.store.DeliverStore() }

func (s *StoreApp) CheckStore() vibe.CacheableKVStore { return s.store.CheckStore() }

// resetBlockContext rebuilds the block context on top of the current base
// context, keeping the block height.
func (s *StoreApp) resetBlockContext() {
	if s.blockContext == nil {
		return
	}
	height, _ := vibe.GetHeight(s.blockContext)
	s.blockContext = vibe.WithHeight(s.baseContext, height)
}

// setChainID persists the chain id and exposes it to handlers right
// away, so transactions checked before the first block can verify
// signatures.
func (s *StoreApp) setChainID(chainID string) error {
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = vibe.WithChainID(s.baseContext, chainID)
	s.resetBlockContext()
	return nil
}

// loadGenesis runs the initializer over app_state. It is called only
// when the chain starts, never on a restart.
func (s *StoreApp) loadGenesis(appState []byte, chainID string) error {
	switch {
	case s.chainID != "":
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", s.chainID)
	case len(appState) == 0:
		return errors.Wrap(errors.ErrState, "app_state missing from genesis.json, run init first")
	case s.initializer == nil:
		return errors.Wrap(errors.ErrState, "no initializer")
	}
	var opts vibe.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := s.setChainID(chainID); err != nil {
		return err
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// Info reports the last committed height and app hash, with the
// application name and version.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          vibe.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// InitChain loads the genesis app_state.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.loadGenesis(req.AppStateBytes, req.ChainId); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	s.blockContext = vibe.WithHeight(s.baseContext, req.Header.GetHeight())
	return abci.ResponseBeginBlock{}
}

func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

// Query reads the committed state. Path names a bucket or one of its
// indexes, "/escrows" or "/escrows/counterparty" for example, and may
// end in "?<mod>". Data is the key to look up.
//
// Key and Value of the response are ResultSets of equal length, one
// entry per matching record.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := splitPath(req.Path)
	h := s.queryRouter.Handler(path)
	if h == nil {
		return queryFailure(errors.Wrapf(errors.ErrNotFound, "unexpected query path: %v", req.Path))
	}
	info, err := s.store.CommitInfo()
	if err != nil {
		return queryFailure(err)
	}
	models, err := h.Query(s.store.Committed(), mod, req.Data)
	if err != nil {
		return queryFailure(err)
	}

	keys, err := proto.Marshal(ResultsFromKeys(models))
	if err != nil {
		return queryFailure(errors.Wrap(errors.ErrModel, err.Error()))
	}
	values, err := proto.Marshal(ResultsFromValues(models))
	if err != nil {
		return queryFailure(errors.Wrap(errors.ErrModel, err.Error()))
	}
	return abci.ResponseQuery{Height: info.Version, Key: keys, Value: values}
}

// splitPath separates the query modifier following "?".
func splitPath(full string) (path, mod string) {
	if i := strings.IndexByte(full, '?'); i >= 0 {
		return full[:i], full[i+1:]
	}
	return full, ""
}
