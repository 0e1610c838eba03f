package app

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// ChainInitializers runs each initializer in order over the same
// genesis, stopping at the first error.
func ChainInitializers(inits ...vibe.Initializer) vibe.Initializer {
	return initializers(inits)
}

type initializers []vibe.Initializer

func (all initializers) FromGenesis(opts vibe.Options, db vibe.KVStore) error {
	for _, init := range all {
		if err := init.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}

// chainIDKey lives under the "_vb:" prefix reserved for the application.
var chainIDKey = []byte("_vb:chainID")

// loadChainID returns the stored chain id, or "" before genesis.
func loadChainID(db vibe.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID stores the chain id. It can be written only once.
func saveChainID(db vibe.KVStore, chainID string) error {
	if !vibe.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	switch exists, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	if err := db.Set(chainIDKey, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
