package vibe

import (
	"encoding/json"

	"github.com/vibe-network/vibe/errors"
)

// Options is the app_state section of the genesis file, keyed by
// extension name ("cash", "escrow", "conf").
type Options map[string]json.RawMessage

// ReadOptions decodes the section stored under key into obj. A missing
// or empty section leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %q: %s", key, err)
	}
	return nil
}

// Initializer loads one extension's state from the genesis file.
type Initializer interface {
	FromGenesis(opts Options, db KVStore) error
}
