package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
)

const (
	appStateKey = "app_state"
	flagForce   = "f"
)

// GenOptions builds the application app_state from the init command
// arguments.
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisDoc is a genesis file with every section left undecoded.
// Only app_state is ever touched, the tendermint sections are copied
// through as they are.
type GenesisDoc map[string]json.RawMessage

func loadGenesisFile(path string) (GenesisDoc, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrNotFound, err.Error())
	}
	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrInput, "cannot JSON deserialize genesis")
	}
	return doc, nil
}

// InitCmd writes the app_state built by gen into the genesis file that
// `tendermint init` left in home. An existing app_state is kept unless
// -f is given. Arguments after the flags go to gen.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool(flagForce, false, "overwrite an existing app_state")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	path := filepath.Join(home, "config", "genesis.json")
	state, err := gen(fs.Args())
	if err != nil {
		return err
	}
	doc, err := loadGenesisFile(path)
	if err != nil {
		return err
	}
	if !*force && !isEmptyState(doc[appStateKey]) {
		return errors.Wrap(errors.ErrDuplicate, "app_state already set")
	}
	doc[appStateKey] = state

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(path, out, 0600); err != nil {
		return err
	}
	logger.Info("App state written", "path", path)
	return nil
}

func isEmptyState(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "{}", `""`:
		return true
	}
	return false
}

// ValidateGenesis dry runs ini over the app_state of each file. State
// goes to a throwaway in-memory store.
func ValidateGenesis(ini vibe.Initializer, paths []string) error {
	if len(paths) == 0 {
		return errors.Wrap(errors.ErrInput, "usage: cmd validate <genesis.json>...")
	}
	for _, path := range paths {
		doc, err := loadGenesisFile(path)
		if err != nil {
			return errors.Wrap(err, path)
		}
		var state vibe.Options
		if raw := doc[appStateKey]; len(raw) != 0 {
			if err := json.Unmarshal(raw, &state); err != nil {
				return errors.Wrapf(errors.ErrInput, "%s: app_state: %s", path, err)
			}
		}
		if err := ini.FromGenesis(state, store.MemStore()); err != nil {
			return errors.Wrapf(err, "%s: cannot initialize from genesis", path)
		}
	}
	return nil
}
