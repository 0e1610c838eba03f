package gconf

import (
	"github.com/gogo/protobuf/proto"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// ReadStore is all Load needs from a store.
type ReadStore interface {
	Get(key []byte) ([]byte, error)
}

// Store is all Save needs from a store.
type Store interface {
	ReadStore
	Set(key, value []byte) error
}

// Configuration is a protobuf message that checks its own values.
type Configuration interface {
	vibe.Persistent
	Validate() error
}

// genesisSection is the genesis app_state key holding the
// configuration of every package, keyed by package name.
const genesisSection = "conf"

func dbKey(pkg string) []byte { return []byte("_c:" + pkg) }

// Save stores src as the configuration of pkg. An invalid
// configuration is never written.
func Save(db Store, pkg string, src Configuration) error {
	key := dbKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := proto.Marshal(src)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal: key %q: %s", key, err)
	}
	return db.Set(key, raw)
}

// Load reads the configuration of pkg into dst. It fails with
// ErrNotFound when pkg was never configured.
func Load(db ReadStore, pkg string, dst Configuration) error {
	key := dbKey(pkg)
	raw, err := db.Get(key)
	switch {
	case err != nil:
		return err
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := proto.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal: key %q: %s", key, err)
	}
	return nil
}

// InitConfig saves the genesis configuration of pkg, found under
// conf.<pkg>, decoding it into conf on the way. ErrNotFound means
// genesis did not configure pkg and nothing was written.
func InitConfig(db Store, opts vibe.Options, pkg string, conf Configuration) error {
	var byPkg vibe.Options
	if err := opts.ReadOptions(genesisSection, &byPkg); err != nil {
		return err
	}
	if _, ok := byPkg[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := byPkg.ReadOptions(pkg, conf); err != nil {
		return err
	}
	return errors.Wrapf(Save(db, pkg, conf), "save configuration for %s", pkg)
}
