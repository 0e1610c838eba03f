package escrow

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/gconf"
)

const confPkg = "escrow"

// DefaultConfiguration accepts the longest booking identifiers and codes.
func DefaultConfiguration() Configuration {
	return Configuration{
		Metadata:           &vibe.Metadata{Schema: 1},
		MaxBookingIDLength: MaxBookingIDLength,
		MaxCodeLength:      MaxCodeLength,
	}
}

// Validate ensures the limits are within the ceilings of the record layout.
func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if n := c.MaxBookingIDLength; n < 1 || n > MaxBookingIDLength {
		return errors.Wrapf(errors.ErrInput, "max booking id length must be 1 to %d", MaxBookingIDLength)
	}
	if n := c.MaxCodeLength; n < 1 || n > MaxCodeLength {
		return errors.Wrapf(errors.ErrInput, "max code length must be 1 to %d", MaxCodeLength)
	}
	return nil
}

// loadConfiguration returns the stored configuration or the default one
// if none was stored.
func loadConfiguration(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPkg, &conf); {
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	case err != nil:
		return conf, errors.Wrap(err, "cannot load configuration")
	}
	return conf, nil
}
