// Package bech32 converts between raw address bytes and their bech32
// text form, regrouping 8 bit bytes into 5 bit words and back.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"

	"github.com/vibe-network/vibe/errors"
)

// Decode returns the human readable part and the payload of raw.
func Decode(raw string) (hrp string, payload []byte, err error) {
	hrp, words, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if payload, err = bech32.ConvertBits(words, 5, 8, false); err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

// Encode requires a non empty hrp.
func Encode(hrp string, payload []byte) ([]byte, error) {
	if hrp == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "human readable part")
	}
	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	text, err := bech32.Encode(hrp, words)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 encode: %s", err)
	}
	return []byte(text), nil
}
