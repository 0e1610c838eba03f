package vibe

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/vibe-network/vibe/crypto/bech32"
	"github.com/vibe-network/vibe/errors"
)

// AddressLength is the size of every account address. It may only be
// changed before the first address is derived.
var AddressLength = 20

// Address identifies an account: a wallet, a signer or a booking escrow.
// It is the truncated sha256 of a Condition.
type Address []byte

// NewAddress derives the address owned by data.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return Address(sum[:AddressLength])
}

// Validate fails on an empty or wrongly sized address.
func (a Address) Validate() error {
	switch len(a) {
	case 0:
		return errors.Wrap(errors.ErrEmpty, "address")
	case AddressLength:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "address %X has %d bytes", []byte(a), len(a))
	}
}

func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns a copy with its own backing array.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address(nil), a...)
}

// String is the upper case hex form, or "(nil)".
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 encodes the address under the human readable part hrp.
func (a Address) Bech32(hrp string) (string, error) {
	out, err := bech32.Encode(hrp, a)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// MarshalJSON writes the hex form rather than base64.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts every form ParseAddress does.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return errors.Wrap(errors.ErrInput, "address must be a json string")
	}
	addr, err := ParseAddress(text)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress reads an address written as
//
//   <hex>  or  hex:<hex>
//   cond:<ext>/<type>/<hex data>   the address of that condition
//   bech32:<bech32>
//
// An empty body yields a nil address.
func ParseAddress(text string) (Address, error) {
	format, body := "hex", text
	if i := strings.IndexByte(text, ':'); i >= 0 {
		format, body = text[:i], text[i+1:]
	}
	if body == "" {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		raw, err := hex.DecodeString(body)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "hex address: %s", err)
		}
		addr = raw
	case "bech32":
		_, raw, err := bech32.Decode(body)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "bech32 address: %s", err)
		}
		addr = raw
	case "cond":
		cond, err := parseCondition(body)
		if err != nil {
			return nil, err
		}
		if err := cond.Validate(); err != nil {
			return nil, err
		}
		addr = cond.Address()
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown address format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}
