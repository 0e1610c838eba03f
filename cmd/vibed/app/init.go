package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/crypto"
	"github.com/vibe-network/vibe/x/escrow"
)

// initialFunds is credited to the dev account of a generated genesis.
const initialFunds = 123456789

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// The account address may be given as the first argument, in any
// format understood by vibe.ParseAddress. Without it a new key is
// generated and its seed printed to stdout.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr vibe.Address
	if len(args) > 0 {
		a, err := vibe.ParseAddress(args[0])
		if err != nil {
			return nil, err
		}
		addr = a
	} else {
		a, seed, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = a
		fmt.Println(seed)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"amount":  initialFunds,
			},
		},
		"conf": dict{
			"escrow": escrow.DefaultConfiguration(),
		},
		"escrow": array{},
	})
}

// GenerateCoinKey returns the address of a new public key,
// along with the hex encoded seed to recover the private key.
// You can give coins to this address and return the seed
// to the user to access them.
func GenerateCoinKey() (vibe.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	addr := privKey.PublicKey().Address()
	seed := privKey.Ed25519[:32]
	return addr, hex.EncodeToString(seed), nil
}
