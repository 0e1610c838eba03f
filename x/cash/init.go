package cash

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file.
// The address may be given in hex or bech32 form.
type GenesisAccount struct {
	Address vibe.Address `json:"address"`
	Amount  uint64       `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ vibe.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts vibe.Options, kv vibe.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	ctrl := NewController(NewBucket())
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := ctrl.IssueCoins(kv, acct.Address, acct.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
