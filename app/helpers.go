package app

import (
	"bytes"

	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// ABCIStore exposes the abci.Query interface as a ReadOnlyKVStore, so that
// a bucket can read through a running application.
//
// Keys are looked up under the given query path, which must be a bucket
// registered with the query router.
type ABCIStore struct {
	app    abci.Application
	path   string
	prefix []byte
}

var _ vibe.ReadOnlyKVStore = (*ABCIStore)(nil)

// NewABCIStore returns a store reading keys of the named bucket through the
// query path of app. The bucket prefix is stripped from every key before
// querying.
func NewABCIStore(app abci.Application, path, bucketName string) *ABCIStore {
	return &ABCIStore{
		app:    app,
		path:   path,
		prefix: []byte(bucketName + ":"),
	}
}

// Get will query for exactly one value over the abci store.
// The key must carry the bucket prefix, as produced by Bucket.DBKey.
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	if !bytes.HasPrefix(key, a.prefix) {
		return nil, errors.Wrapf(errors.ErrInput, "key outside of %s", a.path)
	}
	query := a.app.Query(abci.RequestQuery{
		Path: a.path,
		Data: key[len(a.prefix):],
	})
	if query.Code != errors.SuccessABCICode {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}

	var value ResultSet
	if err := proto.Unmarshal(query.Value, &value); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	switch len(value.Results) {
	case 0:
		return nil, nil
	case 1:
		return value.Results[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrState, "%d results for one key", len(value.Results))
	}
}

// Has returns true if the given key in in the abci app store
func (a *ABCIStore) Has(key []byte) (bool, error) {
	val, err := a.Get(key)
	return len(val) > 0, err
}
