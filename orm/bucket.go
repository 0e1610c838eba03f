/*
Package orm stores protobuf models in named, prefixed buckets of the
application store.

A bucket holds a single model type under "<name>:<key>" and may keep
secondary indexes under "_i.<name>_<index>:<value>". The escrow bucket,
for example, is indexed by depositor and by counterparty so clients can
list the escrows of one party.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

var validBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a typed section of the store. Embed it in a wrapper that
// fixes the model type.
type Bucket struct {
	name    string
	prefix  []byte
	model   Object
	indexes map[string]Index
}

var _ vibe.QueryHandler = Bucket{}

// NewBucket panics on a name outside [a-z_]{3,10}. model is the empty
// object that stored bytes are decoded into.
func NewBucket(name string, model Object) Bucket {
	if !validBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name %q", name))
	}
	return Bucket{
		name:   name,
		prefix: []byte(name + ":"),
		model:  model,
	}
}

func (b Bucket) Name() string { return b.name }

// WithIndex returns a copy of the bucket with one more index. Index
// names must be unique within the bucket.
func (b Bucket) WithIndex(name string, indexer Indexer, unique bool) Bucket {
	if _, dup := b.indexes[name]; dup {
		panic(fmt.Sprintf("index %q registered twice on bucket %q", name, b.name))
	}
	indexes := make(map[string]Index, len(b.indexes)+1)
	for n, idx := range b.indexes {
		indexes[n] = idx
	}
	indexes[name] = NewIndex(b.name+"_"+name, indexer, unique, b.DBKey)
	b.indexes = indexes
	return b
}

// Register publishes the bucket at "/<name>" and each index at
// "/<name>/<index>". An empty name uses the bucket name.
func (b Bucket) Register(name string, r vibe.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
	for idxName, idx := range b.indexes {
		r.Register("/"+name+"/"+idxName, idx)
	}
}

// Query answers KeyQueryMod with the record stored under data.
func (b Bucket) Query(db vibe.ReadOnlyKVStore, mod string, data []byte) ([]vibe.Model, error) {
	if mod != vibe.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "not implemented: %s", mod)
	}
	key := b.DBKey(data)
	value, err := db.Get(key)
	if err != nil || value == nil {
		return nil, err
	}
	return []vibe.Model{vibe.Pair(key, value)}, nil
}

// DBKey is the store key of a record.
func (b Bucket) DBKey(key []byte) []byte {
	return join(b.prefix, key)
}

// Get loads a record, returning nil when there is none.
func (b Bucket) Get(db vibe.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	return b.Parse(key, raw)
}

func (b Bucket) Has(db vibe.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Parse decodes a stored value into a fresh object.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.model.Clone()
	if err := proto.Unmarshal(value, obj.Value()); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "%s: %s", b.name, err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Create saves a record whose key must be unused, or fails with
// ErrDuplicate.
func (b Bucket) Create(db vibe.KVStore, obj Object) error {
	switch taken, err := b.Has(db, obj.Key()); {
	case err != nil:
		return err
	case taken:
		return errors.Wrapf(errors.ErrDuplicate, "%s: %X", b.name, obj.Key())
	}
	return b.Save(db, obj)
}

// Save validates and writes a record, updating every index.
func (b Bucket) Save(db vibe.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := proto.Marshal(obj.Value())
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "%s: %s", b.name, err)
	}
	if err := b.reindex(db, obj.Key(), obj); err != nil {
		return err
	}
	return db.Set(b.DBKey(obj.Key()), raw)
}

// Delete removes a record and its index entries. A missing record is
// not an error.
func (b Bucket) Delete(db vibe.KVStore, key []byte) error {
	if err := b.reindex(db, key, nil); err != nil {
		return err
	}
	return db.Delete(b.DBKey(key))
}

// GetIndexed loads every record filed under value in the named index.
func (b Bucket) GetIndexed(db vibe.ReadOnlyKVStore, index string, value []byte) ([]Object, error) {
	idx, ok := b.indexes[index]
	if !ok {
		return nil, errors.Wrap(ErrInvalidIndex, index)
	}
	keys, err := idx.GetAt(db, value)
	if err != nil || len(keys) == 0 {
		return nil, err
	}
	objs := make([]Object, 0, len(keys))
	for _, key := range keys {
		obj, err := b.Get(db, key)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// reindex moves the record under key from its stored state to next,
// nil meaning deleted.
func (b Bucket) reindex(db vibe.KVStore, key []byte, next Object) error {
	if len(b.indexes) == 0 {
		return nil
	}
	prev, err := b.Get(db, key)
	if err != nil || (prev == nil && next == nil) {
		return err
	}
	for _, idx := range b.indexes {
		if err := idx.Update(db, prev, next); err != nil {
			return err
		}
	}
	return nil
}
