package orm

import (
	"bytes"

	"github.com/gogo/protobuf/proto"
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// Indexer derives the secondary key of an object, for example the
// depositor address of an escrow. A nil key leaves the object out of
// the index.
type Indexer func(Object) ([]byte, error)

// Index maps secondary keys to primary keys. A unique index stores the
// single primary key as is, any other index stores a MultiRef.
type Index struct {
	name   string
	prefix []byte
	unique bool
	index  Indexer
	// refKey turns a primary key into the key of the record.
	refKey func([]byte) []byte
}

var _ vibe.QueryHandler = Index{}

func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return Index{
		name:   name,
		prefix: []byte("_i." + name + ":"),
		unique: unique,
		index:  indexer,
		refKey: refKey,
	}
}

// IndexKey is the store key of the entry for a secondary key.
func (i Index) IndexKey(key []byte) []byte {
	return join(i.prefix, key)
}

// Update moves the primary key of an object to its new secondary key.
// A nil prev is an insert and a nil save a delete.
func (i Index) Update(db vibe.KVStore, prev, save Object) error {
	if prev == nil && save == nil {
		return errors.Wrap(errors.ErrHuman, "index update without an object")
	}
	if prev != nil && save != nil && !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
	}

	from, err := i.keyOf(prev)
	if err != nil {
		return err
	}
	to, err := i.keyOf(save)
	if err != nil {
		return err
	}
	if prev != nil && save != nil && bytes.Equal(from, to) {
		return nil
	}
	if prev != nil {
		if err := i.remove(db, from, prev.Key()); err != nil {
			return err
		}
	}
	if save != nil {
		return i.insert(db, to, save.Key())
	}
	return nil
}

// GetAt returns the primary keys stored under a secondary key.
func (i Index) GetAt(db vibe.ReadOnlyKVStore, key []byte) ([][]byte, error) {
	refs, err := i.load(db, i.IndexKey(key))
	if err != nil {
		return nil, err
	}
	return refs.GetRefs(), nil
}

// Query answers KeyQueryMod with every record under the secondary key.
func (i Index) Query(db vibe.ReadOnlyKVStore, mod string, data []byte) ([]vibe.Model, error) {
	if mod != vibe.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "not implemented: %s", mod)
	}
	refs, err := i.GetAt(db, data)
	if err != nil || len(refs) == 0 {
		return nil, err
	}
	res := make([]vibe.Model, 0, len(refs))
	for _, ref := range refs {
		key := i.refKey(ref)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		res = append(res, vibe.Pair(key, value))
	}
	return res, nil
}

func (i Index) keyOf(obj Object) ([]byte, error) {
	if obj == nil {
		return nil, nil
	}
	return i.index(obj)
}

func (i Index) insert(db vibe.KVStore, key, pk []byte) error {
	if len(key) == 0 {
		return nil
	}
	dbKey := i.IndexKey(key)
	refs, err := i.load(db, dbKey)
	if err != nil {
		return err
	}
	if i.unique && refs.Size() != 0 {
		return errors.Wrap(errors.ErrDuplicate, i.name)
	}
	if refs == nil {
		refs = new(MultiRef)
	}
	if err := refs.Add(pk); err != nil {
		return err
	}
	return i.store(db, dbKey, refs)
}

func (i Index) remove(db vibe.KVStore, key, pk []byte) error {
	if len(key) == 0 {
		return nil
	}
	dbKey := i.IndexKey(key)
	refs, err := i.load(db, dbKey)
	if err != nil {
		return err
	}
	if refs == nil {
		return errors.Wrapf(errors.ErrNotFound, "index %s has no entry", i.name)
	}
	if err := refs.Remove(pk); err != nil {
		return err
	}
	return i.store(db, dbKey, refs)
}

// load reads an index entry, nil when absent.
func (i Index) load(db vibe.ReadOnlyKVStore, dbKey []byte) (*MultiRef, error) {
	raw, err := db.Get(dbKey)
	if err != nil || raw == nil {
		return nil, err
	}
	if i.unique {
		return &MultiRef{Refs: [][]byte{raw}}, nil
	}
	var refs MultiRef
	if err := proto.Unmarshal(raw, &refs); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "index %s: %s", i.name, err)
	}
	return &refs, nil
}

// store writes an index entry, deleting it once empty.
func (i Index) store(db vibe.KVStore, dbKey []byte, refs *MultiRef) error {
	switch {
	case refs.Size() == 0:
		return db.Delete(dbKey)
	case i.unique:
		return db.Set(dbKey, refs.Refs[0])
	}
	raw, err := proto.Marshal(refs)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "index %s: %s", i.name, err)
	}
	return db.Set(dbKey, raw)
}

// join concatenates into a fresh slice, so keys never share memory.
func join(prefix, key []byte) []byte {
	out := make([]byte, 0, len(prefix)+len(key))
	out = append(out, prefix...)
	return append(out, key...)
}
