package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree keeps nodes small; a cache layer holds the writes of a
// single transaction or block.
const btreeDegree = 2

// MemStore is a store living only in memory, used by tests and by a
// node started without a data directory.
func MemStore() CacheableKVStore {
	var null nullStore
	return NewBTreeCacheWrap(null, NewNonAtomicBatch(null), nil)
}

// CacheWrap opens a scratch layer over db. Stores that cache themselves
// do so, any other store gets a btree layer.
func CacheWrap(db KVStore) KVCacheWrap {
	if c, ok := db.(CacheableKVStore); ok {
		return c.CacheWrap()
	}
	return BTreeCacheable{db}.CacheWrap()
}

// BTreeCacheable gives any KVStore a btree backed CacheWrap.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// BTreeCacheWrap keeps pending writes in a btree, so reads see them
// before they reach the parent. Every write is also queued on the
// batch that Write flushes.
type BTreeCacheWrap struct {
	pending *btree.BTree
	free    *btree.FreeList
	parent  ReadOnlyKVStore
	batch   Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap layers a cache over parent. Writes must reach parent
// through batch. A shared free list may be passed to recycle nodes
// between nested layers.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		pending: btree.NewWithFreeList(btreeDegree, free),
		free:    free,
		parent:  parent,
		batch:   batch,
	}
}

func (c BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(c, c.NewBatch(), c.free)
}

func (c BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(c)
}

// Write flushes the pending writes to the parent and clears the layer.
func (c BTreeCacheWrap) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

// Discard drops the pending writes.
func (c BTreeCacheWrap) Discard() {
	c.pending.Clear(true)
}

func (c BTreeCacheWrap) Set(key, value []byte) error {
	c.pending.ReplaceOrInsert(entry{key: key, value: value})
	return c.batch.Set(key, value)
}

func (c BTreeCacheWrap) Delete(key []byte) error {
	c.pending.ReplaceOrInsert(entry{key: key, deleted: true})
	return c.batch.Delete(key)
}

func (c BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if e, ok := c.lookup(key); ok {
		return e.value, nil
	}
	return c.parent.Get(key)
}

func (c BTreeCacheWrap) Has(key []byte) (bool, error) {
	if e, ok := c.lookup(key); ok {
		return !e.deleted, nil
	}
	return c.parent.Has(key)
}

// lookup reports the pending write for key, if any.
func (c BTreeCacheWrap) lookup(key []byte) (entry, bool) {
	found := c.pending.Get(entry{key: key})
	if found == nil {
		return entry{}, false
	}
	return found.(entry), true
}

// entry is a pending write. A deleted entry hides the parent's value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}

// nullStore holds nothing and drops every write.
type nullStore struct{}

var _ KVStore = nullStore{}

func (nullStore) Get([]byte) ([]byte, error) { return nil, nil }
func (nullStore) Has([]byte) (bool, error)   { return false, nil }
func (nullStore) Set(_, _ []byte) error      { return nil }
func (nullStore) Delete([]byte) error        { return nil }
func (n nullStore) NewBatch() Batch          { return NewNonAtomicBatch(n) }
