package store

import (
	"testing"

	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/vibetest/assert"
)

func TestMemStore(t *testing.T) {
	NewSuite(func() (CacheableKVStore, func()) {
		return MemStore(), func() {}
	}).Run(t)
}

func TestCacheOverNullStore(t *testing.T) {
	null := BTreeCacheable{nullStore{}}
	cache := null.CacheWrap()

	k := []byte("escrow:BKG-001")
	assert.Nil(t, cache.Set(k, []byte("open")))
	AssertValue(t, cache, k, []byte("open"))
	assert.Nil(t, cache.Write())

	AssertValue(t, null, k, nil)
	AssertValue(t, cache, k, nil)
}

func TestBatchStopsAtFailure(t *testing.T) {
	db := &failingSetStore{KVStore: MemStore(), fail: true}
	b := NewNonAtomicBatch(db)
	assert.Nil(t, b.Delete([]byte("a")))
	assert.Nil(t, b.Set([]byte("b"), []byte("2")))
	assert.IsErr(t, errors.ErrDatabase, b.Write())

	db.fail = false
	assert.Nil(t, b.Write())
	AssertValue(t, db, []byte("b"), []byte("2"))
}

func TestCacheWrapHelper(t *testing.T) {
	// a plain KVStore without caching support gets a btree wrap
	plain := &failingSetStore{KVStore: MemStore()}
	cache := CacheWrap(plain)
	assert.Nil(t, cache.Set([]byte("a"), []byte("1")))

	got, err := plain.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, cache.Write())
	got, err = plain.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), got)

	// failures of the underlying store surface on write
	plain.fail = true
	cache = CacheWrap(plain)
	assert.Nil(t, cache.Set([]byte("b"), []byte("2")))
	assert.IsErr(t, errors.ErrDatabase, cache.Write())
}

// failingSetStore is not cacheable and can be told to fail on writes.
type failingSetStore struct {
	KVStore
	fail bool
}

func (f *failingSetStore) Set(key, value []byte) error {
	if f.fail {
		return errors.Wrap(errors.ErrDatabase, "disk full")
	}
	return f.KVStore.Set(key, value)
}

func (f *failingSetStore) NewBatch() Batch {
	return NewNonAtomicBatch(f)
}

func TestRecordingStore(t *testing.T) {
	rec := NewRecordingStore(MemStore())

	cache := rec.CacheWrap()
	assert.Nil(t, cache.Set([]byte("a"), []byte("1")))
	assert.Nil(t, cache.Set([]byte("b"), []byte("2")))
	assert.Nil(t, cache.Delete([]byte("b")))
	assert.Equal(t, 0, len(rec.KVPairs()))

	assert.Nil(t, cache.Write())
	want := map[string][]byte{
		"a": []byte("1"),
		"b": nil,
	}
	assert.Equal(t, want, rec.KVPairs())

	discarded := rec.CacheWrap()
	assert.Nil(t, discarded.Set([]byte("c"), []byte("3")))
	discarded.Discard()
	assert.Equal(t, want, rec.KVPairs())
}
