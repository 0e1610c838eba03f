package store

// RecordingStore is a store that remembers the final value of every key
// written through it, nil standing for a delete. The key tagger uses it
// to index a transaction by the escrows and wallets it touched.
type RecordingStore interface {
	CacheableKVStore
	KVPairs() map[string][]byte
}

// NewRecordingStore wraps db. Writes made through cache wraps of the
// returned store are recorded once the wrap is written back.
func NewRecordingStore(db KVStore) RecordingStore {
	return &recorder{KVStore: db, changes: map[string][]byte{}}
}

type recorder struct {
	KVStore
	changes map[string][]byte
}

func (r *recorder) KVPairs() map[string][]byte {
	return r.changes
}

func (r *recorder) Set(key, value []byte) error {
	return r.apply(SetOp(key, value))
}

func (r *recorder) Delete(key []byte) error {
	return r.apply(DelOp(key))
}

// apply performs op on the wrapped store and records it on success.
func (r *recorder) apply(op Op) error {
	if err := op.Apply(r.KVStore); err != nil {
		return err
	}
	r.changes[string(op.key)] = op.value
	return nil
}

// NewBatch queues ops on the wrapped store's batch and records them when
// that batch is written.
func (r *recorder) NewBatch() Batch {
	return &recordedBatch{rec: r, inner: r.KVStore.NewBatch()}
}

func (r *recorder) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(r, r.NewBatch(), nil)
}

type recordedBatch struct {
	rec   *recorder
	inner Batch
	ops   []Op
}

var _ Batch = (*recordedBatch)(nil)

func (b *recordedBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return b.inner.Set(key, value)
}

func (b *recordedBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return b.inner.Delete(key)
}

func (b *recordedBatch) Write() error {
	if err := b.inner.Write(); err != nil {
		return err
	}
	for _, op := range b.ops {
		b.rec.changes[string(op.key)] = op.value
	}
	b.ops = nil
	return nil
}
