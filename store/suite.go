package store

import (
	"fmt"
	"testing"

	"github.com/vibe-network/vibe/vibetest/assert"
)

// Opener returns an empty store and a function releasing it.
type Opener func() (CacheableKVStore, func())

// Suite checks the caching contract that the escrow engine relies on:
// a transaction's writes stay invisible to the parent until written,
// and a discarded layer leaves no trace. Each backend's tests run it
// against their own Opener.
type Suite struct {
	open Opener
}

func NewSuite(open Opener) Suite {
	return Suite{open: open}
}

// Run executes every check as a subtest.
func (s Suite) Run(t *testing.T) {
	t.Run("layers", s.Layers)
	t.Run("conflicts", s.Conflicts)
	t.Run("nested", s.Nested)
}

// Layers writes through one cache layer at a time.
func (s Suite) Layers(t *testing.T) {
	db, release := s.open()
	defer release()

	escrow, wallet, voucher := []byte("escrow:BKG-001"), []byte("wallet:alice"), []byte("escrow:BKG-002")

	AssertValue(t, db, escrow, nil)
	assert.Nil(t, db.Set(escrow, []byte("open")))
	AssertValue(t, db, escrow, []byte("open"))

	tx := db.CacheWrap()
	AssertValue(t, tx, escrow, []byte("open"))
	assert.Nil(t, tx.Set(wallet, []byte("750")))
	AssertValue(t, tx, wallet, []byte("750"))
	AssertValue(t, db, wallet, nil)
	assert.Nil(t, tx.Write())
	AssertValue(t, db, wallet, []byte("750"))

	failed := db.CacheWrap()
	assert.Nil(t, failed.Set(voucher, []byte("open")))
	assert.Nil(t, failed.Delete(wallet))
	failed.Discard()
	AssertValue(t, db, voucher, nil)
	AssertValue(t, db, wallet, []byte("750"))

	released := db.CacheWrap()
	assert.Nil(t, released.Delete(escrow))
	assert.Nil(t, released.Write())
	AssertValue(t, db, escrow, nil)
	AssertValue(t, db, wallet, []byte("750"))
}

// Conflicts overwrites and deletes in a child what the parent holds.
func (s Suite) Conflicts(t *testing.T) {
	k := func(i int) []byte { return []byte(fmt.Sprintf("escrow:BKG-%03d", i)) }
	v := func(state string) []byte { return []byte(state) }

	cases := map[string]struct {
		parent     []Op
		child      []Op
		wantParent []Model
		wantChild  []Model
	}{
		"overwrite, delete and add": {
			parent:     []Op{SetOp(k(1), v("open")), SetOp(k(2), v("open"))},
			child:      []Op{SetOp(k(1), v("released")), DelOp(k(2)), SetOp(k(3), v("open"))},
			wantParent: []Model{{Key: k(1), Value: v("open")}, {Key: k(2), Value: v("open")}, {Key: k(3)}},
			wantChild:  []Model{{Key: k(1), Value: v("released")}, {Key: k(2)}, {Key: k(3), Value: v("open")}},
		},
		"delete then recreate": {
			parent:     []Op{SetOp(k(4), v("open"))},
			child:      []Op{DelOp(k(4)), SetOp(k(4), v("reopened"))},
			wantParent: []Model{{Key: k(4), Value: v("open")}},
			wantChild:  []Model{{Key: k(4), Value: v("reopened")}},
		},
		"created and removed in child": {
			child:      []Op{SetOp(k(5), v("open")), DelOp(k(5))},
			wantParent: []Model{{Key: k(5)}},
			wantChild:  []Model{{Key: k(5)}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db, release := s.open()
			defer release()

			for _, op := range tc.parent {
				assert.Nil(t, op.Apply(db))
			}
			child := db.CacheWrap()
			for _, op := range tc.child {
				assert.Nil(t, op.Apply(child))
			}
			for _, m := range tc.wantParent {
				AssertValue(t, db, m.Key, m.Value)
			}
			for _, m := range tc.wantChild {
				AssertValue(t, child, m.Key, m.Value)
			}

			assert.Nil(t, child.Write())
			for _, m := range tc.wantChild {
				AssertValue(t, db, m.Key, m.Value)
			}
		})
	}
}

// Nested writes a block layer and a transaction layer over the store,
// as the application does for every delivered transaction.
func (s Suite) Nested(t *testing.T) {
	const n = 40

	db, release := s.open()
	defer release()

	key := func(i int) []byte { return []byte(fmt.Sprintf("wallet:%02d", i)) }
	val := func(i int) []byte { return []byte(fmt.Sprintf("balance-%d", i*25)) }

	for i := 0; i < n/2; i++ {
		assert.Nil(t, db.Set(key(i), val(i)))
	}
	block := db.CacheWrap()
	tx := block.CacheWrap()
	for i := n / 2; i < n; i++ {
		assert.Nil(t, tx.Set(key(i), val(i)))
	}
	for i := 0; i < 4; i++ {
		assert.Nil(t, tx.Delete(key(i)))
	}

	for i := 0; i < n; i++ {
		switch {
		case i < 4:
			AssertValue(t, tx, key(i), nil)
			AssertValue(t, block, key(i), val(i))
		case i >= n/2:
			AssertValue(t, tx, key(i), val(i))
			AssertValue(t, block, key(i), nil)
		default:
			AssertValue(t, tx, key(i), val(i))
		}
	}

	assert.Nil(t, tx.Write())
	assert.Nil(t, block.Write())
	for i := 0; i < n; i++ {
		if i < 4 {
			AssertValue(t, db, key(i), nil)
		} else {
			AssertValue(t, db, key(i), val(i))
		}
	}
}

// AssertValue checks that Get returns want and that Has agrees, a nil
// want meaning the key is absent.
func AssertValue(t testing.TB, db ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := db.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, want, got)
	has, err := db.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, want != nil, has)
}
