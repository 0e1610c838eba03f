package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/vibetest"
	"github.com/vibe-network/vibe/vibetest/assert"
)

func TestKeyTagger(t *testing.T) {
	// some key, value to try to write
	nk, nv := []byte{1, 0xab, 3}, []byte{4, 5, 6}
	ntag, nval := []byte("01AB03"), []byte("s")
	derr := fmt.Errorf("something went wrong")

	cases := map[string]struct {
		handler vibe.Handler
		isError bool
		tags    []common.KVPair
		v       []byte
	}{
		"error does not add tags": {
			handler: &vibetest.WriteHandler{Key: nk, Value: nv, Err: derr},
			isError: true,
			// written as there is no savepoint
			v: nv,
		},
		"success records tags": {
			handler: &vibetest.WriteHandler{Key: nk, Value: nv},
			tags:    []common.KVPair{{Key: ntag, Value: nval}},
			v:       nv,
		},
		"savepoint reverts writes": {
			handler: vibetest.Decorate(
				&vibetest.WriteHandler{Key: nk, Value: nv, Err: derr},
				NewSavepoint().OnDeliver()),
			isError: true,
		},
		"savepoint keeps writes on success": {
			handler: vibetest.Decorate(
				&vibetest.WriteHandler{Key: nk, Value: nv},
				NewSavepoint().OnDeliver()),
			tags: []common.KVPair{{Key: ntag, Value: nval}},
			v:    nv,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			db := store.MemStore()
			tagger := NewKeyTagger()

			res, err := tagger.Deliver(ctx, db, nil, tc.handler)
			if tc.isError {
				if err == nil {
					t.Fatal("expected error")
				}
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.tags, res.Tags)
			}

			got, err := db.Get(nk)
			assert.Nil(t, err)
			assert.Equal(t, tc.v, got)
		})
	}
}

func TestChangesToTags(t *testing.T) {
	tags := changesToTags(map[string][]byte{
		"b": nil,
		"a": []byte("value"),
	})
	want := common.KVPairs{
		{Key: []byte("61"), Value: recordSet},
		{Key: []byte("62"), Value: recordDelete},
	}
	assert.Equal(t, want, tags)
	assert.Nil(t, changesToTags(nil))
}
