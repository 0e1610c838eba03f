package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/vibetest/assert"
)

// makeBase returns the base layer
func makeBase() (store.CacheableKVStore, func()) {
	commit, close := makeCommitStore()
	return commit.Adapter(), close
}

func makeCommitStore() (CommitStore, func()) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	if err != nil {
		panic(err)
	}
	commit, err := NewCommitStore(tmpDir, "base")
	if err != nil {
		panic(err)
	}
	close := func() {
		commit.Close()
		os.RemoveAll(tmpDir)
	}
	return commit, close
}

func TestAdapterCaching(t *testing.T) {
	store.NewSuite(makeBase).Run(t)
}

// TestCommitOverwrite checks that we commit properly
// and can add/overwrite/query in the next adapter
func TestCommitOverwrite(t *testing.T) {
	k1, k2, k3 := []byte("first"), []byte("second"), []byte("third")
	v1, v2, v3, v4 := []byte("one"), []byte("two"), []byte("three"), []byte("four")

	commit, close := makeCommitStore()
	defer close()
	// only one to trigger a cleanup
	commit.numHistory = 1

	id, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)
	if len(id.Hash) != 0 {
		t.Fatal("hash is not empty")
	}

	parent := commit.CacheWrap()
	assert.Nil(t, parent.Set(k1, v1))
	assert.Nil(t, parent.Set(k2, v2))

	// nothing is committed before write and commit
	store.AssertValue(t, commit, k1, nil)

	// write data to backing store
	assert.Nil(t, parent.Write())
	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("hash is empty")
	}
	store.AssertValue(t, commit, k1, v1)

	// child also comes from commit
	child := commit.CacheWrap()
	assert.Nil(t, child.Set(k1, v4))
	assert.Nil(t, child.Set(k3, v3))
	assert.Nil(t, child.Delete(k2))

	// and a side-cache wrap to see they are in parallel
	side := commit.CacheWrap()
	store.AssertValue(t, side, k1, v1)
	store.AssertValue(t, side, k2, v2)
	store.AssertValue(t, side, k3, nil)

	// the child shows changes
	store.AssertValue(t, child, k1, v4)
	store.AssertValue(t, child, k2, nil)
	store.AssertValue(t, child, k3, v3)

	// write child to the working tree, side cache reads through
	assert.Nil(t, child.Write())
	store.AssertValue(t, side, k1, v4)
	store.AssertValue(t, side, k2, nil)

	// committed state is unchanged until the next commit
	store.AssertValue(t, commit, k2, v2)

	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), id.Version)
	store.AssertValue(t, commit, k2, nil)
	store.AssertValue(t, commit, k3, v3)
}

func TestReloadFromDisk(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "iavl-reload-")
	assert.Nil(t, err)
	defer os.RemoveAll(tmpDir)

	commit, err := NewCommitStore(tmpDir, "state")
	assert.Nil(t, err)
	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("booking"), []byte("BKG-001")))
	assert.Nil(t, cache.Write())
	first, err := commit.Commit()
	assert.Nil(t, err)
	commit.Close()

	reopened, err := NewCommitStore(tmpDir, "state")
	assert.Nil(t, err)
	defer reopened.Close()
	assert.Nil(t, reopened.LoadLatestVersion())

	latest, err := reopened.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, first, latest)

	got, err := reopened.Get([]byte("booking"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("BKG-001"), got)
}

func TestMemCommitStore(t *testing.T) {
	commit := NewMemCommitStore()
	var _ vibe.CommitKVStore = commit

	adapter := commit.Adapter()
	assert.IsErr(t, errors.ErrInput, adapter.Set([]byte("key"), nil))

	assert.Nil(t, adapter.Set([]byte("key"), []byte("value")))
	id, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)

	has, err := commit.Has([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, true, has)
}
