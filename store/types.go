package store

import "github.com/vibe-network/vibe"

// Short names for the storage interfaces declared in the root package.
type (
	ReadOnlyKVStore  = vibe.ReadOnlyKVStore
	SetDeleter       = vibe.SetDeleter
	KVStore          = vibe.KVStore
	Batch            = vibe.Batch
	CacheableKVStore = vibe.CacheableKVStore
	KVCacheWrap      = vibe.KVCacheWrap
	CommitKVStore    = vibe.CommitKVStore
	CommitID         = vibe.CommitID
	Model            = vibe.Model
)
