package orm

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/x"
)

// Object is a keyed record held by a Bucket, such as an escrow under
// its derived key or a wallet under its address.
type Object interface {
	x.Validater
	Key() []byte
	SetKey([]byte)
	Value() vibe.Persistent
	// Clone returns an independent copy, used as the template that
	// stored bytes are decoded into.
	Clone() Object
}

// CloneableData is a protobuf model that can validate and copy itself.
type CloneableData interface {
	x.Validater
	vibe.Persistent
	Copy() CloneableData
}

// SimpleObj is the Object used by every bucket in this module: a key
// next to a CloneableData value.
type SimpleObj struct {
	key   []byte
	value CloneableData
}

var _ Object = (*SimpleObj)(nil)

func NewSimpleObj(key []byte, value CloneableData) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte { return o.key }

func (o *SimpleObj) SetKey(key []byte) { o.key = key }

func (o SimpleObj) Value() vibe.Persistent { return o.value }

// Validate requires a key and a value, then validates the value.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Wrap(errors.ErrEmpty, "missing key")
	case o.value == nil:
		return errors.Wrap(errors.ErrEmpty, "missing value")
	}
	return o.value.Validate()
}

func (o *SimpleObj) Clone() Object {
	var key []byte
	if len(o.key) != 0 {
		key = append(key, o.key...)
	}
	return &SimpleObj{key: key, value: o.value.Copy()}
}
