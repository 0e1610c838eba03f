package orm

import (
	"bytes"
	"sort"

	"github.com/vibe-network/vibe/errors"
)

var _ CloneableData = (*MultiRef)(nil)

// NewMultiRef returns a set holding refs.
func NewMultiRef(refs ...[]byte) (*MultiRef, error) {
	var m MultiRef
	for _, ref := range refs {
		if err := m.Add(ref); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// Add inserts ref, keeping the set sorted. A ref already present is an
// ErrDuplicate.
func (m *MultiRef) Add(ref []byte) error {
	i, ok := m.search(ref)
	if ok {
		return errors.Wrap(errors.ErrDuplicate, "ref already in set")
	}
	m.Refs = append(m.Refs, nil)
	copy(m.Refs[i+1:], m.Refs[i:])
	m.Refs[i] = ref
	return nil
}

// Remove deletes ref. A ref not present is an ErrNotFound.
func (m *MultiRef) Remove(ref []byte) error {
	i, ok := m.search(ref)
	if !ok {
		return errors.Wrap(errors.ErrNotFound, "ref not in set")
	}
	m.Refs = append(m.Refs[:i], m.Refs[i+1:]...)
	return nil
}

func (m *MultiRef) Size() int {
	return len(m.GetRefs())
}

// search returns the position of ref, or where it would be inserted.
func (m *MultiRef) search(ref []byte) (int, bool) {
	i := sort.Search(len(m.Refs), func(j int) bool {
		return bytes.Compare(m.Refs[j], ref) >= 0
	})
	return i, i < len(m.Refs) && bytes.Equal(m.Refs[i], ref)
}

// Copy shares the ref slices but not the list holding them.
func (m *MultiRef) Copy() CloneableData {
	return &MultiRef{Refs: append([][]byte(nil), m.Refs...)}
}

// Validate rejects an empty set.
func (m *MultiRef) Validate() error {
	if m.Size() == 0 {
		return errors.Wrap(errors.ErrEmpty, "no references")
	}
	return nil
}
