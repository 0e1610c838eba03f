package sigs

import (
	"testing"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/crypto"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/vibetest/assert"
)

func TestUserDataValidate(t *testing.T) {
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	cases := map[string]struct {
		user    *UserData
		wantErr *errors.Error
	}{
		"new user": {
			user: &UserData{Metadata: &vibe.Metadata{Schema: 1}, Pubkey: pub},
		},
		"missing metadata": {
			user:    &UserData{Pubkey: pub},
			wantErr: errors.ErrMetadata,
		},
		"negative sequence": {
			user:    &UserData{Metadata: &vibe.Metadata{Schema: 1}, Pubkey: pub, Sequence: -1},
			wantErr: ErrInvalidSequence,
		},
		"sequence without pubkey": {
			user:    &UserData{Metadata: &vibe.Metadata{Schema: 1}, Sequence: 3},
			wantErr: ErrInvalidSequence,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.user.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestCheckAndIncrementSequence(t *testing.T) {
	u := &UserData{Metadata: &vibe.Metadata{Schema: 1}}

	assert.Nil(t, u.CheckAndIncrementSequence(0))
	assert.Equal(t, int64(1), u.Sequence)
	assert.IsErr(t, ErrInvalidSequence, u.CheckAndIncrementSequence(0))
	assert.Equal(t, int64(1), u.Sequence)

	u.Sequence = maxSequenceValue
	assert.IsErr(t, errors.ErrOverflow, u.CheckAndIncrementSequence(maxSequenceValue))
}

func TestSetPubkey(t *testing.T) {
	pub := crypto.GenPrivKeyEd25519().PublicKey()
	obj := NewUser(nil)
	user := AsUser(obj)
	user.SetPubkey(pub)
	assert.Equal(t, pub, user.Pubkey)
	assert.Panics(t, func() { user.SetPubkey(pub) })
}
