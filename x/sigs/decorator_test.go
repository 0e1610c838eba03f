package sigs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/crypto"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/vibetest"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := vibe.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	perms := []vibe.Condition{priv.PublicKey().Condition()}

	tx := NewStdTx([]byte("art"))
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec vibe.Decorator, my vibe.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec vibe.Decorator, my vibe.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(vibe.Decorator, vibe.Tx) error{check, deliver} {
		// test with no sigs
		tx.Signatures = nil
		err := fn(d, tx)
		assert.Error(t, err, "%d", i)

		// test with one
		tx.Signatures = []*StdSignature{sig}
		err = fn(d, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)

		// test with replay
		err = fn(d, tx)
		assert.Error(t, err, "%d", i)

		// test allowing none
		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, []vibe.Condition{}, signers.Signers)

		// test allowing, with next sequence
		tx.Signatures = []*StdSignature{sig1}
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)
	}
}

func TestDecoratorPassesUnsignedTx(t *testing.T) {
	ctx := vibe.WithChainID(context.Background(), "pass-through")
	handler := &vibetest.Handler{}
	tx := &vibetest.Tx{Msg: &vibetest.Msg{RoutePath: "test/unsigned"}}

	_, err := NewDecorator().Deliver(ctx, store.MemStore(), tx, handler)
	require.NoError(t, err)
	assert.Equal(t, 1, handler.DeliverCallCount())
}

func TestAuthenticate(t *testing.T) {
	a := vibetest.NewCondition()
	b := vibetest.NewCondition()
	ctx := withSigners(context.Background(), []vibe.Condition{a})

	var auth Authenticate
	assert.Equal(t, []vibe.Condition{a}, auth.GetConditions(ctx))
	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.False(t, auth.HasAddress(ctx, b.Address()))
	assert.Nil(t, auth.GetConditions(context.Background()))
}
