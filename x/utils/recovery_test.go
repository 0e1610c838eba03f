package utils

import (
	"context"
	"testing"

	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/vibetest"
	"github.com/vibe-network/vibe/vibetest/assert"
)

func TestRecovery(t *testing.T) {
	h := vibetest.PanicHandler{Msg: "boom"}
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { _, _ = h.Check(ctx, s, nil) })
	assert.Panics(t, func() { _, _ = h.Deliver(ctx, s, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, s, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = r.Deliver(ctx, s, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)
}
