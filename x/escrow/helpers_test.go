package escrow

import (
	"context"
	"testing"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/vibetest"
	"github.com/vibe-network/vibe/x/cash"
)

// fixture is a ledger with a funded depositor and an engine authorizing
// callers through the context.
type fixture struct {
	db           vibe.CacheableKVStore
	ctrl         cash.BaseController
	auth         *vibetest.CtxAuth
	engine       Engine
	depositor    vibe.Condition
	counterparty vibe.Condition
	stranger     vibe.Condition
}

func newFixture(t testing.TB, funds uint64) *fixture {
	f := &fixture{
		db:           store.MemStore(),
		ctrl:         cash.NewController(cash.NewBucket()),
		auth:         &vibetest.CtxAuth{Key: "escrow-test"},
		depositor:    vibetest.NewCondition(),
		counterparty: vibetest.NewCondition(),
		stranger:     vibetest.NewCondition(),
	}
	f.engine = NewEngine(f.auth, NewRecordStore(NewBucket(), f.ctrl))
	if funds > 0 {
		if err := f.ctrl.IssueCoins(f.db, f.depositor.Address(), funds); err != nil {
			t.Fatalf("cannot fund depositor: %s", err)
		}
	}
	return f
}

// as returns a context authenticated by the given signers.
func (f *fixture) as(signers ...vibe.Condition) vibe.Context {
	return f.auth.SetConditions(context.Background(), signers...)
}

func (f *fixture) balance(t testing.TB, addr vibe.Address) uint64 {
	t.Helper()
	amount, err := f.ctrl.Balance(f.db, addr)
	if err != nil {
		t.Fatalf("cannot read balance: %s", err)
	}
	return amount
}

func (f *fixture) open(bookingID, code string, amount uint64) OpenParams {
	return OpenParams{
		BookingID:    bookingID,
		VerifyCode:   code,
		Amount:       amount,
		Depositor:    f.depositor.Address(),
		Counterparty: f.counterparty.Address(),
	}
}

func (f *fixture) release(bookingID, code string) ReleaseParams {
	return ReleaseParams{
		BookingID:  bookingID,
		VerifyCode: code,
		Releaser:   f.counterparty.Address(),
	}
}
