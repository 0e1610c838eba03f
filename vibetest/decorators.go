package vibetest

import "github.com/vibe-network/vibe"

// Decorator passes every call on to the next step, unless CheckErr or
// DeliverErr is set, in which case that error is returned instead.
// Calls are counted either way.
type Decorator struct {
	calls
	CheckErr   error
	DeliverErr error
}

var _ vibe.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Checker) (*vibe.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx, next vibe.Deliverer) (*vibe.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate puts d in front of h.
func Decorate(h vibe.Handler, d vibe.Decorator) vibe.Handler {
	return decorated{next: h, dec: d}
}

type decorated struct {
	next vibe.Handler
	dec  vibe.Decorator
}

func (d decorated) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.CheckResult, error) {
	return d.dec.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.DeliverResult, error) {
	return d.dec.Deliver(ctx, db, tx, d.next)
}

// calls counts invocations of the two phases.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int   { return c.check }
func (c *calls) DeliverCallCount() int { return c.deliver }
func (c *calls) CallCount() int        { return c.check + c.deliver }
