package app

import (
	"reflect"

	"github.com/vibe-network/vibe"
)

// Decorators is a decorator stack waiting for its final handler.
type Decorators struct {
	stack []vibe.Decorator
}

// ChainDecorators starts a stack. The first decorator runs first:
//
//   app.ChainDecorators(
//     utils.NewRecovery(),
//     sigs.NewDecorator(),
//   ).WithHandler(router)
//
// Nil decorators, typed or not, are skipped.
func ChainDecorators(ds ...vibe.Decorator) Decorators {
	return Decorators{}.Chain(ds...)
}

// Chain returns a new stack with ds added at the inner end.
func (d Decorators) Chain(ds ...vibe.Decorator) Decorators {
	stack := make([]vibe.Decorator, 0, len(d.stack)+len(ds))
	stack = append(stack, d.stack...)
	for _, dec := range ds {
		if !isNilDecorator(dec) {
			stack = append(stack, dec)
		}
	}
	return Decorators{stack: stack}
}

// WithHandler closes the stack around h.
func (d Decorators) WithHandler(h vibe.Handler) vibe.Handler {
	for i := len(d.stack) - 1; i >= 0; i-- {
		h = layer{dec: d.stack[i], next: h}
	}
	return h
}

func isNilDecorator(d vibe.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// layer runs one decorator in front of the rest of the stack.
type layer struct {
	dec  vibe.Decorator
	next vibe.Handler
}

func (l layer) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.CheckResult, error) {
	return l.dec.Check(ctx, db, tx, l.next)
}

func (l layer) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.DeliverResult, error) {
	return l.dec.Deliver(ctx, db, tx, l.next)
}
