package app

import (
	"fmt"
	"regexp"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

var validRoute = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router dispatches a transaction to the handler registered for the
// path of its message, e.g. "escrow/open" or "cash/send".
type Router struct {
	routes map[string]vibe.Handler
}

var (
	_ vibe.Registry = (*Router)(nil)
	_ vibe.Handler  = (*Router)(nil)
)

func NewRouter() *Router {
	return &Router{routes: map[string]vibe.Handler{}}
}

// Handle registers h for path. It panics on a malformed or taken path.
func (r *Router) Handle(path string, h vibe.Handler) {
	if !validRoute(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, taken := r.routes[path]; taken {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

func (r *Router) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.CheckResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

func (r *Router) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.DeliverResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r *Router) route(tx vibe.Tx) (vibe.Handler, error) {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return nil, errors.Wrap(err, "cannot load msg")
	case msg == nil:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", msg.Path())
	}
	return h, nil
}
