package vibetest

import "github.com/vibe-network/vibe"

// Handler counts its calls and answers with the configured result, or
// with CheckErr and DeliverErr when those are set.
type Handler struct {
	calls
	CheckResult   vibe.CheckResult
	CheckErr      error
	DeliverResult vibe.DeliverResult
	DeliverErr    error
}

var _ vibe.Handler = (*Handler)(nil)

func (h *Handler) Check(vibe.Context, vibe.KVStore, vibe.Tx) (*vibe.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(vibe.Context, vibe.KVStore, vibe.Tx) (*vibe.DeliverResult, error) {
	h.deliver++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// WriteHandler writes Key/Value to the store on every call
// and then returns Err (may be nil).
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ vibe.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &vibe.CheckResult{}, h.Err
}

func (h *WriteHandler) Deliver(ctx vibe.Context, db vibe.KVStore, tx vibe.Tx) (*vibe.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &vibe.DeliverResult{}, h.Err
}

// PanicHandler panics with Msg on every call.
type PanicHandler struct {
	Msg string
}

var _ vibe.Handler = PanicHandler{}

func (h PanicHandler) Check(vibe.Context, vibe.KVStore, vibe.Tx) (*vibe.CheckResult, error) {
	panic(h.Msg)
}

func (h PanicHandler) Deliver(vibe.Context, vibe.KVStore, vibe.Tx) (*vibe.DeliverResult, error) {
	panic(h.Msg)
}
