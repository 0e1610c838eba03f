package vibe

import "fmt"

// KeyQueryMod asks a handler for the record stored under the exact key.
const KeyQueryMod = ""

// Model is one key/value pair returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair builds a Model.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers read requests for one query path, such as
// "/escrows" or "/escrows/depositor".
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister lets an extension publish its query paths.
type QueryRegister func(QueryRouter)

// QueryRouter dispatches ABCI query paths to their handlers.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter returns a router with no paths.
func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: map[string]QueryHandler{}}
}

// RegisterAll runs every register function against the router.
func (r QueryRouter) RegisterAll(registers ...QueryRegister) {
	for _, register := range registers {
		register(r)
	}
}

// Register binds a path to a handler. A path can be bound only once.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, taken := r.routes[path]; taken {
		panic(fmt.Sprintf("query path %q registered twice", path))
	}
	r.routes[path] = h
}

// Handler returns the handler bound to path, or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	h, ok := r.routes[path]
	if !ok {
		return nil
	}
	return h
}
