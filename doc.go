/*
Package vibe defines the common interfaces that tie the booking escrow
ledger together: conditions and addresses used as identities, the key-value
store abstraction, messages, transactions, handlers and decorators.

We pass context through context.Context between app, middleware, and
handlers. To do so, vibe defines some common keys to store info, such as
block height and chain id. Each extension, such as sigs, may add its own keys
to enrich the context with specific data.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level
modules overwriting the value (eg. height, chain id).
*/
package vibe
