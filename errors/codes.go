package errors

// Root errors shared by every extension. Extensions register their own
// codes, such as the escrow package does for its state machine, with
// numbers above the ones used here.
var (
	ErrUnauthorized       = Register(2, "unauthorized")
	ErrNotFound           = Register(3, "not found")
	ErrMsg                = Register(4, "invalid message")
	ErrModel              = Register(5, "invalid model")
	ErrDuplicate          = Register(6, "duplicate")
	ErrHuman              = Register(7, "coding error")
	ErrImmutable          = Register(8, "cannot be modified")
	ErrEmpty              = Register(9, "value is empty")
	ErrState              = Register(10, "invalid state")
	ErrType               = Register(11, "invalid type")
	ErrInsufficientAmount = Register(12, "insufficient amount")
	ErrAmount             = Register(13, "invalid amount")
	ErrInput              = Register(14, "invalid input")
	ErrOverflow           = Register(16, "an operation cannot be completed due to value overflow")

	// ErrMetadata flags a model or message without a known schema.
	ErrMetadata = Register(17, "invalid metadata")

	// ErrDatabase is a storage failure. It is the only retryable class.
	ErrDatabase = Register(19, "store unavailable")

	// ErrPanic marks a recovered panic. Its message is never sent to
	// clients outside debug mode.
	ErrPanic = Register(111222, "panic")
)
