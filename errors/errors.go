package errors

import "fmt"

// Error is a root error with a unique ABCI code. Errors created at run
// time wrap one of them, so the code survives any amount of context.
type Error struct {
	code uint32
	desc string
}

// registry holds every code in use. Code 1 is the internal code given to
// errors that carry none.
var registry = map[uint32]*Error{internalABCICode: nil}

// Register declares a root error. It panics when the code is taken and
// is meant for package level vars only.
func Register(code uint32, description string) *Error {
	if prev, taken := registry[code]; taken {
		name := "internal"
		if prev != nil {
			name = prev.desc
		}
		panic(fmt.Sprintf("error code %d already registered as %q", code, name))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

func (e Error) Error() string { return e.desc }

// ABCICode is the response code sent to clients.
func (e Error) ABCICode() uint32 { return e.code }

// New wraps e with a description. It reads better than Wrap at the
// point of failure: ErrEmpty.New("booking id").
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrap(e, fmt.Sprintf(format, args...))
}

// Is reports whether err is e or wraps e. A nil *Error matches only a
// nil error, which lets tables use a nil want for success.
func (e *Error) Is(err error) bool {
	if e == nil {
		return errIsNil(err)
	}
	found := false
	walk(err, func(cur error) bool {
		found = cur == e
		return found
	})
	return found
}

// IsRetryable is true only for storage failures. Any other error means
// the request itself was refused.
func IsRetryable(err error) bool {
	return err != nil && ErrDatabase.Is(err)
}
