package errors

import (
	"errors"
	"fmt"
	"reflect"
)

// SuccessABCICode is the response code of an accepted request.
const SuccessABCICode = 0

// Errors without a registered code are reported under code 1 with a
// fixed message, so internals do not leak to clients.
const (
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

type coder interface {
	ABCICode() uint32
}

// ABCIInfo is the code and log of the response for err. The log of an
// uncoded error is hidden unless debug is set, and debug also adds the
// stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

// Redact replaces uncoded errors and panics with a generic internal
// error. Debug mode keeps err as is.
func Redact(err error, debug bool) error {
	if debug || errIsNil(err) {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}

// abciCode is the code of the first coded error in the cause chain.
func abciCode(err error) uint32 {
	code := internalABCICode
	walk(err, func(cur error) bool {
		c, ok := cur.(coder)
		if ok {
			code = c.ABCICode()
		}
		return ok
	})
	return code
}

// errIsNil also catches a typed nil pointer stored in an error.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
