package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// wrapped adds one layer of context to a parent error.
type wrapped struct {
	msg    string
	parent error
}

func (w *wrapped) Error() string { return w.msg + ": " + w.parent.Error() }

func (w *wrapped) Cause() error { return w.parent }

// Format prints the message, and with %+v also the stack trace recorded
// at the innermost wrap.
func (w *wrapped) Format(s fmt.State, verb rune) {
	fmt.Fprint(s, w.Error())
	if verb != 'v' || !s.Flag('+') {
		return
	}
	var st errors.StackTrace
	walk(w, func(cur error) bool {
		if t, ok := cur.(stackTracer); ok {
			st = t.StackTrace()
			return true
		}
		return false
	})
	if st != nil {
		fmt.Fprintf(s, "\n%+v", st)
	}
}

// Wrap adds description to err. A nil err stays nil, so a function may
// end with `return errors.Wrap(err, "...")`. The stack is recorded on
// the first wrap only.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if !hasStack(err) {
		err = errors.WithStack(err)
	}
	return &wrapped{msg: description, parent: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Recover turns a panic into an ErrPanic stored in *err. Use it with
// defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

func hasStack(err error) bool {
	found := false
	walk(err, func(cur error) bool {
		_, found = cur.(stackTracer)
		return found
	})
	return found
}

// walk visits err and then each cause in turn until visit returns true
// or the chain ends.
func walk(err error, visit func(error) bool) {
	for err != nil {
		if visit(err) {
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}
