/*
Package errors implements the coded errors used across vibe.

Every error returned by an extension should wrap one of the root errors
registered with Register. The registered code travels to the client as the
ABCI response code, which lets callers tell a rejected escrow release from an
unavailable store without parsing messages.

Create errors at the point of failure with ErrXyz.New, ErrXyz.Newf or
Wrap(err, "..."), so a stacktrace is attached once, at the lowest frame.
Test the kind of an error with ErrXyz.Is(err).

Once you have an error, you can use fmt to get more context
	%s is just the error message
	%+v is the full stack trace
*/
package errors
