package vibe

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/vibe-network/vibe/errors"
)

// Persistent values travel through the protobuf codec: models, messages
// and transactions alike.
type Persistent interface {
	proto.Message
}

// Msg asks the chain for one state transition, for example opening or
// releasing a booking escrow. Signatures live on the wrapping Tx.
type Msg interface {
	Persistent

	// Path routes the message to its handler, e.g. "escrow/open".
	// Only [0-9A-Za-z_\-/] is allowed.
	Path() string

	// Validate checks the message on its own, without any state.
	Validate() error
}

// Tx is the signed envelope a client submits. The application defines
// the concrete type and embeds whatever its decorators need.
type Tx interface {
	Persistent

	GetMsg() (Msg, error)
}

// GetPath is the route of the wrapped message, or "(missing)".
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err != nil || msg == nil {
		return "(missing)"
	}
	return msg.Path()
}

// LoadMsg copies the message carried by tx into destination and
// validates it.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return errors.Wrap(err, "cannot get transaction message")
	case msg == nil:
		return errors.Wrap(errors.ErrMsg, "no message")
	}
	if err := assignMsg(msg, destination); err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}

// TxDecoder turns raw transaction bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// assignMsg copies msg into destination. Both a pointer to the message type
// and a pointer to a pointer of the message type are accepted.
func assignMsg(msg Msg, destination interface{}) error {
	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	target := dst.Elem()
	src := reflect.ValueOf(msg)
	switch {
	case src.Type().AssignableTo(target.Type()):
		target.Set(src)
	case src.Kind() == reflect.Ptr && src.Elem().Type().AssignableTo(target.Type()):
		target.Set(src.Elem())
	default:
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	return nil
}
