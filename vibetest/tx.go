package vibetest

import (
	"github.com/vibe-network/vibe"
)

// Tx carries a single message. A non nil Err is what GetMsg fails
// with, which lets tests exercise decoding failures.
type Tx struct {
	Msg vibe.Msg
	Err error
}

var _ vibe.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (vibe.Msg, error) { return tx.Msg, tx.Err }
func (tx *Tx) Reset()                    { *tx = Tx{} }
func (tx *Tx) String() string            { return "Tx{" + vibe.GetPath(tx) + "}" }
func (*Tx) ProtoMessage()                {}

// Msg routes to RoutePath and fails validation with Err, if set.
type Msg struct {
	RoutePath string
	Err       error
}

var _ vibe.Msg = (*Msg)(nil)

func (m *Msg) Path() string    { return m.RoutePath }
func (m *Msg) Validate() error { return m.Err }
func (m *Msg) Reset()          { *m = Msg{} }
func (m *Msg) String() string  { return "Msg{" + m.RoutePath + "}" }
func (*Msg) ProtoMessage()     {}
