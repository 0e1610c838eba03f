package app

import (
	"github.com/gogo/protobuf/proto"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (vibe.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ vibe.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the single message carried by this transaction.
func (tx *Tx) GetMsg() (vibe.Msg, error) {
	var msgs []vibe.Msg
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	if tx.OpenEscrowMsg != nil {
		msgs = append(msgs, tx.OpenEscrowMsg)
	}
	if tx.ReleaseEscrowMsg != nil {
		msgs = append(msgs, tx.ReleaseEscrowMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrInput, "missing message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "%d messages in one transaction", len(msgs))
	}
}

// GetSignBytes returns the bytes to sign: the transaction
// serialized without any signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signatures = nil
	return proto.Marshal(&unsigned)
}
