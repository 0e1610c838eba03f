package sigs

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/crypto"
	"github.com/vibe-network/vibe/errors"
)

// SignCodeV1 opens every signed message. Bumping it invalidates all
// signatures made under the previous layout.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// BuildSignBytes returns the 64 byte digest a signer commits to:
//
//	sha512(SignCodeV1 | uint8 len(chainID) | chainID | uint64 BE seq | payload)
//
// Binding the chain and the sequence makes a signature useless on any
// other chain and for any other position in the signer's history.
func BuildSignBytes(payload []byte, chainID string, seq int64) ([]byte, error) {
	switch {
	case seq < 0:
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	case !vibe.IsValidChainID(chainID):
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	var buf bytes.Buffer
	buf.Write(SignCodeV1)
	buf.WriteByte(uint8(len(chainID)))
	buf.WriteString(chainID)
	_ = binary.Write(&buf, binary.BigEndian, uint64(seq))
	buf.Write(payload)

	digest := sha512.Sum512(buf.Bytes())
	return digest[:], nil
}

// BuildSignBytesTx is BuildSignBytes over the tx's own sign bytes.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(payload, chainID, seq)
}

// SignTx signs tx as the seq-th transaction of signer on chainID.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}
