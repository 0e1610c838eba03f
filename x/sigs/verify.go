package sigs

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// VerifyTxSignatures checks every signature on tx and bumps each
// signer's sequence in db. The result is never nil, but it is empty
// for an unsigned tx. The first bad signature aborts the whole tx.
func VerifyTxSignatures(db vibe.KVStore, tx SignedTx, chainID string) ([]vibe.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()
	signers := make([]vibe.Condition, 0, len(sigs))
	for i, sig := range sigs {
		cond, err := VerifySignature(db, sig, payload, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, cond)
	}
	return signers, nil
}

// VerifySignature checks a single signature over payload. On success
// the signer's account is saved with its sequence advanced by one and
// the signer condition is returned.
func VerifySignature(db vibe.KVStore, sig *StdSignature, payload []byte, chainID string) (vibe.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !sig.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}

	accounts := NewBucket()
	obj, err := accounts.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	if err := AsUser(obj).CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := accounts.Save(db, obj); err != nil {
		return nil, err
	}
	return sig.Pubkey.Condition(), nil
}
