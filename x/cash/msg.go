package cash

import (
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

const (
	pathSendMsg = "cash/send"

	// maxMemoSize bounds the free text a sender may attach, in bytes.
	maxMemoSize = 128
)

var _ vibe.Msg = (*SendMsg)(nil)

func (SendMsg) Path() string { return pathSendMsg }

// Validate rejects empty transfers and malformed addresses. It cannot
// check that the source holds the amount.
func (s *SendMsg) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	switch {
	case s.Amount == 0:
		return errors.Wrap(errors.ErrAmount, "non-positive SendMsg")
	case len(s.Memo) > maxMemoSize:
		return errors.Wrapf(errors.ErrInput, "memo longer than %d bytes", maxMemoSize)
	}
	if err := s.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	return errors.Wrap(s.Destination.Validate(), "destination")
}
