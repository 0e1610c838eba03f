package escrow

import (
	"strings"
	"testing"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/vibetest"
)

func TestOpenMsgValidate(t *testing.T) {
	meta := &vibe.Metadata{Schema: 1}
	counterparty := vibetest.NewCondition().Address()

	cases := map[string]struct {
		msg     *OpenMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &OpenMsg{Metadata: meta, Counterparty: counterparty, BookingID: "BKG-001", VerifyCode: "4821", Amount: 1},
		},
		"missing metadata": {
			msg:     &OpenMsg{Counterparty: counterparty, BookingID: "BKG-001", VerifyCode: "4821", Amount: 1},
			wantErr: errors.ErrMetadata,
		},
		"zero amount": {
			msg:     &OpenMsg{Metadata: meta, Counterparty: counterparty, BookingID: "BKG-001", VerifyCode: "4821"},
			wantErr: ErrInvalidAmount,
		},
		"long booking id": {
			msg:     &OpenMsg{Metadata: meta, Counterparty: counterparty, BookingID: strings.Repeat("x", 33), VerifyCode: "4821", Amount: 1},
			wantErr: errors.ErrInput,
		},
		"long code": {
			msg:     &OpenMsg{Metadata: meta, Counterparty: counterparty, BookingID: "BKG-001", VerifyCode: "1234567", Amount: 1},
			wantErr: errors.ErrInput,
		},
		"missing counterparty": {
			msg:     &OpenMsg{Metadata: meta, BookingID: "BKG-001", VerifyCode: "4821", Amount: 1},
			wantErr: errors.ErrEmpty,
		},
		"bad depositor": {
			msg:     &OpenMsg{Metadata: meta, Depositor: vibe.Address("short"), Counterparty: counterparty, BookingID: "BKG-001", VerifyCode: "4821", Amount: 1},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestReleaseMsgValidate(t *testing.T) {
	meta := &vibe.Metadata{Schema: 1}

	cases := map[string]struct {
		msg     *ReleaseMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &ReleaseMsg{Metadata: meta, BookingID: "BKG-001", VerifyCode: "4821"},
		},
		"explicit releaser": {
			msg: &ReleaseMsg{Metadata: meta, BookingID: "BKG-001", VerifyCode: "4821", Releaser: vibetest.NewCondition().Address()},
		},
		"missing code": {
			msg:     &ReleaseMsg{Metadata: meta, BookingID: "BKG-001"},
			wantErr: errors.ErrInput,
		},
		"missing booking id": {
			msg:     &ReleaseMsg{Metadata: meta, VerifyCode: "4821"},
			wantErr: errors.ErrInput,
		},
		"bad releaser": {
			msg:     &ReleaseMsg{Metadata: meta, BookingID: "BKG-001", VerifyCode: "4821", Releaser: vibe.Address("short")},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
