package escrow

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/vibetest"
	"github.com/vibe-network/vibe/x/cash"
)

func TestGenesis(t *testing.T) {
	depositor := vibetest.NewCondition().Address()
	counterparty := vibetest.NewCondition().Address()

	raw := fmt.Sprintf(`[{
		"depositor": "%X",
		"counterparty": "%X",
		"booking_id": "BKG-001",
		"verify_code": "4821",
		"amount": 250
	}]`, []byte(depositor), []byte(counterparty))
	opts := vibe.Options{
		optKey: json.RawMessage(raw),
		"conf": json.RawMessage(`{"escrow": {"metadata": {"schema": 1}, "max_booking_id_length": 16, "max_code_length": 6}}`),
	}

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	engine := NewEngine(&vibetest.Auth{}, NewRecordStore(NewBucket(), cash.NewController(cash.NewBucket())))
	esc, locked, err := engine.Lookup(db, "BKG-001", counterparty)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), locked)
	assert.Equal(t, depositor, esc.Depositor)

	conf, err := loadConfiguration(db)
	require.NoError(t, err)
	assert.Equal(t, int32(16), conf.MaxBookingIDLength)
}

func TestGenesisErrors(t *testing.T) {
	depositor := fmt.Sprintf("%X", []byte(vibetest.NewCondition().Address()))
	counterparty := fmt.Sprintf("%X", []byte(vibetest.NewCondition().Address()))
	entry := func(booking, code string, amount uint64) string {
		return fmt.Sprintf(`{"depositor": "%s", "counterparty": "%s", "booking_id": "%s", "verify_code": "%s", "amount": %d}`,
			depositor, counterparty, booking, code, amount)
	}

	cases := map[string]struct {
		raw     string
		conf    string
		wantErr *errors.Error
	}{
		"no escrow section": {
			raw: "",
		},
		"malformed": {
			raw:     `{"booking_id": 1}`,
			wantErr: errors.ErrInput,
		},
		"zero amount": {
			raw:     "[" + entry("BKG-001", "4821", 0) + "]",
			wantErr: ErrInvalidAmount,
		},
		"duplicate": {
			raw:     "[" + entry("BKG-001", "4821", 1) + "," + entry("BKG-001", "1111", 2) + "]",
			wantErr: ErrDuplicateEscrow,
		},
		"missing code": {
			raw:     "[" + entry("BKG-001", "", 1) + "]",
			wantErr: errors.ErrInput,
		},
		"booking id above configured limit": {
			raw:     "[" + entry("BKG-00001", "4821", 1) + "]",
			conf:    `{"escrow": {"metadata": {"schema": 1}, "max_booking_id_length": 8, "max_code_length": 4}}`,
			wantErr: errors.ErrInput,
		},
		"code above configured limit": {
			raw:     "[" + entry("BKG-001", "48210", 1) + "]",
			conf:    `{"escrow": {"metadata": {"schema": 1}, "max_booking_id_length": 8, "max_code_length": 4}}`,
			wantErr: errors.ErrInput,
		},
		"within configured limits": {
			raw:  "[" + entry("BKG-0001", "4821", 1) + "]",
			conf: `{"escrow": {"metadata": {"schema": 1}, "max_booking_id_length": 8, "max_code_length": 4}}`,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			opts := vibe.Options{}
			if tc.raw != "" {
				opts[optKey] = json.RawMessage(tc.raw)
			}
			if tc.conf != "" {
				opts["conf"] = json.RawMessage(tc.conf)
			}
			err := Initializer{}.FromGenesis(opts, store.MemStore())
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
