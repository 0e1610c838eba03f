package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
	"github.com/vibe-network/vibe/store"
	"github.com/vibe-network/vibe/vibetest/assert"
)

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		Conf        *testConf
		WantSaveErr *errors.Error
	}{
		"valid": {
			Conf: &testConf{Limit: 12, Name: "limits"},
		},
		"zero limit cannot be saved": {
			Conf:        &testConf{Name: "limits"},
			WantSaveErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "test", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			if tc.WantSaveErr != nil {
				return
			}

			var got testConf
			if err := Load(db, "test", &got); err != nil {
				t.Fatalf("cannot load configuration: %s", err)
			}
			assert.Equal(t, tc.Conf, &got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	var got testConf
	err := Load(store.MemStore(), "missing", &got)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		Raw     string
		WantErr *errors.Error
	}{
		"valid": {
			Raw: `{"test": {"limit": 3, "name": "abc"}}`,
		},
		"missing package": {
			Raw:     `{"other": {"limit": 3}}`,
			WantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			Raw:     `{"test": {"limit": 0}}`,
			WantErr: errors.ErrInput,
		},
		"malformed": {
			Raw:     `{"test": "limit"}`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			opts := vibe.Options{"conf": json.RawMessage(tc.Raw)}
			var conf testConf
			if err := InitConfig(db, opts, "test", &conf); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr != nil {
				return
			}
			var got testConf
			assert.Nil(t, Load(db, "test", &got))
			assert.Equal(t, conf, got)
		})
	}
}

type testConf struct {
	Limit int32  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	Name  string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *testConf) Reset()         { *m = testConf{} }
func (m *testConf) String() string { return proto.CompactTextString(m) }
func (*testConf) ProtoMessage()    {}

func (m *testConf) Validate() error {
	if m.Limit <= 0 {
		return errors.Wrap(errors.ErrInput, "limit")
	}
	return nil
}
