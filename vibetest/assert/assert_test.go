package assert

import (
	"fmt"
	"testing"

	"github.com/vibe-network/vibe/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		ErrWant  error
		ErrGot   error
		WantFail bool
	}{
		"same error": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.ErrEmpty,
			WantFail: false,
		},
		"compared to nil": {
			ErrWant:  nil,
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
		"both nil": {
			ErrWant:  nil,
			ErrGot:   nil,
			WantFail: false,
		},
		"wrapped": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.Wrap(errors.ErrEmpty, "test"),
			WantFail: false,
		},
		"different kind": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.Wrap(errors.ErrInput, "test"),
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{}
			IsErr(mock, tc.ErrWant, tc.ErrGot)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestNil(t *testing.T) {
	var nilErr *errors.Error
	cases := map[string]struct {
		Value    interface{}
		WantFail bool
	}{
		"nil":             {Value: nil},
		"typed nil":       {Value: nilErr},
		"nil slice":       {Value: []byte(nil)},
		"non nil":         {Value: errors.ErrEmpty, WantFail: true},
		"not a reference": {Value: 4, WantFail: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{}
			Nil(mock, tc.Value)
			if failed := mock.failcalls > 0; failed != tc.WantFail {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestPanics(t *testing.T) {
	mock := &tmock{}
	Panics(mock, func() { panic("boom") })
	if mock.failcalls != 0 {
		t.Fatal("panic was not detected")
	}
	Panics(mock, func() {})
	if mock.failcalls != 1 {
		t.Fatal("missing panic was not reported")
	}
}

// tmock records failures instead of stopping the test.
type tmock struct {
	failcalls int
}

func (m *tmock) Helper() {}

func (m *tmock) Fatal(args ...interface{}) {
	m.failcalls++
}

func (m *tmock) Fatalf(format string, args ...interface{}) {
	m.Fatal(fmt.Sprintf(format, args...))
}
