package app

import (
	"github.com/gogo/protobuf/proto"

	"github.com/vibe-network/vibe"
	"github.com/vibe-network/vibe/errors"
)

// ResultsFromKeys is the key column of a query answer.
func ResultsFromKeys(models []vibe.Model) *ResultSet {
	return column(models, func(m vibe.Model) []byte { return m.Key })
}

// ResultsFromValues is the value column of a query answer.
func ResultsFromValues(models []vibe.Model) *ResultSet {
	return column(models, func(m vibe.Model) []byte { return m.Value })
}

func column(models []vibe.Model, pick func(vibe.Model) []byte) *ResultSet {
	set := &ResultSet{Results: make([][]byte, 0, len(models))}
	for _, m := range models {
		set.Results = append(set.Results, pick(m))
	}
	return set
}

// JoinResults pairs the key and value columns of a query answer back
// into models.
func JoinResults(keys, values *ResultSet) ([]vibe.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys for %d values",
			len(keys.Results), len(values.Results))
	}
	models := make([]vibe.Model, 0, len(keys.Results))
	for i, key := range keys.Results {
		models = append(models, vibe.Pair(key, values.Results[i]))
	}
	return models, nil
}

// UnmarshalOneResult decodes a value column expected to hold at most
// one model, such as the answer to a lookup by escrow key. An empty
// column leaves dest untouched.
func UnmarshalOneResult(raw []byte, dest vibe.Persistent) error {
	var set ResultSet
	if err := proto.Unmarshal(raw, &set); err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	switch n := len(set.Results); n {
	case 0:
		return nil
	case 1:
		if err := proto.Unmarshal(set.Results[0], dest); err != nil {
			return errors.Wrap(errors.ErrModel, err.Error())
		}
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "expected one result, got %d", n)
	}
}
