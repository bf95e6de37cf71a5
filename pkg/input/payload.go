package input

import (
	"github.com/treemosaic/treemosaic/pkg/errors"
)

// PayloadKind discriminates the two history shapes found in item files.
type PayloadKind int

const (
	// PayloadSeries is a bare array of numbers, ordered oldest first.
	PayloadSeries PayloadKind = iota + 1
	// PayloadRecord is a structured table of named fields.
	PayloadRecord
)

// Payload is the normalized history attached to an item. Exactly one of
// Series or Record is populated, matching Kind. Consumers that receive no
// payload treat it as "no chart to render", never as an error.
type Payload struct {
	Kind   PayloadKind
	Series []float64
	Record map[string]any
}

// normalizePayload converts raw decoder output into a Payload. Both the
// JSON and TOML decoders produce []any for arrays and map[string]any for
// tables, so one normalizer covers both formats. A nil input means the
// item has no history and yields a nil payload.
func normalizePayload(raw any, entityID string) (*Payload, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		series := make([]float64, 0, len(v))
		for _, elem := range v {
			n, ok := toFloat(elem)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidItems,
					"item %q: history series must contain only numbers, got %T", entityID, elem)
			}
			series = append(series, n)
		}
		return &Payload{Kind: PayloadSeries, Series: series}, nil
	case map[string]any:
		return &Payload{Kind: PayloadRecord, Record: v}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidItems,
			"item %q: history must be a number array or a table, got %T", entityID, raw)
	}
}

// toFloat accepts the numeric types the two decoders emit. JSON numbers
// are always float64; the TOML decoder keeps integers as int64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
