package input

import (
	"encoding/json"

	"github.com/treemosaic/treemosaic/pkg/errors"
)

// ParseJSON parses a JSON item document. The shape mirrors the TOML format
// with an "items" array and an optional "defaults" object.
func ParseJSON(data []byte) (*File, error) {
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse JSON item file")
	}
	return build(doc)
}
