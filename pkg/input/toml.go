package input

import (
	"github.com/BurntSushi/toml"

	"github.com/treemosaic/treemosaic/pkg/errors"
)

// ParseTOML parses a TOML item document.
//
// Items are repeated [[item]] tables; the optional [defaults] table carries
// container size and engine options:
//
//	[defaults]
//	width = 800
//	height = 600
//	sort_by = "value"
//
//	[[item]]
//	entity_id = "sensor.solar"
//	label = "Solar"
//	value = 420.5
//	history = [390.0, 401.2, 420.5]
func ParseTOML(data []byte) (*File, error) {
	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse TOML item file")
	}
	return build(doc)
}
