package input

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/treemosaic/treemosaic/pkg/errors"
	"github.com/treemosaic/treemosaic/pkg/treemap"
)

// File is a fully validated item document, ready to feed into the engine.
// Width and Height are zero when the file sets no container size; callers
// apply their own defaults.
type File struct {
	Width  float64
	Height float64

	PrepareOptions treemap.PrepareOptions
	LayoutOptions  treemap.LayoutOptions

	Items []treemap.Item
}

// fileDoc is the wire shape shared by both formats. TOML items arrive as
// repeated [[item]] tables, JSON items as an "items" array.
type fileDoc struct {
	Defaults rawDefaults `toml:"defaults" json:"defaults"`
	Items    []rawItem   `toml:"item" json:"items"`
}

type rawDefaults struct {
	Width         float64 `toml:"width" json:"width"`
	Height        float64 `toml:"height" json:"height"`
	Inverse       bool    `toml:"inverse" json:"inverse"`
	Ascending     bool    `toml:"ascending" json:"ascending"`
	Limit         int     `toml:"limit" json:"limit"`
	SizeMin       float64 `toml:"size_min" json:"size_min"`
	SizeMax       float64 `toml:"size_max" json:"size_max"`
	SortBy        string  `toml:"sort_by" json:"sort_by"`
	CompressRange *bool   `toml:"compress_range" json:"compress_range"`
	EqualSize     bool    `toml:"equal_size" json:"equal_size"`
}

type rawItem struct {
	EntityID   string   `toml:"entity_id" json:"entity_id"`
	Label      string   `toml:"label" json:"label"`
	Icon       string   `toml:"icon" json:"icon"`
	Category   string   `toml:"category" json:"category"`
	Value      float64  `toml:"value" json:"value"`
	ColorValue *float64 `toml:"color_value" json:"color_value"`
	History    any      `toml:"history" json:"history"`
}

// Load reads and parses an item file, dispatching on the file extension.
// Supported extensions are .toml and .json.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "item file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read item file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported item file extension %q (use .toml or .json)", filepath.Ext(path))
	}
}

// build validates a decoded document and converts it into engine items.
func build(doc fileDoc) (*File, error) {
	d := doc.Defaults
	if d.Width != 0 || d.Height != 0 {
		if err := errors.ValidateDimensions(d.Width, d.Height); err != nil {
			return nil, err
		}
	}
	if err := errors.ValidatePrepareOptions(d.Limit, d.SizeMin, d.SizeMax); err != nil {
		return nil, err
	}
	if err := errors.ValidateSortOrder(d.SortBy); err != nil {
		return nil, err
	}

	layoutOpts := treemap.DefaultLayoutOptions()
	if d.CompressRange != nil {
		layoutOpts.CompressRange = *d.CompressRange
	}
	layoutOpts.EqualSize = d.EqualSize
	layoutOpts.Ascending = d.Ascending
	if d.SortBy != "" {
		layoutOpts.SortBy = treemap.SortBy(d.SortBy)
	}

	f := &File{
		Width:  d.Width,
		Height: d.Height,
		PrepareOptions: treemap.PrepareOptions{
			Inverse:   d.Inverse,
			Ascending: d.Ascending,
			Limit:     d.Limit,
			SizeMin:   d.SizeMin,
			SizeMax:   d.SizeMax,
		},
		LayoutOptions: layoutOpts,
		Items:         make([]treemap.Item, 0, len(doc.Items)),
	}

	for _, raw := range doc.Items {
		item, err := buildItem(raw)
		if err != nil {
			return nil, err
		}
		f.Items = append(f.Items, item)
	}

	return f, nil
}

// buildItem seeds the derived numeric fields the engine expects: size from
// the value's magnitude, sort order from the signed value, and color from
// the explicit color value when given, the signed value otherwise.
func buildItem(raw rawItem) (treemap.Item, error) {
	colorValue := raw.Value
	if raw.ColorValue != nil {
		colorValue = *raw.ColorValue
	}
	if err := errors.ValidateFiniteValues(raw.Value, colorValue); err != nil {
		return treemap.Item{}, errors.Wrap(errors.ErrCodeInvalidItems, err, "item %q", raw.EntityID)
	}

	payload, err := normalizePayload(raw.History, raw.EntityID)
	if err != nil {
		return treemap.Item{}, err
	}

	item := treemap.Item{
		EntityID:   raw.EntityID,
		Label:      raw.Label,
		Icon:       raw.Icon,
		Category:   raw.Category,
		Value:      raw.Value,
		SizeValue:  math.Abs(raw.Value),
		SortValue:  raw.Value,
		ColorValue: colorValue,
	}
	if payload != nil {
		item.Payload = payload
	}
	return item, nil
}
