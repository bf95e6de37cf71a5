// Package pipeline provides the core visualization pipeline for Treemosaic.
//
// This package implements the complete prepare → layout → render pipeline
// that can be used by the CLI and embedding applications. Centralizing the
// flow keeps behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Prepare: Rank, invert, limit, and clamp raw items
//  2. Layout: Compute rectangle positions for the ranked items
//  3. Render: Generate output in various formats (SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Width:   800,
//	    Height:  600,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, items, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/treemosaic/treemosaic/pkg/errors"
	"github.com/treemosaic/treemosaic/pkg/treemap"
)

const (
	// DefaultWidth is the default container width.
	DefaultWidth = 800.0

	// DefaultHeight is the default container height.
	DefaultHeight = 600.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for saved configurations.
type Options struct {
	// Prepare options
	Inverse   bool    `json:"inverse,omitempty"`
	Ascending bool    `json:"ascending,omitempty"`
	Limit     int     `json:"limit,omitempty"`
	SizeMin   float64 `json:"size_min,omitempty"`
	SizeMax   float64 `json:"size_max,omitempty"`

	// Layout options
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
	SortBy        string  `json:"sort_by,omitempty"`
	CompressRange *bool   `json:"compress_range,omitempty"`
	EqualSize     bool    `json:"equal_size,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Labels    bool     `json:"labels,omitempty"`
	Gradients bool     `json:"gradients,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger      `json:"-"`
	IDs    treemap.IDSource `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Ranked is the prepared item list, ordered for selection.
	Ranked []treemap.Item

	// ColorMin and ColorMax span the color values of the raw input.
	ColorMin float64
	ColorMax float64

	// Rects are the computed rectangles.
	Rects []treemap.Rect

	// RowCount is the number of distinct rows in the layout.
	RowCount int

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount   int
	RankedCount int
	TileCount   int
	PrepareTime time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks all fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePrepareOptions(o.Limit, o.SizeMin, o.SizeMax); err != nil {
		return err
	}
	if err := errors.ValidateSortOrder(o.SortBy); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.IDs == nil {
		o.IDs = treemap.NewSequentialIDs()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// PrepareOptions converts the pipeline options into engine prepare options.
func (o *Options) PrepareOptions() treemap.PrepareOptions {
	return treemap.PrepareOptions{
		Inverse:   o.Inverse,
		Ascending: o.Ascending,
		Limit:     o.Limit,
		SizeMin:   o.SizeMin,
		SizeMax:   o.SizeMax,
	}
}

// LayoutOptions converts the pipeline options into engine layout options.
func (o *Options) LayoutOptions() treemap.LayoutOptions {
	opts := treemap.DefaultLayoutOptions()
	if o.CompressRange != nil {
		opts.CompressRange = *o.CompressRange
	}
	opts.EqualSize = o.EqualSize
	opts.Ascending = o.Ascending
	if o.SortBy != "" {
		opts.SortBy = treemap.SortBy(o.SortBy)
	}
	return opts
}
