package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/treemosaic/treemosaic/pkg/errors"
	"github.com/treemosaic/treemosaic/pkg/observability"
	"github.com/treemosaic/treemosaic/pkg/scale"
	"github.com/treemosaic/treemosaic/pkg/sink"
	"github.com/treemosaic/treemosaic/pkg/treemap"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete prepare → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, items []treemap.Item, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.ItemCount = len(items)

	// Stage 1: Prepare
	prepareStart := time.Now()
	observability.Pipeline().OnPrepareStart(ctx, len(items))
	result.Ranked, result.ColorMin, result.ColorMax = treemap.Prepare(items, opts.PrepareOptions())
	result.Stats.PrepareTime = time.Since(prepareStart)
	result.Stats.RankedCount = len(result.Ranked)
	observability.Pipeline().OnPrepareComplete(ctx, result.Stats.RankedCount, result.Stats.PrepareTime)

	r.Logger.Info("prepared items",
		"in", result.Stats.ItemCount,
		"ranked", result.Stats.RankedCount,
		"duration", result.Stats.PrepareTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, result.Stats.RankedCount)
	result.Rects, result.RowCount = treemap.Layout(result.Ranked, opts.Width, opts.Height, opts.LayoutOptions())
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.TileCount = len(result.Rects)
	observability.Pipeline().OnLayoutComplete(ctx, result.Stats.TileCount, result.RowCount, result.Stats.LayoutTime)

	r.Logger.Info("computed layout",
		"tiles", result.Stats.TileCount,
		"rows", result.RowCount,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.Render(result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Render generates artifacts for each requested format from a computed
// layout.
func (r *Runner) Render(result *Result, opts Options) (map[string][]byte, error) {
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []sink.SVGOption{
				sink.WithColorScale(scale.New(result.ColorMin, result.ColorMax)),
				sink.WithIDSource(opts.IDs),
			}
			if opts.Labels {
				svgOpts = append(svgOpts, sink.WithLabels())
			}
			if opts.Gradients {
				svgOpts = append(svgOpts, sink.WithGradients())
			}
			artifacts[format] = sink.RenderSVG(result.Rects, opts.Width, opts.Height, svgOpts...)
		case FormatJSON:
			data, err := sink.RenderJSON(result.Rects, opts.Width, opts.Height,
				sink.WithRowCount(result.RowCount),
				sink.WithColorRange(result.ColorMin, result.ColorMax))
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
			artifacts[format] = data
		}
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
