package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treemosaic/treemosaic/pkg/errors"
	"github.com/treemosaic/treemosaic/pkg/treemap"
)

func testItems() []treemap.Item {
	items := make([]treemap.Item, 0, 3)
	for _, it := range []struct {
		id    string
		value float64
	}{
		{"sensor.solar", 420},
		{"sensor.grid", -180},
		{"sensor.battery", 45},
	} {
		items = append(items, treemap.Item{
			EntityID:   it.id,
			Value:      it.value,
			SizeValue:  math.Abs(it.value),
			SortValue:  it.value,
			ColorValue: it.value,
		})
	}
	return items
}

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
}

func TestExecute(t *testing.T) {
	opts := Options{
		Width:   100,
		Height:  100,
		Formats: []string{FormatSVG, FormatJSON},
	}

	result, err := quietRunner().Execute(context.Background(), testItems(), opts)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.ItemCount)
	assert.Equal(t, 3, result.Stats.RankedCount)
	assert.Equal(t, 3, result.Stats.TileCount)
	assert.Len(t, result.Rects, 3)
	assert.Positive(t, result.RowCount)

	assert.Equal(t, -180.0, result.ColorMin)
	assert.Equal(t, 420.0, result.ColorMax)

	require.Contains(t, result.Artifacts, FormatSVG)
	require.Contains(t, result.Artifacts, FormatJSON)
	assert.True(t, strings.HasPrefix(string(result.Artifacts[FormatSVG]), "<svg"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(result.Artifacts[FormatJSON], &doc))
	assert.Equal(t, 100.0, doc["width"])
}

func TestExecuteDefaults(t *testing.T) {
	result, err := quietRunner().Execute(context.Background(), testItems(), Options{})
	require.NoError(t, err)

	require.Contains(t, result.Artifacts, FormatSVG, "svg is the default format")
	assert.NotContains(t, result.Artifacts, FormatJSON)
	assert.Contains(t, string(result.Artifacts[FormatSVG]), `viewBox="0 0 800.00 600.00"`)
}

func TestExecuteInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative limit", Options{Limit: -1}},
		{"unknown sort order", Options{SortBy: "favorite"}},
		{"unknown format", Options{Formats: []string{"png"}}},
		{"negative width", Options{Width: -5, Height: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quietRunner().Execute(context.Background(), testItems(), tt.opts)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidOptions, errors.GetCode(err))
		})
	}
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := quietRunner().Execute(ctx, testItems(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{}
	require.NoError(t, opts.ValidateAndSetDefaults())

	assert.Equal(t, DefaultWidth, opts.Width)
	assert.Equal(t, DefaultHeight, opts.Height)
	assert.Equal(t, []string{FormatSVG}, opts.Formats)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.IDs)

	before := opts
	require.NoError(t, opts.ValidateAndSetDefaults())
	assert.Equal(t, before.Width, opts.Width)
	assert.Equal(t, before.Formats, opts.Formats)
}

func TestLayoutOptionsConversion(t *testing.T) {
	opts := Options{}
	assert.True(t, opts.LayoutOptions().CompressRange, "compression defaults on")
	assert.Equal(t, treemap.SortByValue, opts.LayoutOptions().SortBy)

	off := false
	opts = Options{CompressRange: &off, SortBy: "label", Ascending: true, EqualSize: true}
	lo := opts.LayoutOptions()
	assert.False(t, lo.CompressRange)
	assert.Equal(t, treemap.SortByLabel, lo.SortBy)
	assert.True(t, lo.Ascending)
	assert.True(t, lo.EqualSize)
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat(FormatSVG))
	assert.NoError(t, ValidateFormat(FormatJSON))
	assert.Error(t, ValidateFormat("pdf"))
	assert.Error(t, ValidateFormats([]string{FormatSVG, "png"}))
}
