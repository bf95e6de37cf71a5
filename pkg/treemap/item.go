package treemap

// SortBy selects which item field governs display and layout order.
type SortBy string

// Supported sort orders.
const (
	// SortByValue orders by magnitude, largest rectangle first.
	SortByValue SortBy = "value"
	// SortByEntityID orders lexicographically by entity ID.
	SortByEntityID SortBy = "entity_id"
	// SortByLabel orders lexicographically by display label.
	SortByLabel SortBy = "label"
	// SortByDefault preserves the input order.
	SortByDefault SortBy = "default"
)

// Item is a single weighted input to the layout engine.
//
// The identity and display fields (EntityID, Label, Icon, Category, Payload)
// are copied verbatim onto the output rectangle; the engine never inspects
// Payload. The numeric fields drive sizing, ordering, and coloring
// independently of one another.
type Item struct {
	// EntityID identifies the item. May be empty.
	EntityID string
	// Label is the display name.
	Label string
	// Icon is an optional icon reference.
	Icon string
	// Category is an optional caller-defined grouping flag.
	Category string
	// Payload is opaque caller data (e.g. chart state) passed through
	// unchanged to the output rectangle.
	Payload any

	// Value is the signed magnitude as given by the caller. Negative
	// values are allowed (e.g. a loss).
	Value float64
	// SizeValue is the non-negative scalar used for area allocation.
	// Prepare overwrites it; callers conventionally seed it with
	// abs(Value).
	SizeValue float64
	// SortValue is the signed scalar used for display ordering. It starts
	// equal to Value and is negated when inversion is applied, keeping
	// "largest rectangle" and "first in order" consistent.
	SortValue float64
	// ColorValue is a signed scalar independent of size, used only for the
	// color-scale range. Never mutated by this package.
	ColorValue float64
}

// Rect is a laid-out item: all Item fields plus a position and size in
// container coordinate units (top-left origin, x right, y down).
type Rect struct {
	Item
	X, Y          float64
	Width, Height float64
}

// Area returns the surface area of the rectangle.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// PrepareOptions configures [Prepare].
type PrepareOptions struct {
	// Inverse flips sizing so that smaller raw values produce larger
	// rectangles.
	Inverse bool
	// Ascending flips the selection order.
	Ascending bool
	// Limit keeps only the first Limit items after selection ordering.
	// Zero or negative means no limit.
	Limit int
	// SizeMin floors every surviving item's SizeValue, in item units.
	// Zero means unset; a floor of 15% of the observed maximum applies
	// instead.
	SizeMin float64
	// SizeMax caps every surviving item's SizeValue, in item units.
	// Zero means unset.
	SizeMax float64
}

// LayoutOptions configures [Layout].
//
// The zero value disables range compression; start from
// [DefaultLayoutOptions] to get the documented defaults.
type LayoutOptions struct {
	// CompressRange applies a square-root transform to magnitudes so small
	// values remain visible next to a dominant maximum. Default true.
	CompressRange bool
	// EqualSize forces the uniform grid path regardless of value spread.
	EqualSize bool
	// Ascending mirrors the layout so the largest rectangle moves from
	// top-left to bottom-right (grid: reverses placement order).
	Ascending bool
	// SortBy selects the ordering field. Empty means SortByValue.
	SortBy SortBy
}

// DefaultLayoutOptions returns the documented defaults: range compression
// on, squarified path, descending order by value.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		CompressRange: true,
		SortBy:        SortByValue,
	}
}
