package treemap

import (
	"cmp"
	"slices"
)

// Three independent orderings are in play and must not be conflated:
//
//   - selection order decides which items survive PrepareOptions.Limit,
//   - display order decides grid cell placement,
//   - layout order decides squarified row-building order.
//
// Each is a named function here so they can diverge deliberately and be
// tested separately.

// sortSelection ranks items for limit selection: descending by SizeValue,
// always, so Limit keeps the items with the largest rectangles no matter
// which direction they will be displayed in. The caller reverses the
// survivors afterwards when the display direction calls for it.
func sortSelection(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(b.SizeValue, a.SizeValue)
	})
}

// displayOrder returns a copy of items in grid placement order. Value sorts
// descending by SortValue; entity_id and label sort lexicographically
// ascending; default preserves input order. Ascending reverses the result
// for every sort except default.
func displayOrder(items []Item, sortBy SortBy, ascending bool) []Item {
	ordered := make([]Item, len(items))
	copy(ordered, items)

	switch sortBy {
	case SortByEntityID:
		slices.SortStableFunc(ordered, func(a, b Item) int {
			return cmp.Compare(a.EntityID, b.EntityID)
		})
	case SortByLabel:
		slices.SortStableFunc(ordered, func(a, b Item) int {
			return cmp.Compare(a.Label, b.Label)
		})
	case SortByDefault:
		return ordered
	default: // SortByValue or unset
		slices.SortStableFunc(ordered, func(a, b Item) int {
			return cmp.Compare(b.SortValue, a.SortValue)
		})
	}

	if ascending {
		slices.Reverse(ordered)
	}
	return ordered
}

// sortLayout orders weighted entries for squarified row building. The
// squarify algorithm needs largest-first to minimize aspect-ratio
// distortion, so value sorts descending by normalized area. The entity_id
// and label orders govern placement independent of area, and default keeps
// input order. The display Ascending flag never reorders here; it is
// applied afterwards as a pure coordinate mirror.
func sortLayout(entries []weighted, sortBy SortBy) {
	switch sortBy {
	case SortByEntityID:
		slices.SortStableFunc(entries, func(a, b weighted) int {
			return cmp.Compare(a.item.EntityID, b.item.EntityID)
		})
	case SortByLabel:
		slices.SortStableFunc(entries, func(a, b weighted) int {
			return cmp.Compare(a.item.Label, b.item.Label)
		})
	case SortByDefault:
		// input order
	default: // SortByValue or unset
		slices.SortStableFunc(entries, func(a, b weighted) int {
			return cmp.Compare(b.area, a.area)
		})
	}
}
