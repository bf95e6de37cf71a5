package errors

import "math"

// ValidateDimensions validates a container size. Width and height must be
// positive, finite numbers; the layout engine trusts its caller and does
// not re-check.
func ValidateDimensions(width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) {
		return New(ErrCodeInvalidDimensions, "container size cannot be NaN")
	}
	if math.IsInf(width, 0) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidDimensions, "container size cannot be infinite")
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "container size must be positive, got %gx%g", width, height)
	}
	return nil
}

// ValidatePrepareOptions validates preparation options at the boundary.
//
// Validation rules:
//   - Limit must not be negative (zero means unlimited)
//   - SizeMin and SizeMax must be non-negative and finite
//   - SizeMin must not exceed SizeMax when both are set
func ValidatePrepareOptions(limit int, sizeMin, sizeMax float64) error {
	if limit < 0 {
		return New(ErrCodeInvalidOptions, "limit must not be negative, got %d", limit)
	}
	if sizeMin < 0 || sizeMax < 0 {
		return New(ErrCodeInvalidOptions, "size bounds must not be negative, got min %g max %g", sizeMin, sizeMax)
	}
	if math.IsNaN(sizeMin) || math.IsNaN(sizeMax) || math.IsInf(sizeMin, 0) || math.IsInf(sizeMax, 0) {
		return New(ErrCodeInvalidOptions, "size bounds must be finite numbers")
	}
	if sizeMin > 0 && sizeMax > 0 && sizeMin > sizeMax {
		return New(ErrCodeInvalidOptions, "size min %g exceeds size max %g", sizeMin, sizeMax)
	}
	return nil
}

// ValidateFiniteValues rejects infinite numeric fields in item values.
// An infinite magnitude would corrupt every proportion downstream, so it
// is a fatal input error rather than a value to degrade on. NaN is not
// rejected here: the engine treats NaN magnitudes as zero and excludes
// them.
func ValidateFiniteValues(values ...float64) error {
	for _, v := range values {
		if math.IsInf(v, 0) {
			return New(ErrCodeInvalidItems, "item values must be finite, got %g", v)
		}
	}
	return nil
}

// ValidSortOrders is the set of supported sort orders.
var ValidSortOrders = map[string]bool{
	"value":     true,
	"entity_id": true,
	"label":     true,
	"default":   true,
}

// ValidateSortOrder checks that a sort order name is supported. The empty
// string is allowed and means "value".
func ValidateSortOrder(sortBy string) error {
	if sortBy == "" {
		return nil
	}
	if !ValidSortOrders[sortBy] {
		return New(ErrCodeInvalidOptions, "invalid sort order: %q (must be one of: value, entity_id, label, default)", sortBy)
	}
	return nil
}
