// Package input loads item lists from JSON and TOML files and normalizes
// them into the engine's Item shape.
//
// Both formats share one document model: an optional defaults section for
// container size and engine options, and a list of items. Each item carries
// an identity, display fields, a signed value, an optional independent
// color value, and an optional history payload. Histories appear in the
// wild in two shapes, a bare number series or a structured record; the
// loader folds both into the tagged [Payload] type so downstream code never
// inspects raw decoder output.
//
// All boundary validation happens here. The layout engine itself trusts
// its caller and degrades gracefully on odd magnitudes, so the loader is
// the one place that rejects infinite values, malformed options, and
// unknown sort orders.
package input
