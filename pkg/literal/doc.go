// Package literal defines the open value domain the renderer accepts and the
// classification oracle that maps an arbitrary Go value onto one of the
// closed set of renderable kinds. Values travel as plain `any`: strings,
// numbers, booleans, time.Time dates, time.Duration spans, Link references,
// pre-built markup nodes, widgets, sequences, and insertion-ordered Object
// mappings. Anything outside that set degrades to a visible placeholder
// rather than an error, so callers can hand the renderer untrusted or
// half-typed data without guarding every field.
package literal
