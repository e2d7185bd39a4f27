// Package converter provides the built-in field converters.
//
// Each converter governs one collection-shaped field of a document: an ordered
// list of sub-items (pages, sounds, cards, table rows, embedded documents) or
// a single nested value. On translate the converter merges the original value
// with the field's translation entry; on extract it produces the translation
// template for that value, shaped exactly like an importable entry.
//
// Collection converters share one matching rule: elements are matched by
// exact, case-sensitive equality of their identifying field (name, or text
// where no name exists). Unmatched elements are returned unchanged and the
// element order is preserved.
//
// RegisterDefaults installs every built-in converter under its default name.
package converter
