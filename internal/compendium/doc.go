// Package compendium holds the translation payload of a pack and the
// per-collection translation store built from it.
//
// A payload is decoded from one or more translation files and merged in
// load order. A Compendium pairs the merged payload with the effective
// schema of the pack's document type and answers translate and extract
// requests for documents of that pack. Stores are immutable once built and
// safe for concurrent use.
package compendium
