// Package babele is the translation orchestrator.
//
// A Babele discovers the translation files of the active language across
// the registered module directories, the user translation directory and the
// system translation directory, merges them per collection, applies the
// global mapping overrides to the default schemas and builds one
// [compendium.Compendium] per translated pack. Once initialized it routes
// translate and extract requests to the store of the requested collection;
// collections without a store pass documents through unchanged.
//
// Initialization is the only phase that writes shared state. Afterwards
// every operation reads immutable stores and may be called concurrently.
package babele
