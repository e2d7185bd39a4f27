// Package pack is the host pack registry: pack metadata, folders and
// documents loaded from pack JSON files.
//
// A pack file is a JSON object with the pack metadata (name, packageName,
// packageType, type, label), an optional "folders" array and a "documents"
// array holding the full documents of the pack.
package pack
