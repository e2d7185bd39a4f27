// Package document provides helpers for the schemaless JSON documents the
// translation engine operates on.
//
// Documents are plain map[string]any values as produced by encoding/json.
// Fields are addressed with dotted paths:
//
//	name
//	system.description.value
//	prototypeToken.name
//
// Get and Set walk nested objects; Set creates intermediate objects on
// demand. Merge performs a recursive object merge where arrays and scalars
// of the source replace the destination value.
package document
