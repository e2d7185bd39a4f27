// Package mapping provides the declarative translation schema, the
// converter registry and the interpreter that applies a schema to a
// document in both directions.
//
// A schema maps field names to rules, per document type:
//
//	{
//	  "Item": {
//	    "name": "name",
//	    "description": "system.description.value"
//	  },
//	  "Actor": {
//	    "items": {"path": "items", "converter": "fromPack"},
//	    "tokenName": {"path": "prototypeToken.name", "converter": "name"}
//	  }
//	}
//
// # Rules
//
// A bare string names the path whose value is replaced verbatim by the
// entry value of the same field. An object names a path and a converter
// from the ConverterRegistry that merges the nested value at that path.
// Any other keys of the object (or the object under an explicit "mapping"
// key) form a sub-schema used by sub-document converters:
//
//	"items": {"path": "items", "converter": "adventureItems", "rarity": "system.rarity"}
//
// # Defaults and overrides
//
// Defaults carries the built-in schema for every DocumentType. Override
// files are merged on top field by field; an override rule without path or
// converter inherits them from the rule it overrides.
//
// # Static and dynamic schemas
//
// A schema is dynamic when at least one converter can produce output without
// an explicit translation entry (sub-documents resolved through other
// collections, table rows linked to other collections). Dynamic schemas are
// applied to every document; static ones only to documents with an entry.
package mapping
