package mapping

import (
	"maps"
	"slices"
)

//go:generate go tool stringer -type=DocumentType -trimprefix=Type -output=documenttype_string.go

// DocumentType identifies the kind of document a schema applies to.
type DocumentType int

const (
	_ DocumentType = iota // zero value is an unsupported type

	TypeAdventure
	TypeActor
	TypeCards
	TypeFolder
	TypeItem
	TypeJournalEntry
	TypeMacro
	TypePlaylist
	TypeRollTable
	TypeScene
)

// documentTypes lists the supported types in declaration order.
var documentTypes = []DocumentType{
	TypeAdventure,
	TypeActor,
	TypeCards,
	TypeFolder,
	TypeItem,
	TypeJournalEntry,
	TypeMacro,
	TypePlaylist,
	TypeRollTable,
	TypeScene,
}

// DocumentTypes returns every supported document type.
func DocumentTypes() []DocumentType {
	return slices.Clone(documentTypes)
}

// DocumentTypeNames returns the names of every supported document type.
func DocumentTypeNames() []string {
	names := make([]string, len(documentTypes))
	for i, t := range documentTypes {
		names[i] = t.String()
	}

	return names
}

// ParseDocumentType returns the type with the given name.
func ParseDocumentType(name string) (DocumentType, bool) {
	for _, t := range documentTypes {
		if t.String() == name {
			return t, true
		}
	}

	return 0, false
}

// IsValid returns true for supported document types.
func (t DocumentType) IsValid() bool {
	return t >= TypeAdventure && t <= TypeScene
}

// MarshalText implements encoding.TextMarshaler.
func (t DocumentType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return []byte{}, nil
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// the zero (unsupported) type rather than failing, so host metadata for
// other document kinds can still be read.
func (t *DocumentType) UnmarshalText(text []byte) error {
	parsed, _ := ParseDocumentType(string(text))
	*t = parsed

	return nil
}

// FieldRule describes how one schema field is translated.
//
// JSON/YAML forms:
//   - Bare path: "system.description.value"
//   - Structured: {"path": "items", "converter": "fromPack"}
//   - Structured with sub-schema: {"path": "items", "converter": "adventureItems", "rarity": "system.rarity"}
type FieldRule struct {
	// Path is the dotted document path the field reads from and writes to.
	Path string

	// Converter names the ConverterRegistry entry merging the value at Path.
	// Empty for verbatim rules.
	Converter string

	// Mapping is the sub-schema applied to nested sub-documents.
	Mapping Schema
}

// IsConverted returns true if the rule dispatches to a converter.
func (r FieldRule) IsConverted() bool {
	return r.Converter != ""
}

// isBare reports whether the rule only names a path.
func (r FieldRule) isBare() bool {
	return r.Converter == "" && len(r.Mapping) == 0
}

// Clone returns a deep copy of the rule.
func (r FieldRule) Clone() FieldRule {
	r.Mapping = r.Mapping.Clone()
	return r
}

// merge applies an override on top of r. A bare override replaces the rule;
// a structured override keeps r's path and converter unless it sets them and
// merges the sub-schemas.
func (r FieldRule) merge(override FieldRule) FieldRule {
	if override.isBare() && override.Path != "" {
		return override.Clone()
	}

	out := r.Clone()
	if override.Path != "" {
		out.Path = override.Path
	}

	if override.Converter != "" {
		out.Converter = override.Converter
	}

	out.Mapping = r.Mapping.Merge(override.Mapping)

	return out
}

// Schema maps field names to translation rules for one document type.
type Schema map[string]FieldRule

// Fields returns the field names in sorted order.
func (s Schema) Fields() []string {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns a deep copy of the schema. A nil schema yields nil.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}

	out := make(Schema, len(s))
	for k, v := range s {
		out[k] = v.Clone()
	}

	return out
}

// Merge returns a new schema with override applied field by field on top of s.
func (s Schema) Merge(override Schema) Schema {
	if len(s) == 0 && len(override) == 0 {
		return nil
	}

	out := s.Clone()
	if out == nil {
		out = Schema{}
	}

	for field, rule := range override {
		base, ok := out[field]
		if !ok {
			out[field] = rule.Clone()
			continue
		}

		out[field] = base.merge(rule)
	}

	return out
}

// MappingFile is the root of a global mapping override file: schemas keyed
// by document type name.
type MappingFile map[string]Schema
