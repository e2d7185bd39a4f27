package compendium

import (
	"babele/internal/document"
	"babele/internal/mapping"
)

// Compendium is the translation store of one collection: the merged payload
// bound to the effective schema of the collection's document type.
type Compendium struct {
	meta       Metadata
	payload    *Payload
	mapper     *mapping.Mapper
	dynamic    bool
	translated bool
}

// New builds the store of a collection. The payload is copied; a nil payload
// yields a store without entries that reports itself untranslated.
func New(meta Metadata, payload *Payload, env *mapping.Env) *Compendium {
	translated := payload != nil

	payload = payload.Clone()
	if payload == nil {
		payload = &Payload{}
	}

	if payload.Collection == "" {
		payload.Collection = meta.Collection()
	}

	if env == nil {
		env = &mapping.Env{}
	}

	mapper := env.Mapper(meta.Type, payload.Mapping)

	return &Compendium{
		meta:       meta,
		payload:    payload,
		mapper:     mapper,
		dynamic:    mapper.IsDynamic(),
		translated: translated,
	}
}

// Metadata returns the pack metadata of the store.
func (c *Compendium) Metadata() Metadata {
	return c.meta
}

// Collection returns the collection id of the store.
func (c *Compendium) Collection() string {
	return c.payload.Collection
}

// Label returns the translated label, or the pack label when the payload
// carries none.
func (c *Compendium) Label() string {
	if c.payload.Label != "" {
		return c.payload.Label
	}

	return c.meta.Label
}

// Translated reports whether the store was built from a translation payload.
func (c *Compendium) Translated() bool {
	return c.translated
}

// IsDynamic reports whether the effective schema translates documents that
// have no entry.
func (c *Compendium) IsDynamic() bool {
	return c.dynamic
}

// Mapper returns the schema interpreter of the store.
func (c *Compendium) Mapper() *mapping.Mapper {
	return c.mapper
}

// Entries returns a copy of the payload entries.
func (c *Compendium) Entries() map[string]any {
	return document.CloneMap(c.payload.Entries)
}

// Folders returns a copy of the pack folder translations.
func (c *Compendium) Folders() map[string]string {
	out := make(map[string]string, len(c.payload.Folders))
	for k, v := range c.payload.Folders {
		out[k] = v
	}

	return out
}

// TranslateFolderName returns the translation of a pack folder name.
func (c *Compendium) TranslateFolderName(name string) (string, bool) {
	s, ok := c.payload.Folders[name]
	return s, ok && s != ""
}

// Entry returns the translation entry of doc, looked up by _id and then by
// original name. A bare string entry translates the name.
func (c *Compendium) Entry(doc map[string]any) (map[string]any, bool) {
	if doc == nil || len(c.payload.Entries) == 0 {
		return nil, false
	}

	keys := make([]string, 0, 2)
	if id, ok := document.Key(doc["_id"]); ok {
		keys = append(keys, id)
	}

	if name := document.OriginalName(doc); name != "" {
		keys = append(keys, name)
	}

	for _, key := range keys {
		switch e := c.payload.Entries[key].(type) {
		case map[string]any:
			return e, true
		case string:
			if e != "" {
				return map[string]any{"name": e}, true
			}
		}
	}

	return nil, false
}

// HasTranslation reports whether the payload has an entry for doc.
func (c *Compendium) HasTranslation(doc map[string]any) bool {
	_, ok := c.Entry(doc)
	return ok
}

// Translate returns the translated copy of doc. Already translated
// documents are returned as is; documents without an entry are returned
// unchanged unless the schema is dynamic. Field failures are returned joined
// alongside the partially translated document.
func (c *Compendium) Translate(doc map[string]any, translationsOnly bool) (map[string]any, error) {
	if doc == nil || document.IsTranslated(doc) {
		return doc, nil
	}

	entry, ok := c.Entry(doc)
	if !ok && !c.dynamic {
		return doc, nil
	}

	return c.mapper.Translate(doc, entry, ok, mapping.Options{TranslationsOnly: translationsOnly})
}

// TranslateField returns the translated value of one schema field of doc.
// When nothing is translated the current value is returned.
func (c *Compendium) TranslateField(field string, doc map[string]any) (any, bool, error) {
	if doc == nil {
		return nil, false, nil
	}

	if document.IsTranslated(doc) {
		v, ok := c.ExtractField(field, doc)
		return v, ok, nil
	}

	entry, ok := c.Entry(doc)
	if !ok && !c.dynamic {
		v, ok := c.ExtractField(field, doc)
		return v, ok, nil
	}

	value, translated, err := c.mapper.TranslateField(field, doc, entry, mapping.Options{})
	if translated {
		return value, true, err
	}

	v, ok := c.ExtractField(field, doc)

	return v, ok, err
}

// Extract returns the translation template of doc.
func (c *Compendium) Extract(doc map[string]any) (map[string]any, error) {
	if doc == nil {
		return map[string]any{}, nil
	}

	return c.mapper.Extract(doc)
}

// ExtractField returns the current value of one schema field of doc.
func (c *Compendium) ExtractField(field string, doc map[string]any) (any, bool) {
	if doc == nil {
		return nil, false
	}

	return c.mapper.ExtractField(field, doc)
}

// Overrides returns the collection-specific schema rules of the payload.
func (c *Compendium) Overrides() mapping.Schema {
	return c.payload.Mapping.Clone()
}
