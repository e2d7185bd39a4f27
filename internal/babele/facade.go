package babele

import (
	"babele/internal/compendium"
	"babele/internal/document"
	"babele/internal/locale"
)

// Store returns the store of collection.
func (b *Babele) Store(collection string) (*compendium.Compendium, bool) {
	s, ok := b.snapshot().stores[collection]
	return s, ok
}

// Collections returns the collection ids of every store, sorted.
func (b *Babele) Collections() []string {
	return append([]string(nil), b.snapshot().collections...)
}

// IsTranslated reports whether collection has a store built from a
// translation payload.
func (b *Babele) IsTranslated(collection string) bool {
	s, ok := b.Store(collection)
	return ok && s.Translated()
}

// Translate returns the translated copy of doc. Documents of collections
// without a store, and documents without an entry in a static store, are
// returned unchanged. Field failures are logged; the partially translated
// document is still returned.
func (b *Babele) Translate(collection string, doc map[string]any, translationsOnly bool) map[string]any {
	s, ok := b.Store(collection)
	if !ok || !(s.HasTranslation(doc) || s.IsDynamic()) {
		return doc
	}

	out, err := s.Translate(doc, translationsOnly)
	if err != nil {
		b.logger.Printf("failed to translate %q in %s: %v", document.OriginalName(doc), collection, err)
	}

	return out
}

// TranslateField returns the translated value of one field of doc. The bool
// is false when collection has no store or the schema has no such field.
func (b *Babele) TranslateField(field, collection string, doc map[string]any) (any, bool) {
	s, ok := b.Store(collection)
	if !ok {
		return nil, false
	}

	v, ok, err := s.TranslateField(field, doc)
	if err != nil {
		b.logger.Printf("failed to translate field %s of %q in %s: %v", field, document.OriginalName(doc), collection, err)
	}

	return v, ok
}

// Extract returns the translation template of doc. Collections without a
// store yield an empty template.
func (b *Babele) Extract(collection string, doc map[string]any) map[string]any {
	s, ok := b.Store(collection)
	if !ok {
		return map[string]any{}
	}

	tmpl, err := s.Extract(doc)
	if err != nil {
		b.logger.Printf("failed to extract %q in %s: %v", document.OriginalName(doc), collection, err)
	}

	return tmpl
}

// ExtractField returns the current value of one field of doc.
func (b *Babele) ExtractField(collection, field string, doc map[string]any) (any, bool) {
	s, ok := b.Store(collection)
	if !ok {
		return nil, false
	}

	return s.ExtractField(field, doc)
}

// TranslateIndex translates the entries of a pack index in place with
// confirmed translations only, and returns index. Sorting the result is left
// to the caller; see Collator.
func (b *Babele) TranslateIndex(index []map[string]any, collection string) []map[string]any {
	for _, entry := range index {
		if entry == nil || document.IsTranslated(entry) {
			continue
		}

		translated := b.Translate(collection, entry, true)
		if translated == nil {
			continue
		}

		document.Merge(entry, translated)
	}

	return index
}

// Collator returns the name collator of the active language.
func (b *Babele) Collator() *locale.Collator {
	return locale.NewCollator(b.cfg.Lang)
}
