package babele

import (
	"babele/internal/document"
	"babele/internal/mapping"
)

var _ mapping.Resolver = (*Babele)(nil)

// TranslateDocument translates doc with the first translated store, in
// collection order, that has an entry for it. Only confirmed translations
// are applied.
func (b *Babele) TranslateDocument(doc map[string]any) (map[string]any, bool) {
	if doc == nil || document.IsTranslated(doc) {
		return nil, false
	}

	snap := b.snapshot()

	for _, collection := range snap.collections {
		s := snap.stores[collection]
		if !s.Translated() || !s.HasTranslation(doc) {
			continue
		}

		out, err := s.Translate(doc, true)
		if err != nil {
			b.logger.Printf("failed to translate %q in %s: %v", document.OriginalName(doc), collection, err)
		}

		return out, out != nil
	}

	return nil, false
}
