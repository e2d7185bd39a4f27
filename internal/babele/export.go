package babele

import (
	"babele/internal/compendium"
	"babele/internal/document"
)

// ExportTemplate builds the translation file template of a collection from
// its documents, keyed by original name. Collections without a store yield
// entries with empty templates.
func (b *Babele) ExportTemplate(collection, label string, docs []map[string]any, format compendium.Format) *compendium.ExportFile {
	if label == "" {
		if s, ok := b.Store(collection); ok {
			label = s.Metadata().Label
		}
	}

	file := compendium.NewExportFile(label, format)

	for _, doc := range docs {
		name := document.OriginalName(doc)
		if name == "" {
			continue
		}

		file.Add(name, b.Extract(collection, doc))
	}

	return file
}
