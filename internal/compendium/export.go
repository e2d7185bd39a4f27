package compendium

import (
	"encoding/json"
	"fmt"
)

// Format selects the shape of exported entries.
type Format string

const (
	// FormatDefault exports entries as an object keyed by original name.
	FormatDefault Format = "default"
	// FormatLegacy exports entries as an array of objects carrying an "id".
	FormatLegacy Format = "legacy"
)

// ParseFormat parses an export format name. The empty name selects FormatDefault.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatDefault:
		return FormatDefault, nil
	case FormatLegacy:
		return FormatLegacy, nil
	default:
		return "", fmt.Errorf("unknown export format %q", name)
	}
}

// ExportFile is a translation file template built from extracted documents.
type ExportFile struct {
	Label  string
	Format Format

	names   []string
	entries map[string]map[string]any
}

// NewExportFile creates an empty template.
func NewExportFile(label string, format Format) *ExportFile {
	if format == "" {
		format = FormatDefault
	}

	return &ExportFile{
		Label:   label,
		Format:  format,
		entries: make(map[string]map[string]any),
	}
}

// Add records the template of the document originally named name. A later
// template for the same name replaces the earlier one in place.
func (f *ExportFile) Add(name string, tmpl map[string]any) {
	if tmpl == nil {
		tmpl = map[string]any{}
	}

	if _, ok := f.entries[name]; !ok {
		f.names = append(f.names, name)
	}

	f.entries[name] = tmpl
}

// Len returns the number of entries.
func (f *ExportFile) Len() int {
	return len(f.names)
}

// MarshalJSON implements json.Marshaler.
func (f *ExportFile) MarshalJSON() ([]byte, error) {
	if f.Format == FormatLegacy {
		list := make([]map[string]any, 0, len(f.names))

		for _, name := range f.names {
			entry := map[string]any{"id": name}
			for k, v := range f.entries[name] {
				entry[k] = v
			}

			list = append(list, entry)
		}

		return json.Marshal(struct {
			Label   string           `json:"label"`
			Entries []map[string]any `json:"entries"`
		}{Label: f.Label, Entries: list})
	}

	return json.Marshal(struct {
		Label   string                    `json:"label"`
		Entries map[string]map[string]any `json:"entries"`
	}{Label: f.Label, Entries: f.entries})
}

// Bytes renders the file as tab-indented JSON.
func (f *ExportFile) Bytes() ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export file: %w", err)
	}

	return data, nil
}

// FileName returns the translation file name of a collection.
func FileName(collection string) string {
	return collection + ".json"
}
