package compendium

import (
	"encoding/json"
	"errors"
	"fmt"

	"babele/internal/document"
	"babele/internal/mapping"
)

// ErrMalformedPayload is returned for translation files that cannot be decoded.
var ErrMalformedPayload = errors.New("malformed translation file")

// Payload is the content of one translation file, or the merge of several.
type Payload struct {
	// Collection is the collection id the payload applies to.
	Collection string `json:"collection,omitempty"`

	// Label is the translated pack label.
	Label string `json:"label,omitempty"`

	// Entries maps original names (or ids) to schema-shaped translations.
	Entries map[string]any `json:"entries,omitempty"`

	// Mapping overrides the default schema for this collection only.
	Mapping mapping.Schema `json:"mapping,omitempty"`

	// Folders maps original pack folder names to translated ones.
	Folders map[string]string `json:"folders,omitempty"`
}

type rawPayload struct {
	Collection string         `json:"collection"`
	Label      *string        `json:"label"`
	Entries    any            `json:"entries"`
	Mapping    mapping.Schema `json:"mapping"`
	Folders    map[string]any `json:"folders"`
}

// UnmarshalJSON accepts entries in object form or in the legacy array form.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw rawPayload

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	out := Payload{
		Collection: raw.Collection,
		Mapping:    raw.Mapping,
	}

	if raw.Label != nil {
		out.Label = *raw.Label
	}

	if raw.Entries != nil {
		entries, ok := document.Entries(raw.Entries)
		if !ok {
			return fmt.Errorf("entries must be an object or an array, got %T", raw.Entries)
		}

		out.Entries = entries
	}

	for name, v := range raw.Folders {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}

		if out.Folders == nil {
			out.Folders = make(map[string]string, len(raw.Folders))
		}

		out.Folders[name] = s
	}

	*p = out

	return nil
}

// ParsePayload decodes a translation file. Decoding failures wrap
// ErrMalformedPayload.
func ParsePayload(data []byte) (*Payload, error) {
	var p Payload

	err := document.Unmarshal(data, &p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return &p, nil
}

// Clone returns a copy of p whose maps can be modified independently.
func (p *Payload) Clone() *Payload {
	if p == nil {
		return nil
	}

	out := &Payload{
		Collection: p.Collection,
		Label:      p.Label,
		Entries:    document.CloneMap(p.Entries),
		Mapping:    p.Mapping.Clone(),
	}

	if p.Folders != nil {
		out.Folders = make(map[string]string, len(p.Folders))
		for k, v := range p.Folders {
			out.Folders[k] = v
		}
	}

	return out
}

// Merge returns the union of payloads in load order: the last non-empty label
// wins; entries, mapping rules and folders are shallow key unions where the
// later payload wins per key. Nil payloads contribute nothing. The result is
// nil when every payload is nil.
func Merge(payloads ...*Payload) *Payload {
	var out *Payload

	for _, p := range payloads {
		if p == nil {
			continue
		}

		if out == nil {
			out = p.Clone()
			continue
		}

		if p.Collection != "" {
			out.Collection = p.Collection
		}

		if p.Label != "" {
			out.Label = p.Label
		}

		for k, v := range p.Entries {
			if out.Entries == nil {
				out.Entries = make(map[string]any, len(p.Entries))
			}

			out.Entries[k] = document.Clone(v)
		}

		for k, v := range p.Mapping {
			if out.Mapping == nil {
				out.Mapping = make(mapping.Schema, len(p.Mapping))
			}

			out.Mapping[k] = v.Clone()
		}

		for k, v := range p.Folders {
			if out.Folders == nil {
				out.Folders = make(map[string]string, len(p.Folders))
			}

			out.Folders[k] = v
		}
	}

	return out
}
