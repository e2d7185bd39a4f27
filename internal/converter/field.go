package converter

import (
	"babele/internal/document"
	"babele/internal/mapping"
)

// MappedField re-applies the translation of another field of the owning
// schema to the rule's path, e.g. the document name onto the token name.
// An explicit string translation for the rule itself takes precedence. Nothing
// is written when the target path holds no value.
type MappedField struct {
	Field string
}

// Translate implements mapping.Converter.
func (c MappedField) Translate(ctx *mapping.Context, original, translation any) (any, error) {
	if original == nil {
		return nil, nil
	}

	if s, ok := translation.(string); ok && s != "" {
		return s, nil
	}

	if ctx == nil || ctx.Mapper == nil {
		return nil, nil
	}

	value, ok, err := ctx.Mapper.TranslateField(c.Field, ctx.Document, ctx.Entry, ctx.Options)
	if err != nil || !ok {
		return nil, err
	}

	return value, nil
}

// Extract implements mapping.Converter. The value is derived from another
// field, so it is omitted from templates.
func (MappedField) Extract(*mapping.Context, any) (any, error) {
	return nil, nil
}

// RequiresEntry implements mapping.EntryBound.
func (MappedField) RequiresEntry() bool { return true }

// FieldCollection translates the identifying field of every element of a
// list. The translation maps original values to translated strings.
type FieldCollection struct {
	Field string
}

// Translate implements mapping.Converter.
func (c FieldCollection) Translate(_ *mapping.Context, original, translation any) (any, error) {
	items, ok := document.AsSlice(original)
	if !ok {
		return nil, nil
	}

	translations, ok := translation.(map[string]any)
	if !ok || len(translations) == 0 {
		return nil, nil
	}

	out := make([]any, len(items))

	for i, item := range items {
		out[i] = item

		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		key, _ := m[c.Field].(string)
		if key == "" {
			continue
		}

		value := c.translatedValue(translations[key])
		if value == "" {
			continue
		}

		translated := document.CloneMap(m)
		translated[c.Field] = value
		out[i] = translated
	}

	return out, nil
}

func (c FieldCollection) translatedValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		s, _ := t[c.Field].(string)
		return s
	default:
		return ""
	}
}

// Extract implements mapping.Converter.
func (c FieldCollection) Extract(_ *mapping.Context, value any) (any, error) {
	items, ok := document.AsSlice(value)
	if !ok {
		return nil, nil
	}

	out := map[string]any{}

	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if key, _ := m[c.Field].(string); key != "" {
			out[key] = key
		}
	}

	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

// RequiresEntry implements mapping.EntryBound.
func (FieldCollection) RequiresEntry() bool { return true }
