package converter

import (
	"fmt"
	"strings"

	"babele/internal/document"
	"babele/internal/mapping"
)

// resultTextFields lists the textual fields of a table row, by precedence.
var resultTextFields = []string{"text", "description", "name"}

// compendiumPrefix starts the uuid of a document stored in a pack.
const compendiumPrefix = "Compendium."

// TableResults merges the rows of a roll table. A row is matched by its
// range key "{low}-{high}", then by its text. Rows without a translation
// that reference a document of a pack are translated through that pack.
// Weights and ranges are never modified.
type TableResults struct{}

// RangeKey returns the "{low}-{high}" key of a table row.
func RangeKey(row map[string]any) (string, bool) {
	r, ok := document.AsSlice(row["range"])
	if !ok || len(r) != 2 {
		return "", false
	}

	low, ok := document.Key(r[0])
	if !ok {
		return "", false
	}

	high, ok := document.Key(r[1])
	if !ok {
		return "", false
	}

	return low + "-" + high, true
}

// textField returns the name of the textual field of row.
func textField(row map[string]any) string {
	for _, field := range resultTextFields {
		if _, ok := row[field].(string); ok {
			return field
		}
	}

	return resultTextFields[0]
}

// Translate implements mapping.Converter.
func (TableResults) Translate(ctx *mapping.Context, original, translation any) (any, error) {
	rows, ok := document.AsSlice(original)
	if !ok {
		return nil, nil
	}

	translations, _ := document.Entries(translation)

	var resolver mapping.Resolver
	if ctx != nil {
		resolver = ctx.Resolver()
	}

	out := make([]any, len(rows))

	for i, item := range rows {
		out[i] = item

		row, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if translated, ok := translateRow(row, translations); ok {
			out[i] = translated
			continue
		}

		if translated, ok := lookupRow(row, resolver); ok {
			out[i] = translated
		}
	}

	return out, nil
}

func translateRow(row, translations map[string]any) (map[string]any, bool) {
	if len(translations) == 0 {
		return nil, false
	}

	field := textField(row)

	entry, ok := lookupRowEntry(row, field, translations)
	if !ok {
		return nil, false
	}

	out := document.CloneMap(row)

	switch t := entry.(type) {
	case string:
		if t == "" {
			return nil, false
		}

		out[field] = t
	case map[string]any:
		written := false

		for _, f := range resultTextFields {
			if v, ok := t[f].(string); ok && v != "" {
				out[f] = v
				written = true
			}
		}

		if !written {
			return nil, false
		}
	default:
		return nil, false
	}

	return out, true
}

func lookupRowEntry(row map[string]any, field string, translations map[string]any) (any, bool) {
	if key, ok := RangeKey(row); ok {
		if entry, ok := translations[key]; ok {
			return entry, true
		}
	}

	if text, _ := row[field].(string); text != "" {
		if entry, ok := translations[text]; ok {
			return entry, true
		}
	}

	return nil, false
}

func lookupRow(row map[string]any, resolver mapping.Resolver) (map[string]any, bool) {
	if resolver == nil {
		return nil, false
	}

	collection := resultCollection(row)
	if collection == "" {
		return nil, false
	}

	field := textField(row)

	text, _ := row[field].(string)
	if text == "" {
		return nil, false
	}

	value, ok := resolver.TranslateField("name", collection, map[string]any{"name": text})
	if !ok {
		return nil, false
	}

	s, ok := value.(string)
	if !ok || s == "" || s == text {
		return nil, false
	}

	out := document.CloneMap(row)
	out[field] = s

	return out, true
}

// resultCollection returns the pack collection a row points to, from its
// documentCollection or from a "Compendium.<package>.<pack>.<...>" uuid.
func resultCollection(row map[string]any) string {
	if c, _ := row["documentCollection"].(string); strings.Contains(c, ".") {
		return c
	}

	uuid, _ := row["documentUuid"].(string)
	if !strings.HasPrefix(uuid, compendiumPrefix) {
		return ""
	}

	parts := strings.Split(strings.TrimPrefix(uuid, compendiumPrefix), ".")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}

	return fmt.Sprintf("%s.%s", parts[0], parts[1])
}

// Extract implements mapping.Converter.
func (TableResults) Extract(_ *mapping.Context, value any) (any, error) {
	rows, ok := document.AsSlice(value)
	if !ok {
		return nil, nil
	}

	out := map[string]any{}

	for _, item := range rows {
		row, ok := item.(map[string]any)
		if !ok {
			continue
		}

		text, _ := row[textField(row)].(string)
		if text == "" {
			continue
		}

		key, ok := RangeKey(row)
		if !ok {
			key = text
		}

		out[key] = text
	}

	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}
