package converter

import (
	"babele/internal/document"
	"babele/internal/mapping"
)

// faceFields are the translatable fields of a card face and of a card back.
var faceFields = []string{"name", "text"}

// DeckCards merges the cards of a deck, matched by name. Besides name,
// description and suit, the faces of a card are merged by position and its
// back as a whole.
type DeckCards struct{}

// Translate implements mapping.Converter.
func (DeckCards) Translate(_ *mapping.Context, original, translation any) (any, error) {
	cards, ok := document.AsSlice(original)
	if !ok {
		return nil, nil
	}

	translations, ok := document.Entries(translation)
	if !ok || len(translations) == 0 {
		return nil, nil
	}

	out := make([]any, len(cards))

	for i, item := range cards {
		out[i] = item

		card, ok := item.(map[string]any)
		if !ok {
			continue
		}

		name, _ := card["name"].(string)

		entry, ok := translations[name].(map[string]any)
		if name == "" || !ok {
			continue
		}

		out[i] = translateCard(card, entry)
	}

	return out, nil
}

func translateCard(card, entry map[string]any) map[string]any {
	out := document.CloneMap(card)

	for _, field := range []string{"name", "description", "suit"} {
		if v, ok := entry[field].(string); ok && v != "" {
			out[field] = v
		}
	}

	if faces, ok := document.AsSlice(out["faces"]); ok {
		translated, _ := document.AsSlice(entry["faces"])

		for i, face := range faces {
			if i >= len(translated) {
				break
			}

			f, ok := face.(map[string]any)
			if !ok {
				continue
			}

			tf, _ := translated[i].(map[string]any)
			mergeStrings(f, tf, faceFields)
		}

		out["faces"] = faces
	}

	if back, ok := out["back"].(map[string]any); ok {
		tb, _ := entry["back"].(map[string]any)
		mergeStrings(back, tb, faceFields)
	}

	return out
}

// mergeStrings copies the non-empty string fields of src onto dst.
func mergeStrings(dst, src map[string]any, fields []string) {
	for _, field := range fields {
		if v, ok := src[field].(string); ok && v != "" {
			dst[field] = v
		}
	}
}

// pickStrings returns the non-empty string fields of src, or nil.
func pickStrings(src map[string]any, fields []string) map[string]any {
	var out map[string]any

	for _, field := range fields {
		if v, ok := src[field].(string); ok && v != "" {
			if out == nil {
				out = map[string]any{}
			}

			out[field] = v
		}
	}

	return out
}

// Extract implements mapping.Converter.
func (DeckCards) Extract(_ *mapping.Context, value any) (any, error) {
	cards, ok := document.AsSlice(value)
	if !ok {
		return nil, nil
	}

	out := map[string]any{}

	for _, item := range cards {
		card, ok := item.(map[string]any)
		if !ok {
			continue
		}

		name, _ := card["name"].(string)
		if name == "" {
			continue
		}

		tmpl := pickStrings(card, []string{"name", "description", "suit"})
		if tmpl == nil {
			tmpl = map[string]any{}
		}

		if faces, ok := document.AsSlice(card["faces"]); ok && len(faces) > 0 {
			list := make([]any, len(faces))
			for i, face := range faces {
				f, _ := face.(map[string]any)

				picked := pickStrings(f, faceFields)
				if picked == nil {
					picked = map[string]any{}
				}

				list[i] = picked
			}

			tmpl["faces"] = list
		}

		if back, ok := card["back"].(map[string]any); ok {
			if picked := pickStrings(back, faceFields); picked != nil {
				tmpl["back"] = picked
			}
		}

		out[name] = tmpl
	}

	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

// RequiresEntry implements mapping.EntryBound.
func (DeckCards) RequiresEntry() bool { return true }
