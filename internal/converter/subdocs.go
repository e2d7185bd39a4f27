package converter

import (
	"errors"
	"fmt"

	"babele/internal/document"
	"babele/internal/mapping"
)

// SubDocuments translates embedded documents of another type (the items of
// an actor, the scenes of an adventure) with that type's schema, merged with
// the rule's sub-schema. The translation holds one entry per embedded
// document keyed by _id or name, in object or legacy array form.
//
// With Lookup set, an embedded document without an entry is translated by
// the first translated collection that has one, unless only confirmed
// translations are requested.
type SubDocuments struct {
	Type   mapping.DocumentType
	Lookup bool
}

// Translate implements mapping.Converter.
func (c SubDocuments) Translate(ctx *mapping.Context, original, translation any) (any, error) {
	if ctx == nil {
		return nil, nil
	}

	if single, ok := original.(map[string]any); ok {
		out, err := c.translateOne(ctx, c.mapper(ctx), single, c.entries(translation))
		return out, err
	}

	docs, ok := document.AsSlice(original)
	if !ok {
		return nil, nil
	}

	sub := c.mapper(ctx)
	entries := c.entries(translation)
	out := make([]any, len(docs))

	var errs []error

	for i, item := range docs {
		out[i] = item

		doc, ok := item.(map[string]any)
		if !ok {
			continue
		}

		translated, err := c.translateOne(ctx, sub, doc, entries)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to translate %s %q: %w", c.Type, document.OriginalName(doc), err))
		}

		out[i] = translated
	}

	return out, errors.Join(errs...)
}

func (c SubDocuments) mapper(ctx *mapping.Context) *mapping.Mapper {
	return ctx.SubMapper(c.Type)
}

func (c SubDocuments) entries(translation any) map[string]any {
	entries, _ := document.Entries(translation)
	return entries
}

func (c SubDocuments) translateOne(ctx *mapping.Context, sub *mapping.Mapper, doc, entries map[string]any) (map[string]any, error) {
	if document.IsTranslated(doc) {
		return doc, nil
	}

	if entry, ok := subEntry(doc, entries); ok {
		return sub.Translate(doc, entry, true, ctx.Options)
	}

	if !c.Lookup || ctx.Options.TranslationsOnly {
		return doc, nil
	}

	if resolver := ctx.Resolver(); resolver != nil {
		if translated, ok := resolver.TranslateDocument(doc); ok {
			return translated, nil
		}
	}

	return doc, nil
}

// subEntry finds the entry of an embedded document by _id, then by name.
// A bare string entry translates the name.
func subEntry(doc, entries map[string]any) (map[string]any, bool) {
	if len(entries) == 0 {
		return nil, false
	}

	for _, key := range []string{"_id", "name"} {
		k, ok := document.Key(doc[key])
		if !ok {
			continue
		}

		switch t := entries[k].(type) {
		case map[string]any:
			return t, true
		case string:
			if t != "" {
				return map[string]any{"name": t}, true
			}
		}
	}

	return nil, false
}

// Extract implements mapping.Converter. Entries are keyed by the original
// name of each embedded document.
func (c SubDocuments) Extract(ctx *mapping.Context, value any) (any, error) {
	if ctx == nil {
		return nil, nil
	}

	sub := c.mapper(ctx)

	if single, ok := value.(map[string]any); ok {
		tmpl, err := sub.Extract(single)
		if len(tmpl) == 0 {
			return nil, err
		}

		return map[string]any{document.OriginalName(single): tmpl}, err
	}

	docs, ok := document.AsSlice(value)
	if !ok {
		return nil, nil
	}

	out := map[string]any{}

	var errs []error

	for _, item := range docs {
		doc, ok := item.(map[string]any)
		if !ok {
			continue
		}

		name := document.OriginalName(doc)
		if name == "" {
			continue
		}

		tmpl, err := sub.Extract(doc)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to extract %s %q: %w", c.Type, name, err))
		}

		if len(tmpl) > 0 {
			out[name] = tmpl
		}
	}

	if len(out) == 0 {
		return nil, errors.Join(errs...)
	}

	return out, errors.Join(errs...)
}
