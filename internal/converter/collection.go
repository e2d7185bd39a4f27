package converter

import (
	"errors"
	"strconv"

	"babele/internal/document"
	"babele/internal/mapping"
)

// Collection merges a list of sub-items, each of which is a small mapping
// target of its own: the matched translation entry is applied with Schema,
// merged with the rule's sub-schema.
type Collection struct {
	// Key is the identifying field of an element.
	Key string

	// Schema maps element fields to element paths.
	Schema mapping.Schema

	// Positional keys elements by their index when the identifying value is
	// empty or shared by several elements.
	Positional bool
}

// Pages returns the journal pages converter.
func Pages() Collection {
	return Collection{
		Key: "name",
		Schema: mapping.Schema{
			"name":    {Path: "name"},
			"text":    {Path: "text.content"},
			"caption": {Path: "image.caption"},
			"src":     {Path: "src"},
			"width":   {Path: "video.width"},
			"height":  {Path: "video.height"},
		},
		Positional: true,
	}
}

// PlaylistSounds returns the playlist sounds converter.
func PlaylistSounds() Collection {
	return Collection{
		Key: "name",
		Schema: mapping.Schema{
			"name":        {Path: "name"},
			"description": {Path: "description"},
		},
	}
}

func (c Collection) mapper(ctx *mapping.Context) *mapping.Mapper {
	if ctx == nil {
		return mapping.NewMapper(0, c.Schema, nil)
	}

	var owner mapping.DocumentType
	if ctx.Mapper != nil {
		owner = ctx.Mapper.Type()
	}

	return mapping.NewMapper(owner, c.Schema.Merge(ctx.Rule.Mapping), ctx.Env)
}

// keys returns the lookup key of every element.
func (c Collection) keys(items []any) []string {
	keys := make([]string, len(items))
	seen := make(map[string]int, len(items))

	for i, item := range items {
		m, _ := item.(map[string]any)
		keys[i], _ = m[c.Key].(string)
		seen[keys[i]]++
	}

	if !c.Positional {
		return keys
	}

	for i, key := range keys {
		if key == "" || seen[key] > 1 {
			keys[i] = strconv.Itoa(i)
		}
	}

	return keys
}

// entry normalizes the translation of one element. A bare string translates
// the identifying field.
func (c Collection) entry(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, len(t) > 0
	case string:
		if t == "" {
			return nil, false
		}

		return map[string]any{c.Key: t}, true
	default:
		return nil, false
	}
}

// Translate implements mapping.Converter.
func (c Collection) Translate(ctx *mapping.Context, original, translation any) (any, error) {
	items, ok := document.AsSlice(original)
	if !ok {
		return nil, nil
	}

	translations, ok := document.Entries(translation)
	if !ok || len(translations) == 0 {
		return nil, nil
	}

	var opts mapping.Options
	if ctx != nil {
		opts = ctx.Options
	}

	m := c.mapper(ctx)
	keys := c.keys(items)
	out := make([]any, len(items))

	var errs []error

	for i, item := range items {
		out[i] = item

		element, ok := item.(map[string]any)
		if !ok || keys[i] == "" {
			continue
		}

		entry, ok := c.entry(translations[keys[i]])
		if !ok {
			continue
		}

		overlay, err := m.Map(element, entry, opts)
		if err != nil {
			errs = append(errs, err)
		}

		out[i] = document.Merge(document.CloneMap(element), overlay)
	}

	return out, errors.Join(errs...)
}

// Extract implements mapping.Converter.
func (c Collection) Extract(ctx *mapping.Context, value any) (any, error) {
	items, ok := document.AsSlice(value)
	if !ok {
		return nil, nil
	}

	m := c.mapper(ctx)
	keys := c.keys(items)
	out := map[string]any{}

	var errs []error

	for i, item := range items {
		element, ok := item.(map[string]any)
		if !ok || keys[i] == "" {
			continue
		}

		tmpl, err := m.Extract(element)
		if err != nil {
			errs = append(errs, err)
		}

		if len(tmpl) > 0 {
			out[keys[i]] = tmpl
		}
	}

	if len(out) == 0 {
		return nil, errors.Join(errs...)
	}

	return out, errors.Join(errs...)
}

// RequiresEntry implements mapping.EntryBound.
func (Collection) RequiresEntry() bool { return true }
