package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babele/internal/document"
	"babele/internal/mapping"
)

func actorDoc() map[string]any {
	return map[string]any{
		"_id":  "actor1",
		"name": "Knight",
		"items": []any{
			map[string]any{"_id": "i1", "name": "Sword", "system": map[string]any{"description": map[string]any{"value": "A blade"}}},
			map[string]any{"_id": "i2", "name": "Shield"},
			map[string]any{"_id": "i3", "name": "Potion"},
		},
	}
}

func TestFromPack(t *testing.T) {
	resolver := &fakeResolver{docs: map[string]map[string]any{"Potion": {"name": "Poción"}}}
	env := newEnv(resolver)
	m := env.Mapper(mapping.TypeActor, nil)

	entry := map[string]any{
		"name": "Caballero",
		"items": map[string]any{
			"Sword": map[string]any{"name": "Espada", "description": "Una hoja"},
			"i2":    "Escudo",
		},
	}

	out, err := m.Translate(actorDoc(), entry, true, mapping.Options{})
	require.NoError(t, err)

	items := out["items"].([]any)
	require.Len(t, items, 3)

	sword := items[0].(map[string]any)
	assert.Equal(t, "Espada", sword["name"])
	assert.Equal(t, "Una hoja", sword["system"].(map[string]any)["description"].(map[string]any)["value"])
	assert.True(t, document.IsTranslated(sword))
	assert.Equal(t, "Sword", document.OriginalName(sword))

	assert.Equal(t, "Escudo", items[1].(map[string]any)["name"], "matched by _id")
	assert.Equal(t, "Poción", items[2].(map[string]any)["name"], "translated by another collection")
}

func TestFromPackTranslationsOnly(t *testing.T) {
	resolver := &fakeResolver{docs: map[string]map[string]any{"Potion": {"name": "Poción"}}}
	env := newEnv(resolver)
	m := env.Mapper(mapping.TypeActor, nil)

	entry := map[string]any{"items": map[string]any{"Sword": map[string]any{"name": "Espada"}}}

	out, err := m.Translate(actorDoc(), entry, true, mapping.Options{TranslationsOnly: true})
	require.NoError(t, err)

	items := out["items"].([]any)
	assert.Equal(t, "Espada", items[0].(map[string]any)["name"])
	assert.Equal(t, "Potion", items[2].(map[string]any)["name"], "no cross-collection fallback")
}

func TestFromPackLegacyEntries(t *testing.T) {
	env := newEnv(nil)
	m := env.Mapper(mapping.TypeActor, nil)

	entry := map[string]any{"items": []any{map[string]any{"id": "Shield", "name": "Escudo"}}}

	out, err := m.Translate(actorDoc(), entry, true, mapping.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Escudo", out["items"].([]any)[1].(map[string]any)["name"])
}

func TestSubDocumentsSkipTranslated(t *testing.T) {
	env := newEnv(nil)
	ctx := &mapping.Context{Env: env, Rule: mapping.FieldRule{Path: "items", Converter: mapping.ConverterFromPack}}

	translated := map[string]any{"name": "Espada", "translated": true}

	out, err := SubDocuments{Type: mapping.TypeItem}.Translate(ctx, []any{translated}, map[string]any{"Espada": "Otra"})
	require.NoError(t, err)
	assert.Equal(t, []any{translated}, out)
}

func TestAdventureSubSchema(t *testing.T) {
	env := newEnv(nil)
	m := env.Mapper(mapping.TypeAdventure, mapping.Schema{
		"items": {Mapping: mapping.Schema{"rarity": {Path: "system.rarity"}}},
	})

	doc := map[string]any{
		"name": "Lost Mine",
		"items": []any{
			map[string]any{"_id": "p1", "name": "Potion", "system": map[string]any{"rarity": "common"}},
		},
		"journal": []any{
			map[string]any{"name": "Intro", "pages": []any{map[string]any{"name": "Start", "text": map[string]any{"content": "Go"}}}},
		},
	}
	entry := map[string]any{
		"name":  "Mina perdida",
		"items": map[string]any{"Potion": map[string]any{"name": "Poción", "rarity": "común"}},
		"journals": map[string]any{
			"Intro": map[string]any{"name": "Introducción", "pages": map[string]any{"Start": map[string]any{"text": "Adelante"}}},
		},
	}

	out, err := m.Translate(doc, entry, true, mapping.Options{})
	require.NoError(t, err)

	potion := out["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Poción", potion["name"])
	assert.Equal(t, "común", potion["system"].(map[string]any)["rarity"])

	journal := out["journal"].([]any)[0].(map[string]any)
	assert.Equal(t, "Introducción", journal["name"])
	assert.Equal(t, "Adelante", journal["pages"].([]any)[0].(map[string]any)["text"].(map[string]any)["content"])

	tmpl, err := m.Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Potion", "rarity": "common"}, tmpl["items"].(map[string]any)["Potion"])
	assert.Equal(t, map[string]any{"Start": map[string]any{"name": "Start", "text": "Go"}},
		tmpl["journals"].(map[string]any)["Intro"].(map[string]any)["pages"])
}

func TestSubDocumentsExtractKeyedByOriginalName(t *testing.T) {
	env := newEnv(nil)
	ctx := &mapping.Context{Env: env, Rule: mapping.FieldRule{Path: "items", Converter: mapping.ConverterFromPack}}

	docs := []any{
		map[string]any{"name": "Espada", "translated": true, "flags": map[string]any{"babele": map[string]any{"translated": true, "originalName": "Sword"}}},
		map[string]any{"name": ""},
	}

	tmpl, err := SubDocuments{Type: mapping.TypeItem}.Extract(ctx, docs)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Sword": map[string]any{"name": "Espada"}}, tmpl)
}
