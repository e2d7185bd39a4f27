package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babele/internal/mapping"
)

func tableRows() []any {
	return []any{
		map[string]any{"range": []any{float64(1), float64(2)}, "weight": float64(2), "text": "Goblin"},
		map[string]any{"range": []any{float64(3), float64(3)}, "weight": float64(1), "text": "Orc"},
		map[string]any{
			"range":        []any{float64(4), float64(6)},
			"weight":       float64(3),
			"text":         "Potion",
			"documentUuid": "Compendium.world.items.Item.abc123",
		},
		map[string]any{"range": []any{float64(7), float64(7)}, "text": "Dragon"},
	}
}

func TestTableResults(t *testing.T) {
	resolver := &fakeResolver{names: map[string]map[string]string{
		"world.items": {"Potion": "Poción", "Dragon": "Dragón"},
	}}
	env := newEnv(resolver)
	ctx := &mapping.Context{Env: env}

	rows := tableRows()
	translation := map[string]any{
		"1-2": "Trasgo",
		"Orc": "Orco",
	}

	out, err := TableResults{}.Translate(ctx, rows, translation)
	require.NoError(t, err)

	list := out.([]any)
	assert.Equal(t, map[string]any{"range": []any{float64(1), float64(2)}, "weight": float64(2), "text": "Trasgo"}, list[0])
	assert.Equal(t, "Orco", list[1].(map[string]any)["text"])
	assert.Equal(t, float64(1), list[1].(map[string]any)["weight"])
	assert.Equal(t, "Poción", list[2].(map[string]any)["text"], "translated through the referenced pack")
	assert.Equal(t, rows[3], list[3], "no document reference, no lookup")

	assert.Equal(t, "Goblin", rows[0].(map[string]any)["text"])
}

func TestTableResultsObjectEntry(t *testing.T) {
	rows := []any{map[string]any{"range": []any{float64(1), float64(1)}, "name": "Sword", "description": "A blade"}}

	out, err := TableResults{}.Translate(nil, rows, map[string]any{
		"1-1": map[string]any{"name": "Espada", "description": "Una hoja"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"range": []any{float64(1), float64(1)}, "name": "Espada", "description": "Una hoja"}, out.([]any)[0])
}

func TestTableResultsDocumentCollection(t *testing.T) {
	resolver := &fakeResolver{names: map[string]map[string]string{"dnd5e.monsters": {"Orc": "Orco"}}}
	ctx := &mapping.Context{Env: newEnv(resolver)}

	rows := []any{map[string]any{"range": []any{1, 1}, "text": "Orc", "documentCollection": "dnd5e.monsters"}}

	out, err := TableResults{}.Translate(ctx, rows, nil)
	require.NoError(t, err)
	assert.Equal(t, "Orco", out.([]any)[0].(map[string]any)["text"])
}

func TestTableResultsExtract(t *testing.T) {
	tmpl, err := TableResults{}.Extract(nil, tableRows())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"1-2": "Goblin",
		"3-3": "Orc",
		"4-6": "Potion",
		"7-7": "Dragon",
	}, tmpl)
}

func TestRollTableRoundTrip(t *testing.T) {
	env := newEnv(nil)
	m := env.Mapper(mapping.TypeRollTable, nil)

	localized := map[string]any{
		"name":        "Encuentros",
		"description": "Tabla",
		"results":     []any{map[string]any{"range": []any{float64(1), float64(2)}, "text": "Trasgo"}},
	}
	original := map[string]any{
		"name":        "Encounters",
		"description": "Table",
		"results":     []any{map[string]any{"range": []any{float64(1), float64(2)}, "text": "Goblin"}},
	}

	entry, err := m.Extract(localized)
	require.NoError(t, err)

	out, err := m.Translate(original, entry, true, mapping.Options{})
	require.NoError(t, err)

	assert.Equal(t, localized["name"], out["name"])
	assert.Equal(t, localized["description"], out["description"])
	assert.Equal(t, localized["results"], out["results"])
}

func TestResultCollection(t *testing.T) {
	tests := []struct {
		row  map[string]any
		want string
	}{
		{row: map[string]any{"documentCollection": "dnd5e.items"}, want: "dnd5e.items"},
		{row: map[string]any{"documentCollection": "Item"}, want: ""},
		{row: map[string]any{"documentUuid": "Compendium.pf2e.spells.Item.x"}, want: "pf2e.spells"},
		{row: map[string]any{"documentUuid": "Item.x"}, want: ""},
		{row: map[string]any{"documentUuid": "Compendium.pf2e"}, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resultCollection(tt.row), "%v", tt.row)
	}
}
