package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babele/internal/mapping"
)

func journalContext(env *mapping.Env, rule mapping.FieldRule) *mapping.Context {
	return &mapping.Context{
		Env:    env,
		Mapper: env.Mapper(mapping.TypeJournalEntry, nil),
		Field:  "pages",
		Rule:   rule,
	}
}

func TestPages(t *testing.T) {
	env := newEnv(nil)
	ctx := journalContext(env, mapping.FieldRule{Path: "pages", Converter: mapping.ConverterPages})

	pages := []any{
		map[string]any{"name": "Intro", "text": map[string]any{"content": "<p>Hi</p>", "format": 1}},
		map[string]any{"name": "Map", "image": map[string]any{"caption": "The map"}, "src": "map.webp"},
		map[string]any{"name": "Video", "video": map[string]any{"width": 640, "height": 480, "loop": true}},
	}

	translation := map[string]any{
		"Intro": map[string]any{"name": "Introducción", "text": "<p>Hola</p>"},
		"Map":   map[string]any{"caption": "El mapa", "src": "mapa.webp"},
		"Video": map[string]any{"width": 800},
	}

	out, err := Pages().Translate(ctx, pages, translation)
	require.NoError(t, err)

	list := out.([]any)
	assert.Equal(t, map[string]any{"name": "Introducción", "text": map[string]any{"content": "<p>Hola</p>", "format": 1}}, list[0])
	assert.Equal(t, map[string]any{"name": "Map", "image": map[string]any{"caption": "El mapa"}, "src": "mapa.webp"}, list[1])
	assert.Equal(t, map[string]any{"name": "Video", "video": map[string]any{"width": 800, "height": 480, "loop": true}}, list[2])

	tmpl, err := Pages().Extract(ctx, pages)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"Intro": map[string]any{"name": "Intro", "text": "<p>Hi</p>"},
		"Map":   map[string]any{"name": "Map", "caption": "The map", "src": "map.webp"},
		"Video": map[string]any{"name": "Video", "width": 640, "height": 480},
	}, tmpl)
}

func TestPagesPositional(t *testing.T) {
	env := newEnv(nil)
	ctx := journalContext(env, mapping.FieldRule{Path: "pages", Converter: mapping.ConverterPages})

	pages := []any{
		map[string]any{"name": "Notes", "text": map[string]any{"content": "a"}},
		map[string]any{"name": "Notes", "text": map[string]any{"content": "b"}},
		map[string]any{"text": map[string]any{"content": "c"}},
		map[string]any{"name": "Unique"},
	}

	translation := map[string]any{
		"Notes": map[string]any{"text": "never used"},
		"1":     map[string]any{"text": "B"},
		"2":     map[string]any{"text": "C"},
		"3":     map[string]any{"name": "wrong key"},
	}

	out, err := Pages().Translate(ctx, pages, translation)
	require.NoError(t, err)

	list := out.([]any)
	assert.Equal(t, pages[0], list[0])
	assert.Equal(t, map[string]any{"name": "Notes", "text": map[string]any{"content": "B"}}, list[1])
	assert.Equal(t, map[string]any{"text": map[string]any{"content": "C"}}, list[2])
	assert.Equal(t, pages[3], list[3])

	tmpl, err := Pages().Extract(ctx, pages)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0", "1", "2", "Unique"}, keysOf(tmpl.(map[string]any)))
}

func TestPagesRuleSubSchema(t *testing.T) {
	env := newEnv(nil)
	ctx := journalContext(env, mapping.FieldRule{
		Path:      "pages",
		Converter: mapping.ConverterPages,
		Mapping:   mapping.Schema{"markdown": {Path: "text.markdown"}},
	})

	pages := []any{map[string]any{"name": "Intro", "text": map[string]any{"markdown": "# Hi"}}}

	out, err := Pages().Translate(ctx, pages, map[string]any{"Intro": map[string]any{"markdown": "# Hola"}})
	require.NoError(t, err)
	assert.Equal(t, "# Hola", out.([]any)[0].(map[string]any)["text"].(map[string]any)["markdown"])
}

func TestPlaylistSounds(t *testing.T) {
	env := newEnv(nil)
	m := env.Mapper(mapping.TypePlaylist, nil)

	doc := map[string]any{
		"name": "Battle",
		"sounds": []any{
			map[string]any{"name": "Drums", "path": "drums.ogg", "volume": 0.5},
			map[string]any{"name": "Horns", "path": "horns.ogg"},
		},
	}
	entry := map[string]any{
		"name":   "Batalla",
		"sounds": map[string]any{"Drums": map[string]any{"name": "Tambores", "description": "Fuerte"}, "Horns": "Cuernos"},
	}

	out, err := m.Translate(doc, entry, true, mapping.Options{})
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"name": "Tambores", "description": "Fuerte", "path": "drums.ogg", "volume": 0.5},
		map[string]any{"name": "Cuernos", "path": "horns.ogg"},
	}, out["sounds"])
}

func TestDeckCards(t *testing.T) {
	cards := []any{
		map[string]any{
			"name":  "Ace",
			"suit":  "spades",
			"value": 1,
			"faces": []any{
				map[string]any{"name": "Ace of Spades", "img": "ace.webp"},
				map[string]any{"name": "Ace (alt)", "text": "Alt"},
			},
			"back": map[string]any{"name": "Back", "img": "back.webp"},
		},
		map[string]any{"name": "King", "suit": "hearts"},
	}

	translation := map[string]any{
		"Ace": map[string]any{
			"name":  "As",
			"suit":  "picas",
			"faces": []any{map[string]any{"name": "As de picas"}},
			"back":  map[string]any{"name": "Dorso"},
		},
	}

	out, err := DeckCards{}.Translate(nil, cards, translation)
	require.NoError(t, err)

	list := out.([]any)
	assert.Equal(t, map[string]any{
		"name":  "As",
		"suit":  "picas",
		"value": 1,
		"faces": []any{
			map[string]any{"name": "As de picas", "img": "ace.webp"},
			map[string]any{"name": "Ace (alt)", "text": "Alt"},
		},
		"back": map[string]any{"name": "Dorso", "img": "back.webp"},
	}, list[0])
	assert.Equal(t, cards[1], list[1])
	assert.Equal(t, "Ace", cards[0].(map[string]any)["name"])

	tmpl, err := DeckCards{}.Extract(nil, cards)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"Ace": map[string]any{
			"name": "Ace",
			"suit": "spades",
			"faces": []any{
				map[string]any{"name": "Ace of Spades"},
				map[string]any{"name": "Ace (alt)", "text": "Alt"},
			},
			"back": map[string]any{"name": "Back"},
		},
		"King": map[string]any{"name": "King", "suit": "hearts"},
	}, tmpl)
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
