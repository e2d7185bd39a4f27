package mapping

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upper uppercases the original string, ignoring the translation.
var upper = ConverterFuncs{
	TranslateFunc: func(_ *Context, original, _ any) (any, error) {
		s, ok := original.(string)
		if !ok {
			return nil, nil
		}

		return strings.ToUpper(s), nil
	},
	ExtractFunc: func(_ *Context, value any) (any, error) {
		return value, nil
	},
}

func testEnv() *Env {
	reg := NewConverterRegistry()
	reg.Register("upper", upper)
	reg.Register("bound", boundConverter{ConverterFuncs{
		TranslateFunc: func(_ *Context, _, translation any) (any, error) {
			return translation, nil
		},
	}})
	reg.Register("fail", ConverterFuncs{
		TranslateFunc: func(*Context, any, any) (any, error) {
			return nil, errors.New("boom")
		},
	})

	return &Env{Converters: reg, Defaults: NewDefaults()}
}

func TestMapperTranslate(t *testing.T) {
	env := testEnv()
	m := env.Mapper(TypeItem, Schema{"rarity": {Path: "system.rarity"}})

	doc := map[string]any{
		"_id":  "abc",
		"name": "Sword",
		"system": map[string]any{
			"description": map[string]any{"value": "A blade"},
			"rarity":      "common",
			"weight":      3,
		},
	}
	entry := map[string]any{
		"name":        "Espada",
		"description": "Una hoja",
		"rarity":      "",
	}

	out, err := m.Translate(doc, entry, true, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Espada", out["name"])
	assert.Equal(t, "Una hoja", out["system"].(map[string]any)["description"].(map[string]any)["value"])
	assert.Equal(t, "common", out["system"].(map[string]any)["rarity"], "empty entry values are ignored")
	assert.Equal(t, 3, out["system"].(map[string]any)["weight"])
	assert.Equal(t, "abc", out["_id"])

	assert.Equal(t, true, out["translated"])
	assert.Equal(t, true, out["hasTranslation"])
	assert.Equal(t, "Sword", out["originalName"])
	assert.Equal(t, map[string]any{
		"translated":     true,
		"hasTranslation": true,
		"originalName":   "Sword",
	}, out["flags"].(map[string]any)["babele"])

	// The input is untouched.
	assert.Equal(t, "Sword", doc["name"])
	assert.NotContains(t, doc, "translated")
}

func TestMapperMapConverted(t *testing.T) {
	env := testEnv()
	m := NewMapper(TypeActor, Schema{
		"title": {Path: "system.title", Converter: "upper"},
		"label": {Path: "label", Converter: "bound"},
	}, env)

	doc := map[string]any{"system": map[string]any{"title": "knight"}, "label": "x"}

	overlay, err := m.Map(doc, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"system": map[string]any{"title": "KNIGHT"}}, overlay)

	overlay, err = m.Map(doc, nil, Options{TranslationsOnly: true})
	require.NoError(t, err)
	assert.Empty(t, overlay, "translations-only skips converted rules without entry")

	overlay, err = m.Map(doc, map[string]any{"label": "etiqueta"}, Options{TranslationsOnly: true})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"label": "etiqueta"}, overlay)
}

func TestMapperFieldErrors(t *testing.T) {
	env := testEnv()
	m := NewMapper(TypeItem, Schema{
		"name":    {Path: "name"},
		"broken":  {Path: "broken", Converter: "fail"},
		"missing": {Path: "missing", Converter: "uper"},
	}, env)

	doc := map[string]any{"name": "Sword", "broken": "x", "missing": "y"}

	out, err := m.Translate(doc, map[string]any{"name": "Espada"}, true, Options{})
	require.Error(t, err)
	assert.Equal(t, "Espada", out["name"], "remaining fields are still translated")

	assert.True(t, errors.Is(err, ErrUnknownConverter))

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, []string{"broken", "missing"}, fieldErr.Field)
	assert.Contains(t, err.Error(), `did you mean "upper"?`)
}

func TestMapperIsDynamic(t *testing.T) {
	env := testEnv()

	assert.False(t, NewMapper(TypeItem, Schema{"name": {Path: "name"}}, env).IsDynamic())
	assert.False(t, NewMapper(TypeItem, Schema{"label": {Path: "label", Converter: "bound"}}, env).IsDynamic())
	assert.True(t, NewMapper(TypeItem, Schema{"title": {Path: "title", Converter: "upper"}}, env).IsDynamic())
	assert.False(t, NewMapper(TypeItem, Schema{"title": {Path: "title", Converter: "nope"}}, env).IsDynamic())
}

func TestMapperExtract(t *testing.T) {
	env := testEnv()
	m := NewMapper(TypeItem, Schema{
		"name":        {Path: "name"},
		"description": {Path: "system.description.value"},
		"title":       {Path: "system.title", Converter: "upper"},
		"absent":      {Path: "system.absent", Converter: "upper"},
	}, env)

	doc := map[string]any{
		"name":   "Sword",
		"system": map[string]any{"title": "blade", "description": map[string]any{"value": "A blade"}},
	}

	tmpl, err := m.Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":        "Sword",
		"description": "A blade",
		"title":       "blade",
	}, tmpl)

	value, ok := m.ExtractField("description", doc)
	require.True(t, ok)
	assert.Equal(t, "A blade", value)

	_, ok = m.ExtractField("unknown", doc)
	assert.False(t, ok)
}

func TestMapperTranslateField(t *testing.T) {
	env := testEnv()
	m := NewMapper(TypeItem, Schema{
		"name":  {Path: "name"},
		"title": {Path: "title", Converter: "upper"},
	}, env)

	doc := map[string]any{"name": "Sword", "title": "blade"}

	value, ok, err := m.TranslateField("name", doc, map[string]any{"name": "Espada"}, Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Espada", value)

	value, ok, err = m.TranslateField("title", doc, nil, Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "BLADE", value)

	_, ok, err = m.TranslateField("name", doc, nil, Options{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = m.TranslateField("unknown", doc, nil, Options{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContextSubMapper(t *testing.T) {
	env := testEnv()
	ctx := &Context{
		Env:  env,
		Rule: FieldRule{Path: "items", Converter: "upper", Mapping: Schema{"rarity": {Path: "system.rarity"}}},
	}

	sub := ctx.SubMapper(TypeItem)
	assert.Equal(t, TypeItem, sub.Type())

	rule, ok := sub.Rule("rarity")
	require.True(t, ok)
	assert.Equal(t, "system.rarity", rule.Path)

	rule, ok = sub.Rule("description")
	require.True(t, ok)
	assert.Equal(t, "system.description.value", rule.Path)

	assert.Nil(t, ctx.Resolver())
}
