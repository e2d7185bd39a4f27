package mapping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boundConverter struct {
	ConverterFuncs
}

func (boundConverter) RequiresEntry() bool { return true }

func TestConverterRegistry(t *testing.T) {
	reg := NewConverterRegistry()
	assert.Empty(t, reg.Names())

	first := ConverterFuncs{TranslateFunc: func(*Context, any, any) (any, error) { return "first", nil }}
	second := ConverterFuncs{TranslateFunc: func(*Context, any, any) (any, error) { return "second", nil }}

	reg.Register("custom", first)
	reg.Register("custom", second)
	reg.RegisterAll(map[string]Converter{"other": first})

	assert.True(t, reg.Has("custom"))
	assert.False(t, reg.Has("missing"))
	assert.Equal(t, []string{"custom", "other"}, reg.Names())

	c, err := reg.Resolve("custom")
	require.NoError(t, err)

	out, err := c.Translate(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "second", out, "last registration wins")
}

func TestConverterRegistryUnknown(t *testing.T) {
	reg := NewConverterRegistry()
	reg.Register("customs", ConverterFuncs{})

	_, err := reg.Resolve("custom")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownConverter))

	var unknown *UnknownConverterError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "custom", unknown.Name)
	assert.Equal(t, []string{"customs"}, unknown.Suggestions)
	assert.Equal(t, `unknown converter "custom" (did you mean "customs"?)`, err.Error())
}

func TestConverterFuncsNil(t *testing.T) {
	var c ConverterFuncs

	out, err := c.Translate(nil, "a", "b")
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = c.Extract(nil, "a")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRequiresEntry(t *testing.T) {
	assert.False(t, requiresEntry(ConverterFuncs{}))
	assert.True(t, requiresEntry(boundConverter{}))
}
