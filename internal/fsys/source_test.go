package fsys

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"modules/es/lang/dnd5e.items.json":   {Data: []byte(`{}`)},
		"modules/es/lang/dnd5e.spells.json":  {Data: []byte(`{"label":"Conjuros"}`)},
		"modules/es/lang/nested/deep.json":   {Data: []byte(`{}`)},
		"translations/es/world.monsters.json": {Data: []byte(`{}`)},
	}
}

func TestBrowse(t *testing.T) {
	src := New(testFS())

	files, err := src.Browse(context.Background(), "modules/es/lang")
	require.NoError(t, err)
	assert.Equal(t, []string{"modules/es/lang/dnd5e.items.json", "modules/es/lang/dnd5e.spells.json"}, files)

	files, err = src.Browse(context.Background(), "/translations/es/")
	require.NoError(t, err)
	assert.Equal(t, []string{"translations/es/world.monsters.json"}, files)

	_, err = src.Browse(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFetch(t *testing.T) {
	src := New(testFS())

	data, err := src.Fetch(context.Background(), `modules\es\lang\dnd5e.spells.json`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Conjuros"}`, string(data))

	_, err = src.Fetch(context.Background(), "modules/es/lang/missing.json")
	require.Error(t, err)
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testFS()).Browse(ctx, "modules")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClean(t *testing.T) {
	assert.Equal(t, ".", clean(""))
	assert.Equal(t, ".", clean("/"))
	assert.Equal(t, "a/b", clean("/a//b/"))
	assert.Equal(t, "b", clean("../b"))
}
