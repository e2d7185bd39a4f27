package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagFallback(t *testing.T) {
	assert.Equal(t, "en", Tag("not a language!").String())

	base, _ := Tag("es").Base()
	assert.Equal(t, "es", base.String())

	base, _ = NewCollator("es-MX").Language().Base()
	assert.Equal(t, "es", base.String())
}

func TestCompare(t *testing.T) {
	en := NewCollator("en")
	sv := NewCollator("sv")

	// Swedish sorts ö after z; English treats it as an o.
	assert.Equal(t, -1, en.Compare("öl", "zebra"))
	assert.Equal(t, 1, sv.Compare("öl", "zebra"))
	assert.Equal(t, 0, en.Compare("a", "a"))
}

func TestSortByName(t *testing.T) {
	index := []map[string]any{
		{"name": "Zorro"},
		{"name": "Águila"},
		{"name": "Búho"},
		{"_id": "no name"},
	}

	NewCollator("es").SortByName(index)

	names := make([]any, len(index))
	for i, e := range index {
		names[i] = e["name"]
	}

	assert.Equal(t, []any{nil, "Águila", "Búho", "Zorro"}, names)
}
