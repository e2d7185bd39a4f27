package locale

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when the active language is not supported by the
// collation tables.
const DefaultLanguage = "en"

var matcher = language.NewMatcher(collate.Supported())

// Collator compares display names for one language.
type Collator struct {
	tag language.Tag
	c   *collate.Collator
}

// Tag resolves lang to a language supported by the collation tables,
// falling back to DefaultLanguage.
func Tag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.MustParse(DefaultLanguage)
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.MustParse(DefaultLanguage)
	}

	return collate.Supported()[index]
}

// NewCollator returns a collator for lang.
func NewCollator(lang string) *Collator {
	tag := Tag(lang)

	return &Collator{tag: tag, c: collate.New(tag)}
}

// Language returns the resolved collation language.
func (c *Collator) Language() language.Tag {
	return c.tag
}

// Compare returns -1, 0 or 1 comparing a and b.
func (c *Collator) Compare(a, b string) int {
	// collate.Collator keeps internal buffers and is not safe for concurrent use.
	return collate.New(c.tag).CompareString(a, b)
}

// SortByName sorts index entries by their "name" in place.
func (c *Collator) SortByName(index []map[string]any) {
	col := collate.New(c.tag)

	sort.SliceStable(index, func(i, j int) bool {
		a, _ := index[i]["name"].(string)
		b, _ := index[j]["name"].(string)

		return col.CompareString(a, b) < 0
	})
}
