package document

// Translation stamp keys written on every translated document.
const (
	KeyTranslated     = "translated"
	KeyHasTranslation = "hasTranslation"
	KeyOriginalName   = "originalName"
	KeyFlags          = "flags"
	FlagScope         = "babele"
)

// Stamp marks doc as translated, recording whether an explicit entry was
// found and the pre-translation name. The same values are mirrored under
// flags.babele.
func Stamp(doc map[string]any, originalName any, hasTranslation bool) {
	doc[KeyTranslated] = true
	doc[KeyHasTranslation] = hasTranslation
	doc[KeyOriginalName] = originalName

	Set(doc, KeyFlags+"."+FlagScope, map[string]any{
		KeyTranslated:     true,
		KeyHasTranslation: hasTranslation,
		KeyOriginalName:   originalName,
	})
}

// IsTranslated reports whether doc already carries the translated stamp.
func IsTranslated(doc map[string]any) bool {
	if doc == nil {
		return false
	}

	if v, ok := doc[KeyTranslated].(bool); ok && v {
		return true
	}

	v, _ := Get(doc, KeyFlags+"."+FlagScope+"."+KeyTranslated)
	b, _ := v.(bool)

	return b
}

// OriginalName returns the pre-translation name of doc: the stamped original
// name for translated documents, the current name otherwise.
func OriginalName(doc map[string]any) string {
	if IsTranslated(doc) {
		if s := GetString(doc, KeyFlags+"."+FlagScope+"."+KeyOriginalName); s != "" {
			return s
		}

		if s, ok := doc[KeyOriginalName].(string); ok && s != "" {
			return s
		}
	}

	s, _ := doc["name"].(string)

	return s
}
