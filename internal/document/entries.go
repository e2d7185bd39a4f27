package document

import (
	"encoding/json"
	"strconv"
)

// LegacyIDKey identifies an entry in the legacy array form of an entry set.
const LegacyIDKey = "id"

// Entries normalizes an entry set. The object form, keyed by original name or
// id, is returned as is; the legacy array form of objects carrying an "id" is
// converted to the object form, later elements winning. Elements without a
// usable id are dropped.
func Entries(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case []any:
		out := make(map[string]any, len(t))

		for _, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				continue
			}

			key, ok := Key(m[LegacyIDKey])
			if !ok {
				continue
			}

			out[key] = m
		}

		return out, true
	case []map[string]any:
		items := make([]any, len(t))
		for i, m := range t {
			items[i] = m
		}

		return Entries(items)
	default:
		return nil, false
	}
}

// Key converts an identifier value to its string form. Numbers decoded from
// JSON are rendered without a trailing fraction.
func Key(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}
