package document

// Get returns the value at the dotted path, walking nested objects.
func Get(doc map[string]any, path string) (any, bool) {
	segments := splitPath(path)
	if len(segments) == 0 || doc == nil {
		return nil, false
	}

	var current any = doc

	for _, seg := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// GetString returns the string at the dotted path or "" when absent or not a string.
func GetString(doc map[string]any, path string) string {
	v, _ := Get(doc, path)
	s, _ := v.(string)

	return s
}

// Set writes value at the dotted path, creating or replacing intermediate
// objects as needed.
func Set(doc map[string]any, path string, value any) {
	segments := splitPath(path)
	if len(segments) == 0 || doc == nil {
		return
	}

	current := doc

	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[seg] = next
		}

		current = next
	}

	current[segments[len(segments)-1]] = value
}

// Clone deep-copies objects and arrays. Scalars are returned as is.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Clone(item)
		}

		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneMap(item)
		}

		return out
	default:
		return v
	}
}

// CloneMap deep-copies an object. A nil object yields nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}

	return out
}

// Merge recursively merges src into dst and returns dst. Objects present on
// both sides are merged key by key; any other src value replaces the dst
// value. src values are deep-copied.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = map[string]any{}
	}

	for k, v := range src {
		srcObj, srcIsObj := v.(map[string]any)
		dstObj, dstIsObj := dst[k].(map[string]any)

		if srcIsObj && dstIsObj {
			Merge(dstObj, srcObj)
			continue
		}

		dst[k] = Clone(v)
	}

	return dst
}

// AsSlice returns v as an array of values. Typed object slices built by Go
// callers are accepted as well as decoded JSON arrays.
func AsSlice(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}

		return out, true
	default:
		return nil, false
	}
}

// IsEmpty reports whether a translation value carries nothing to apply:
// nil, the empty string, or an empty object or array.
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	default:
		return false
	}
}
