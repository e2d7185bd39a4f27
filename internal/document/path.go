package document

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Path is a parsed dotted field path like "system.description.value".
type Path struct {
	Segments []string
}

// ParsePath parses a dotted path string into a Path.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, errors.New("empty path")
	}

	var segments []string

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return Path{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if !isValidSegment(part) {
			return Path{}, fmt.Errorf("invalid path %q: invalid segment %q", path, part)
		}

		segments = append(segments, part)
	}

	return Path{Segments: segments}, nil
}

// String returns the path as a dotted string.
func (p Path) String() string {
	return strings.Join(p.Segments, ".")
}

// isValidSegment rejects whitespace and control characters. Document keys
// are otherwise free-form (Foundry flags use scoped keys such as "core-x").
func isValidSegment(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}

	return true
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, ".")
}
