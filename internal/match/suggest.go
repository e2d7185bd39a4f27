package match

import (
	"sort"
	"strings"
)

// MinSimilarity is the lowest case-folded similarity a candidate needs to
// be suggested.
const MinSimilarity = 0.5

// Suggest returns up to limit candidates closest to name, best first.
// Comparison is case-insensitive; ties keep the candidates' sorted order.
func Suggest(name string, candidates []string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	folded := strings.ToLower(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(folded, strings.ToLower(c))
		if score < MinSimilarity {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
