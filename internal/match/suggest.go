package match

import (
	"cmp"
	"slices"
)

// MinSuggestScore is the lowest Similarity a candidate needs to be suggested.
const MinSuggestScore = 0.6

// Suggest returns up to limit candidates that resemble name, best first.
// Ties are broken alphabetically so the output is stable.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var hits []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= MinSuggestScore {
			hits = append(hits, scored{name: c, score: s})
		}
	}

	slices.SortFunc(hits, func(x, y scored) int {
		if c := cmp.Compare(y.score, x.score); c != 0 {
			return c
		}

		return cmp.Compare(x.name, y.name)
	})

	out := make([]string, 0, min(limit, len(hits)))
	for i := 0; i < len(hits) && i < limit; i++ {
		out = append(out, hits[i].name)
	}

	return out
}
