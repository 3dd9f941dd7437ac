package rank

import (
	"sort"

	"shopscout-engine/internal/domain"
)

// Rank is the engine's entry point: dedup, score every survivor, stable
// sort descending, truncate to k. Stability keeps equal-score listings in
// insertion order so identical input always ranks identically.
func (s Scorer) Rank(listings []domain.Listing, c domain.Constraints, query string, k int) []domain.ScoredListing {
	if k < 1 {
		k = 1
	}

	kept := Dedup(listings)

	scored := make([]domain.ScoredListing, 0, len(kept))
	for _, l := range kept {
		scored = append(scored, domain.ScoredListing{
			Listing: l,
			Score:   s.Score(l, c, query),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
