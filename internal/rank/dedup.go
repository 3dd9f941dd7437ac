package rank

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"shopscout-engine/internal/domain"
)

// dedupThreshold is on the 0-100 token-set ratio scale; strictly above it
// two titles are the same underlying product.
const dedupThreshold = 88

// Dedup drops near-duplicate listings observed across sources. Greedy,
// first-seen-wins, order-preserving: upstream source ordering decides which
// of two near-duplicates survives. O(n²) is fine at tens of listings.
func Dedup(listings []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		dup := false
		for _, kept := range out {
			if fuzzy.TokenSetRatio(l.Title, kept.Title) > dedupThreshold {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}
